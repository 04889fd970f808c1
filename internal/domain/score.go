package domain

import "math"

const (
	MinScore = 0
	MaxScore = 100
)

// AggregateScore is the rounded mean score over answers, or 0 when there are none.
func AggregateScore(answers map[int]Answer) int {
	if len(answers) == 0 {
		return 0
	}

	total := 0
	for _, answer := range answers {
		total += answer.Evaluation.Score
	}

	return int(math.Round(float64(total) / float64(len(answers))))
}

func ClampScore(raw float64) int {
	if math.IsNaN(raw) {
		return MinScore
	}

	rounded := int(math.Round(raw))
	if rounded < MinScore {
		return MinScore
	}
	if rounded > MaxScore {
		return MaxScore
	}

	return rounded
}
