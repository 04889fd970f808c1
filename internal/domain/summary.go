package domain

import (
	"sort"
	"strings"
	"unicode"
)

var summaryKeywords = []string{
	"key", "main", "important", "significant", "conclusion", "result",
	"finding", "purpose", "objective", "propose", "summary", "overall",
}

// BriefSummary keeps the maxSentences sentences of summary that mention the most
// keywords, in their original order. With no keyword hits it keeps the leading sentences.
func BriefSummary(summary string, maxSentences int) string {
	sentences := splitSentences(summary)
	if maxSentences <= 0 || len(sentences) <= maxSentences {
		return strings.Join(sentences, " ")
	}

	type ranked struct {
		index int
		hits  int
	}

	ranking := make([]ranked, 0, len(sentences))
	anyHits := false
	for i, sentence := range sentences {
		hits := keywordHits(sentence)
		if hits > 0 {
			anyHits = true
		}
		ranking = append(ranking, ranked{index: i, hits: hits})
	}

	if !anyHits {
		return strings.Join(sentences[:maxSentences], " ")
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].hits > ranking[j].hits
	})

	picked := ranking[:maxSentences]
	sort.Slice(picked, func(i, j int) bool {
		return picked[i].index < picked[j].index
	})

	out := make([]string, 0, maxSentences)
	for _, entry := range picked {
		out = append(out, sentences[entry.index])
	}

	return strings.Join(out, " ")
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(strings.TrimSpace(text))
	for i, r := range runes {
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	if tail := strings.TrimSpace(current.String()); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

func keywordHits(sentence string) int {
	words := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	hits := 0
	for _, word := range words {
		for _, keyword := range summaryKeywords {
			if strings.HasPrefix(word, keyword) {
				hits++
				break
			}
		}
	}

	return hits
}
