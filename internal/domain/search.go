package domain

// Relevance buckets reported for search hits.
const (
	RelevanceHigh   = "high"
	RelevanceMedium = "medium"
	RelevanceLow    = "low"
)

// SearchHit is one passage of the active document ranked against a query.
type SearchHit struct {
	Rank      int
	ChunkID   string
	Content   string
	Relevance float64
	Category  string
}

type SearchResults struct {
	Query   string
	Hits    []SearchHit
	Message string
}

// Clarification holds rephrasing suggestions for a vague question.
type Clarification struct {
	Question    string
	Suggestions []string
	Context     string
}

// RelevanceCategory buckets a relevance score the way the backend does.
func RelevanceCategory(score float64) string {
	switch {
	case score > 0.8:
		return RelevanceHigh
	case score > 0.5:
		return RelevanceMedium
	default:
		return RelevanceLow
	}
}
