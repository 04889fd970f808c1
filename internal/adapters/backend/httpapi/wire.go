package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/docassist-cli/internal/domain"
)

type uploadResponse struct {
	DocumentID string `json:"document_id"`
	Summary    string `json:"summary"`
}

type askRequest struct {
	Question            string `json:"question"`
	DocumentID          string `json:"document_id"`
	ConversationHistory []any  `json:"conversation_history"`
}

type askResponse struct {
	Answer         string   `json:"answer"`
	Justification  string   `json:"justification"`
	SourceSnippets []string `json:"source_snippets"`
	SourceText     string   `json:"source_text"`
}

type searchResponse struct {
	Query      string          `json:"query"`
	Results    []searchPayload `json:"results"`
	Message    string          `json:"message"`
	Suggestion string          `json:"suggestion"`
}

// message joins the backend's message with its suggestion, which it only
// sends when the search could not run.
func (r searchResponse) message() string {
	parts := make([]string, 0, 2)
	for _, part := range []string{r.Message, r.Suggestion} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ". ")
}

type searchPayload struct {
	ChunkID           flexibleID `json:"chunk_id"`
	Content           string     `json:"content"`
	RelevanceScore    float64    `json:"relevance_score"`
	Rank              int        `json:"rank"`
	RelevanceCategory string     `json:"relevance_category"`
}

func (p searchPayload) hit(index int) domain.SearchHit {
	hit := domain.SearchHit{
		Rank:      p.Rank,
		ChunkID:   string(p.ChunkID),
		Content:   p.Content,
		Relevance: p.RelevanceScore,
		Category:  p.RelevanceCategory,
	}
	if hit.Rank <= 0 {
		hit.Rank = index + 1
	}
	if hit.Category == "" {
		hit.Category = domain.RelevanceCategory(p.RelevanceScore)
	}
	return hit
}

type clarifyResponse struct {
	Suggestions      []string `json:"suggestions"`
	OriginalQuestion string   `json:"original_question"`
	Context          string   `json:"context"`
}

type generateRequest struct {
	DocumentID string `json:"document_id"`
	Difficulty string `json:"difficulty,omitempty"`
}

type generateResponse struct {
	SessionID string            `json:"session_id"`
	Questions []questionPayload `json:"questions"`
}

type questionPayload struct {
	ID       flexibleID `json:"id"`
	Question string     `json:"question"`
	Options  optionSet  `json:"options"`
}

type evaluateRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
	DocumentID string `json:"document_id"`
}

type evaluateResponse struct {
	Score         float64 `json:"score"`
	Correct       bool    `json:"correct"`
	Feedback      string  `json:"feedback"`
	Justification string  `json:"justification"`
	Reference     string  `json:"reference"`
}

type hintRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	DocumentID string `json:"document_id"`
}

type hintResponse struct {
	Hint string `json:"hint"`
}

type progressPayload struct {
	Answered       int     `json:"answered"`
	TotalQuestions int     `json:"total_questions"`
	AverageScore   float64 `json:"average_score"`
}

func (p progressPayload) progress() domain.Progress {
	return domain.Progress{
		Answered:     p.Answered,
		Total:        p.TotalQuestions,
		AverageScore: domain.ClampScore(p.AverageScore),
	}
}

type progressResponse struct {
	Message string          `json:"message"`
	Data    progressPayload `json:"data"`
}

type endSessionResponse struct {
	Message      string          `json:"message"`
	FinalResults progressPayload `json:"final_results"`
}

// flexibleID accepts a question id sent as either a JSON string or number.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*id = flexibleID(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("question id must be a string or number: %w", err)
	}
	*id = flexibleID(number.String())
	return nil
}

// optionSet decodes question options sent either as {"A": "text"} or as a
// list, in which case entries are keyed A, B, C in order.
type optionSet map[string]string

func (o *optionSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = optionSet{}
		return nil
	}

	if data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode option list: %w", err)
		}
		options := make(optionSet, len(items))
		for i, item := range items {
			options[optionKey(i)] = item
		}
		*o = options
		return nil
	}

	var keyed map[string]string
	if err := json.Unmarshal(data, &keyed); err != nil {
		return fmt.Errorf("decode option map: %w", err)
	}
	if keyed == nil {
		keyed = map[string]string{}
	}
	*o = keyed
	return nil
}

// optionKey maps 0 to A, 25 to Z and anything past that to a number.
func optionKey(index int) string {
	if index < 26 {
		return string(rune('A' + index))
	}
	return strconv.Itoa(index + 1)
}

// errorMessage extracts the backend's reason for a non-2xx response.
func errorMessage(statusCode int, body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if message := detailMessage(envelope.Detail); message != "" {
			return message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}

	return http.StatusText(statusCode)
}

func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var nested struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		if nested.Error != "" {
			return nested.Error
		}
		if nested.Message != "" {
			return nested.Message
		}
	}

	// Validation errors arrive as a list of {loc, msg, type}.
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		messages := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				messages = append(messages, item.Msg)
			}
		}
		return strings.Join(messages, "; ")
	}

	return ""
}
