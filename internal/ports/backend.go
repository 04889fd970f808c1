package ports

import (
	"context"

	"github.com/bnema/docassist-cli/internal/domain"
)

// Backend is the only component allowed to perform network I/O. It never
// mutates session state and never retries.
type Backend interface {
	Upload(ctx context.Context, doc domain.Document) (UploadResult, error)
	Ask(ctx context.Context, req AskRequest) (AskResult, error)
	Search(ctx context.Context, req SearchRequest) (domain.SearchResults, error)
	Clarify(ctx context.Context, req ClarifyRequest) (domain.Clarification, error)
	GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (GeneratedQuiz, error)
	EvaluateAnswer(ctx context.Context, req EvaluateRequest) (domain.Evaluation, error)
	Hint(ctx context.Context, req HintRequest) (string, error)
	QuizProgress(ctx context.Context, quizSessionID string) (domain.Progress, error)
	EndQuiz(ctx context.Context, quizSessionID string) (domain.Progress, error)
	Health(ctx context.Context) (map[string]any, error)
}

type UploadResult struct {
	DocumentID string
	Summary    string
}

type AskRequest struct {
	DocumentID string
	Question   string
}

type AskResult struct {
	Answer         string
	Justification  string
	SourceSnippets []string
}

type SearchRequest struct {
	DocumentID string
	Query      string
}

type ClarifyRequest struct {
	DocumentID string
	Question   string
}

type GenerateQuizRequest struct {
	DocumentID string
	Difficulty domain.Difficulty
}

type GeneratedQuiz struct {
	QuizSessionID string
	Questions     []domain.Question
}

type EvaluateRequest struct {
	QuizSessionID string
	QuestionID    string
	DocumentID    string
	AnswerText    string
}

type HintRequest struct {
	QuizSessionID string
	QuestionID    string
	DocumentID    string
}
