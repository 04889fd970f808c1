package application

import (
	"context"
	"strings"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"github.com/google/uuid"
)

type QAService struct {
	runner workflowRunner
}

func NewQAService(deps Deps) *QAService {
	return &QAService{runner: newWorkflowRunner("qa", deps)}
}

// Ask sends question about the active document. The question and its answer
// are appended together on success; a failed call leaves the transcript as it was.
func (s *QAService) Ask(ctx context.Context, question string) (domain.Session, error) {
	question = strings.TrimSpace(question)

	return s.runner.run(ctx, domain.OperationAsk, documentQuery("question", question), func(ctx context.Context, snapshot domain.Session) (func(*domain.Session), error) {
		asked := s.runner.now()
		result, err := s.runner.backend.Ask(ctx, ports.AskRequest{
			DocumentID: snapshot.DocumentID,
			Question:   question,
		})
		if err != nil {
			return nil, err
		}

		answered := s.runner.now()
		userMessage := domain.Message{
			ID:        uuid.NewString(),
			Role:      domain.RoleUser,
			Text:      question,
			Timestamp: asked,
		}
		assistantMessage := domain.Message{
			ID:             uuid.NewString(),
			Role:           domain.RoleAssistant,
			Text:           result.Answer,
			Justification:  result.Justification,
			SourceSnippets: result.SourceSnippets,
			Timestamp:      answered,
		}

		return func(session *domain.Session) {
			session.Transcript = append(session.Transcript, userMessage, assistantMessage)
		}, nil
	})
}

// Search ranks passages of the active document against query. The session
// is left as it was, and the call still holds the busy gate while it runs.
func (s *QAService) Search(ctx context.Context, query string) (domain.SearchResults, error) {
	query = strings.TrimSpace(query)

	var results domain.SearchResults
	_, err := s.runner.run(ctx, domain.OperationSearch, documentQuery("query", query), func(ctx context.Context, snapshot domain.Session) (func(*domain.Session), error) {
		found, err := s.runner.backend.Search(ctx, ports.SearchRequest{
			DocumentID: snapshot.DocumentID,
			Query:      query,
		})
		if err != nil {
			return nil, err
		}

		results = found
		return nil, nil
	})
	if err != nil {
		return domain.SearchResults{}, err
	}

	return results, nil
}

// Clarify asks the backend how question could be made more specific. Like
// Search it changes nothing in the session.
func (s *QAService) Clarify(ctx context.Context, question string) (domain.Clarification, error) {
	question = strings.TrimSpace(question)

	var clarification domain.Clarification
	_, err := s.runner.run(ctx, domain.OperationClarify, documentQuery("question", question), func(ctx context.Context, snapshot domain.Session) (func(*domain.Session), error) {
		suggested, err := s.runner.backend.Clarify(ctx, ports.ClarifyRequest{
			DocumentID: snapshot.DocumentID,
			Question:   question,
		})
		if err != nil {
			return nil, err
		}

		clarification = suggested
		return nil, nil
	})
	if err != nil {
		return domain.Clarification{}, err
	}

	return clarification, nil
}

// ClearTranscript empties the transcript. Document, quiz and error state are kept.
func (s *QAService) ClearTranscript() domain.Session {
	return s.runner.store.clearTranscript()
}

// Transcript returns the messages of the current snapshot.
func (s *QAService) Transcript() []domain.Message {
	return s.runner.store.Snapshot().Transcript
}

// documentQuery requires non-empty text and an active document, checked in that order.
func documentQuery(field, text string) func(domain.Session) error {
	return func(session domain.Session) error {
		if text == "" {
			return &domain.ValidationError{Field: field, Reason: field + " is empty"}
		}
		if !session.HasDocument() {
			return domain.NoActiveDocument()
		}
		return nil
	}
}
