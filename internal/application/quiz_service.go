package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const DefaultHintTTL = 30 * time.Minute

type QuizService struct {
	runner workflowRunner
	hints  *gocache.Cache
}

type QuizOption func(*quizOptions)

type quizOptions struct {
	hintTTL time.Duration
}

// WithHintTTL sets how long a fetched hint is reused. Zero or negative keeps the default.
func WithHintTTL(ttl time.Duration) QuizOption {
	return func(o *quizOptions) {
		if ttl > 0 {
			o.hintTTL = ttl
		}
	}
}

func NewQuizService(deps Deps, opts ...QuizOption) *QuizService {
	options := quizOptions{hintTTL: DefaultHintTTL}
	for _, opt := range opts {
		opt(&options)
	}

	return &QuizService{
		runner: newWorkflowRunner("quiz", deps),
		hints:  gocache.New(options.hintTTL, 2*options.hintTTL),
	}
}

// Generate asks the backend for a new question set for the active document.
// An empty difficulty lets the backend pick its default.
func (s *QuizService) Generate(ctx context.Context, difficulty domain.Difficulty) (domain.Session, error) {
	difficulty = domain.Difficulty(strings.ToLower(strings.TrimSpace(string(difficulty))))

	precondition := func(session domain.Session) error {
		if !difficulty.Valid() {
			return &domain.ValidationError{
				Field:  "difficulty",
				Reason: fmt.Sprintf("unknown difficulty %q (allowed: easy, medium, hard)", difficulty),
			}
		}
		if !session.HasDocument() {
			return domain.NoActiveDocument()
		}
		return nil
	}

	return s.runner.run(ctx, domain.OperationGenerateQuiz, precondition, func(ctx context.Context, snapshot domain.Session) (func(*domain.Session), error) {
		quiz, err := s.runner.backend.GenerateQuiz(ctx, ports.GenerateQuizRequest{
			DocumentID: snapshot.DocumentID,
			Difficulty: difficulty,
		})
		if err != nil {
			return nil, err
		}

		s.hints.Flush()

		return func(session *domain.Session) {
			session.QuizSessionID = quiz.QuizSessionID
			session.Questions = quiz.Questions
			session.Answers = nil
			session.Cursor = nil
			if len(quiz.Questions) > 0 {
				cursor := 0
				session.Cursor = &cursor
			}
		}, nil
	})
}

// SubmitAnswer has the backend evaluate text as the answer to question index.
// A later submission for the same index replaces the stored answer.
func (s *QuizService) SubmitAnswer(ctx context.Context, index int, text string) (domain.Session, error) {
	text = strings.TrimSpace(text)

	precondition := func(session domain.Session) error {
		if err := questionPrecondition(session, index); err != nil {
			return err
		}
		if text == "" {
			return &domain.ValidationError{Field: "answer", Reason: "answer is empty"}
		}
		return nil
	}

	return s.runner.run(ctx, domain.OperationSubmitAnswer, precondition, func(ctx context.Context, snapshot domain.Session) (func(*domain.Session), error) {
		question := snapshot.Questions[index]
		evaluation, err := s.runner.backend.EvaluateAnswer(ctx, ports.EvaluateRequest{
			QuizSessionID: snapshot.QuizSessionID,
			QuestionID:    question.ID,
			DocumentID:    snapshot.DocumentID,
			AnswerText:    text,
		})
		if err != nil {
			return nil, err
		}

		answer := domain.Answer{
			QuestionIndex: index,
			QuestionID:    question.ID,
			SubmittedText: text,
			Evaluation:    evaluation,
			Timestamp:     s.runner.now(),
		}

		return func(session *domain.Session) {
			// A reset or regeneration cannot run while this call holds the
			// busy gate, so index still refers to the same question.
			if session.Answers == nil {
				session.Answers = make(map[int]domain.Answer)
			}
			session.Answers[index] = answer
		}, nil
	})
}

// Hint returns a hint for question index. Hints are cached per quiz and
// question; a cached hint is returned without contacting the backend.
func (s *QuizService) Hint(ctx context.Context, index int) (string, error) {
	snapshot := s.runner.store.Snapshot()
	if err := questionPrecondition(snapshot, index); err == nil {
		key := hintKey(snapshot.QuizSessionID, snapshot.Questions[index].ID)
		if cached, ok := s.hints.Get(key); ok {
			s.runner.logger.Debug("hint cache hit", zap.String("quiz_session_id", snapshot.QuizSessionID), zap.Int("question", index))
			return cached.(string), nil
		}
	}

	var hint string
	_, err := s.runner.run(ctx, domain.OperationHint, func(session domain.Session) error {
		return questionPrecondition(session, index)
	}, func(ctx context.Context, snapshot domain.Session) (func(*domain.Session), error) {
		question := snapshot.Questions[index]
		text, err := s.runner.backend.Hint(ctx, ports.HintRequest{
			QuizSessionID: snapshot.QuizSessionID,
			QuestionID:    question.ID,
			DocumentID:    snapshot.DocumentID,
		})
		if err != nil {
			return nil, err
		}

		hint = text
		s.hints.SetDefault(hintKey(snapshot.QuizSessionID, question.ID), text)
		return nil, nil
	})
	if err != nil {
		return "", err
	}

	return hint, nil
}

// RemoteProgress returns the backend's view of the active quiz. The session
// itself is left as it was.
func (s *QuizService) RemoteProgress(ctx context.Context) (domain.Progress, error) {
	var progress domain.Progress
	_, err := s.runner.run(ctx, domain.OperationQuizProgress, quizPrecondition, func(ctx context.Context, snapshot domain.Session) (func(*domain.Session), error) {
		remote, err := s.runner.backend.QuizProgress(ctx, snapshot.QuizSessionID)
		if err != nil {
			return nil, err
		}

		progress = remote
		return nil, nil
	})
	if err != nil {
		return domain.Progress{}, err
	}

	return progress, nil
}

// Finish ends the active quiz on the backend and returns its final results.
// Quiz state is cleared; the document and transcript are kept.
func (s *QuizService) Finish(ctx context.Context) (domain.Progress, domain.Session, error) {
	var final domain.Progress
	settled, err := s.runner.run(ctx, domain.OperationFinishQuiz, quizPrecondition, func(ctx context.Context, snapshot domain.Session) (func(*domain.Session), error) {
		results, err := s.runner.backend.EndQuiz(ctx, snapshot.QuizSessionID)
		if err != nil {
			return nil, err
		}

		final = results
		s.hints.Flush()
		return clearQuiz, nil
	})
	if err != nil {
		return domain.Progress{}, settled, err
	}

	return final, settled, nil
}

// SetCursor moves to question index. Out of range is a no-op.
func (s *QuizService) SetCursor(index int) domain.Session {
	return s.runner.store.setCursor(index)
}

func (s *QuizService) Next() domain.Session {
	return s.runner.store.moveCursor(1)
}

func (s *QuizService) Previous() domain.Session {
	return s.runner.store.moveCursor(-1)
}

// AggregateScore is computed from the current answers on every call.
func (s *QuizService) AggregateScore() int {
	return s.runner.store.Snapshot().AggregateScore()
}

func quizPrecondition(session domain.Session) error {
	if !session.HasQuiz() {
		return domain.NoActiveQuiz()
	}
	return nil
}

func questionPrecondition(session domain.Session, index int) error {
	if !session.HasQuiz() {
		return domain.NoActiveQuiz()
	}
	if index < 0 || index >= len(session.Questions) {
		return domain.QuestionOutOfRange(index, len(session.Questions))
	}
	return nil
}

func hintKey(quizSessionID, questionID string) string {
	return quizSessionID + "/" + questionID
}
