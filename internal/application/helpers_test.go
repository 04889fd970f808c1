package application

import (
	"testing"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestClock(t *testing.T) *mocks.MockClock {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()
	return clock
}

func mockAnyContext() interface{} {
	return mock.Anything
}

type fixture struct {
	store   *SessionStore
	backend *mocks.MockBackend
	loader  *mocks.MockDocumentLoader
	upload  *UploadService
	qa      *QAService
	quiz    *QuizService
}

func newFixture(t *testing.T, opts ...QuizOption) fixture {
	t.Helper()

	store := NewSessionStore()
	backend := mocks.NewMockBackend(t)
	loader := mocks.NewMockDocumentLoader(t)
	deps := Deps{Store: store, Backend: backend, Loader: loader, Clock: newTestClock(t)}

	return fixture{
		store:   store,
		backend: backend,
		loader:  loader,
		upload:  NewUploadService(deps),
		qa:      NewQAService(deps),
		quiz:    NewQuizService(deps, opts...),
	}
}

// seed replaces the session wholesale, keeping the version counter moving.
func seed(store *SessionStore, session domain.Session) domain.Session {
	return store.mutate(func(current *domain.Session) bool {
		version := current.Version
		*current = session.Clone()
		current.Version = version
		return true
	})
}

func documentSession() domain.Session {
	return domain.Session{
		DocumentID:  "d1",
		FileName:    "paper.pdf",
		FileSize:    2048,
		ContentType: domain.ContentTypePDF,
		Summary:     "S",
	}
}

func quizSession(questions int) domain.Session {
	session := documentSession()
	session.QuizSessionID = "q1"
	session.Questions = sampleQuestions(questions)
	if questions > 0 {
		cursor := 0
		session.Cursor = &cursor
	}
	return session
}

func sampleQuestions(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, domain.Question{
			ID:     string(rune('a'+i)) + "-id",
			Prompt: "Question " + string(rune('1'+i)),
			Options: map[string]string{
				"A": "first",
				"B": "second",
			},
		})
	}
	return questions
}

func pdf(name string) domain.Document {
	return domain.Document{Name: name, ContentType: domain.ContentTypePDF, Content: []byte("%PDF-1.7 body")}
}
