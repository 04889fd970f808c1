package application

import (
	"context"
	"sync"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"go.uber.org/zap"
)

// SessionStore owns the single Session record and is its only writer.
// Readers get deep copies through Snapshot; writes happen through the
// unexported mutation methods, which only the workflows in this package call.
type SessionStore struct {
	mu      sync.Mutex
	session domain.Session

	// publishMu is taken before mu is released so snapshots reach the
	// publisher in version order.
	publishMu sync.Mutex
	publisher ports.SessionPublisher
	logger    *zap.Logger
}

type StoreOption func(*SessionStore)

func WithPublisher(publisher ports.SessionPublisher) StoreOption {
	return func(s *SessionStore) {
		s.publisher = publisher
	}
}

func WithStoreLogger(logger *zap.Logger) StoreOption {
	return func(s *SessionStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSessionStore(opts ...StoreOption) *SessionStore {
	store := &SessionStore{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *SessionStore) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Clone()
}

func (s *SessionStore) DismissError() domain.Session {
	return s.mutate(func(session *domain.Session) bool {
		if session.LastError == "" {
			return false
		}
		session.LastError = ""
		return true
	})
}

// mutate applies fn atomically. When fn reports a change the version is
// bumped and the new snapshot is published.
func (s *SessionStore) mutate(fn func(session *domain.Session) bool) domain.Session {
	s.mu.Lock()
	changed := fn(&s.session)
	if !changed {
		snapshot := s.session.Clone()
		s.mu.Unlock()
		return snapshot
	}

	s.session.Version++
	snapshot := s.session.Clone()

	s.publishMu.Lock()
	s.mu.Unlock()
	defer s.publishMu.Unlock()

	if s.publisher != nil {
		if err := s.publisher.PublishSession(context.Background(), snapshot.Clone()); err != nil {
			s.logger.Warn("publish session snapshot",
				zap.String("module", "session_store"),
				zap.Uint64("version", snapshot.Version),
				zap.Error(err),
			)
		}
	}

	return snapshot
}

// begin is the check-and-set every workflow goes through: it rejects the call
// when another workflow is in flight or precondition fails, and otherwise marks
// the session busy and clears the last error.
func (s *SessionStore) begin(op domain.Operation, precondition func(domain.Session) error) (domain.Session, error) {
	var rejection error
	snapshot := s.mutate(func(session *domain.Session) bool {
		if session.Busy {
			rejection = &domain.BusyError{Operation: session.BusyOperation}
		} else if precondition != nil {
			rejection = precondition(*session)
		}

		if rejection != nil {
			session.LastError = rejection.Error()
			return true
		}

		session.Busy = true
		session.BusyOperation = op
		session.LastError = ""
		return true
	})
	if rejection != nil {
		return snapshot, rejection
	}

	return snapshot, nil
}

func (s *SessionStore) settle(apply func(session *domain.Session)) domain.Session {
	return s.mutate(func(session *domain.Session) bool {
		if apply != nil {
			apply(session)
		}
		session.Busy = false
		session.BusyOperation = ""
		session.LastError = ""
		return true
	})
}

func (s *SessionStore) fail(err error) domain.Session {
	return s.mutate(func(session *domain.Session) bool {
		session.Busy = false
		session.BusyOperation = ""
		session.LastError = err.Error()
		return true
	})
}

// recordError stores a local rejection without touching the busy flag.
func (s *SessionStore) recordError(err error) domain.Session {
	return s.mutate(func(session *domain.Session) bool {
		session.LastError = err.Error()
		return true
	})
}

func (s *SessionStore) reset() (domain.Session, error) {
	var rejection error
	snapshot := s.mutate(func(session *domain.Session) bool {
		if session.Busy {
			rejection = &domain.BusyError{Operation: session.BusyOperation}
			session.LastError = rejection.Error()
			return true
		}

		*session = domain.Session{Version: session.Version}
		return true
	})

	return snapshot, rejection
}

func (s *SessionStore) clearTranscript() domain.Session {
	return s.mutate(func(session *domain.Session) bool {
		if len(session.Transcript) == 0 {
			return false
		}
		session.Transcript = nil
		return true
	})
}

func (s *SessionStore) setCursor(index int) domain.Session {
	return s.mutate(func(session *domain.Session) bool {
		if index < 0 || index >= len(session.Questions) {
			return false
		}
		if session.Cursor != nil && *session.Cursor == index {
			return false
		}
		cursor := index
		session.Cursor = &cursor
		return true
	})
}

func (s *SessionStore) moveCursor(delta int) domain.Session {
	return s.mutate(func(session *domain.Session) bool {
		if session.Cursor == nil {
			return false
		}
		next := *session.Cursor + delta
		if next < 0 || next >= len(session.Questions) {
			return false
		}
		session.Cursor = &next
		return true
	})
}

func clearDocumentScope(session *domain.Session) {
	session.Transcript = nil
	clearQuiz(session)
}

func clearQuiz(session *domain.Session) {
	session.QuizSessionID = ""
	session.Questions = nil
	session.Cursor = nil
	session.Answers = nil
}
