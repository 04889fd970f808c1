package application

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"go.uber.org/zap"
)

// Deps groups the collaborators shared by every workflow service.
type Deps struct {
	Store    *SessionStore
	Backend  ports.Backend
	Loader   ports.DocumentLoader
	Clock    ports.Clock
	Recorder ports.WorkflowRecorder
	Logger   *zap.Logger
}

type workflowCall func(ctx context.Context, snapshot domain.Session) (func(session *domain.Session), error)

type workflowRunner struct {
	module   string
	store    *SessionStore
	backend  ports.Backend
	clock    ports.Clock
	recorder ports.WorkflowRecorder
	logger   *zap.Logger
}

func newWorkflowRunner(module string, deps Deps) workflowRunner {
	if deps.Store == nil {
		deps.Store = NewSessionStore()
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Recorder == nil {
		deps.Recorder = ports.NopWorkflowRecorder{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return workflowRunner{
		module:   module,
		store:    deps.Store,
		backend:  deps.Backend,
		clock:    deps.Clock,
		recorder: deps.Recorder,
		logger:   deps.Logger.With(zap.String("module", module)),
	}
}

// run takes the busy gate, performs call outside the store lock and settles the
// session with either the returned apply func or the failure message.
func (r workflowRunner) run(ctx context.Context, op domain.Operation, precondition func(domain.Session) error, call workflowCall) (domain.Session, error) {
	snapshot, err := r.store.begin(op, precondition)
	if err != nil {
		return snapshot, r.reject(op, err)
	}

	started := r.clock.Now()
	r.logger.Debug("workflow started", zap.String("operation", string(op)), zap.String("document_id", snapshot.DocumentID))

	apply, err := call(ctx, snapshot)
	elapsed := r.clock.Now().Sub(started)
	if err != nil {
		err = asTransportError(err)
		settled := r.store.fail(err)
		r.recorder.RecordWorkflow(op, ports.OutcomeFailed, elapsed)
		r.logger.Warn("workflow failed",
			zap.String("operation", string(op)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return settled, err
	}

	settled := r.store.settle(apply)
	r.recorder.RecordWorkflow(op, ports.OutcomeSuccess, elapsed)
	r.logger.Info("workflow settled",
		zap.String("operation", string(op)),
		zap.Duration("elapsed", elapsed),
		zap.Uint64("version", settled.Version),
	)

	return settled, nil
}

// rejectLocal records a rejection raised before the busy gate.
func (r workflowRunner) rejectLocal(op domain.Operation, err error) (domain.Session, error) {
	snapshot := r.store.recordError(err)
	return snapshot, r.reject(op, err)
}

func (r workflowRunner) reject(op domain.Operation, err error) error {
	r.recorder.RecordWorkflow(op, ports.OutcomeRejected, 0)
	r.logger.Info("workflow rejected", zap.String("operation", string(op)), zap.Error(err))
	return err
}

func (r workflowRunner) now() time.Time {
	return r.clock.Now()
}

func asTransportError(err error) error {
	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		return err
	}

	return &domain.TransportError{Message: err.Error()}
}
