package application

import (
	"context"
	"errors"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"go.uber.org/zap"
)

type UploadService struct {
	runner workflowRunner
	loader ports.DocumentLoader
}

var errNoLoader = errors.New("no document loader configured")

func NewUploadService(deps Deps) *UploadService {
	return &UploadService{
		runner: newWorkflowRunner("upload", deps),
		loader: deps.Loader,
	}
}

// Load reads path into an upload candidate. A path the loader refuses is
// recorded in LastError like any other local upload check, and the returned
// session is the snapshot that carries it.
func (s *UploadService) Load(path string) (domain.Document, domain.Session, error) {
	if s.loader == nil {
		snapshot, err := s.runner.rejectLocal(domain.OperationUpload, errNoLoader)
		return domain.Document{}, snapshot, err
	}

	doc, err := s.loader.Load(path)
	if err != nil {
		snapshot, _ := s.runner.rejectLocal(domain.OperationUpload, err)
		return domain.Document{}, snapshot, err
	}

	return doc, s.runner.store.Snapshot(), nil
}

// Submit uploads doc and, on success, makes it the active document. Any
// transcript or quiz from a previous document is discarded. On failure the
// previous document stays active. The returned session is the settled snapshot
// in both cases.
func (s *UploadService) Submit(ctx context.Context, doc domain.Document) (domain.Session, error) {
	if err := doc.Validate(); err != nil {
		return s.runner.rejectLocal(domain.OperationUpload, err)
	}

	return s.runner.run(ctx, domain.OperationUpload, nil, func(ctx context.Context, _ domain.Session) (func(*domain.Session), error) {
		result, err := s.runner.backend.Upload(ctx, doc)
		if err != nil {
			return nil, err
		}

		return func(session *domain.Session) {
			session.DocumentID = result.DocumentID
			session.FileName = doc.Name
			session.FileSize = doc.Size()
			session.ContentType = domain.NormalizeContentType(doc.ContentType)
			session.Summary = result.Summary
			clearDocumentScope(session)
		}, nil
	})
}

// Reset returns the session to empty. It is rejected while a workflow is in flight.
func (s *UploadService) Reset() (domain.Session, error) {
	snapshot, err := s.runner.store.reset()
	if err != nil {
		return snapshot, s.runner.reject(domain.OperationReset, err)
	}

	s.runner.logger.Info("session reset", zap.Uint64("version", snapshot.Version))
	return snapshot, nil
}
