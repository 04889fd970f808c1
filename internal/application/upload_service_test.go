package application

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestUploadSubmitSetsDocument(t *testing.T) {
	f := newFixture(t)
	doc := pdf("paper.pdf")
	f.backend.EXPECT().Upload(mockAnyContext(), doc).Return(ports.UploadResult{DocumentID: "d1", Summary: "S"}, nil)

	session, err := f.upload.Submit(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "d1", session.DocumentID)
	assert.Equal(t, "S", session.Summary)
	assert.Equal(t, "paper.pdf", session.FileName)
	assert.Equal(t, doc.Size(), session.FileSize)
	assert.Equal(t, domain.ContentTypePDF, session.ContentType)
	assert.False(t, session.Busy)
	assert.Empty(t, session.LastError)
	assert.Equal(t, session, f.store.Snapshot())
}

func TestUploadSubmitClearsDocumentScopedState(t *testing.T) {
	f := newFixture(t)
	previous := quizSession(3)
	previous.Transcript = []domain.Message{{ID: "m1", Role: domain.RoleUser}, {ID: "m2", Role: domain.RoleAssistant}}
	previous.Answers = map[int]domain.Answer{0: {QuestionIndex: 0}}
	previous.LastError = "stale"
	seed(f.store, previous)

	doc := domain.Document{Name: "notes.txt", ContentType: "text/plain; charset=utf-8", Content: []byte("plain notes")}
	f.backend.EXPECT().Upload(mockAnyContext(), doc).Return(ports.UploadResult{DocumentID: "d2", Summary: "new"}, nil)

	session, err := f.upload.Submit(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "d2", session.DocumentID)
	assert.Equal(t, domain.ContentTypePlainText, session.ContentType)
	assert.Empty(t, session.Transcript)
	assert.Empty(t, session.QuizSessionID)
	assert.Empty(t, session.Questions)
	assert.Nil(t, session.Cursor)
	assert.Empty(t, session.Answers)
	assert.Empty(t, session.LastError)
}

func TestUploadSubmitRejectsLocallyWithoutTransport(t *testing.T) {
	cases := []struct {
		name string
		doc  domain.Document
	}{
		{name: "missing file", doc: domain.Document{Name: "x.pdf", ContentType: domain.ContentTypePDF}},
		{name: "unsupported type", doc: domain.Document{Name: "x.png", ContentType: "image/png", Content: []byte{0x89}}},
		{name: "empty", doc: domain.Document{Name: "x.txt", ContentType: domain.ContentTypePlainText, Content: []byte{}}},
		{name: "too large", doc: domain.Document{Name: "x.pdf", ContentType: domain.ContentTypePDF, Content: bytes.Repeat([]byte("a"), int(domain.MaxUploadBytes)+1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			before := seed(f.store, documentSession())

			session, err := f.upload.Submit(context.Background(), tc.doc)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, err.Error(), session.LastError)
			assert.False(t, session.Busy)
			assert.Equal(t, before.DocumentID, session.DocumentID)
		})
	}
}

func TestUploadLoadReturnsDocument(t *testing.T) {
	f := newFixture(t)
	doc := pdf("paper.pdf")
	f.loader.EXPECT().Load("/tmp/paper.pdf").Return(doc, nil)

	loaded, session, err := f.upload.Load("/tmp/paper.pdf")
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
	assert.Empty(t, session.LastError)
}

func TestUploadLoadRejectionIsRecorded(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "too large", err: &domain.ValidationError{Field: "file", Reason: "file is 10485761 bytes, limit is 10485760 bytes (10 MB)"}},
		{name: "missing", err: &domain.ValidationError{Field: "file", Reason: "/tmp/nope.pdf does not exist"}},
		{name: "unreadable", err: errors.New("open document: permission denied")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			before := seed(f.store, documentSession())
			f.loader.EXPECT().Load("/tmp/input").Return(domain.Document{}, tc.err)

			_, session, err := f.upload.Load("/tmp/input")
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.err.Error(), session.LastError)
			assert.Equal(t, session, f.store.Snapshot())
			assert.Equal(t, before.DocumentID, session.DocumentID)
			assert.False(t, session.Busy)
		})
	}
}

func TestUploadLoadWithoutLoaderIsRecorded(t *testing.T) {
	f := newFixture(t)
	service := NewUploadService(Deps{Store: f.store, Backend: f.backend, Clock: newTestClock(t)})

	_, session, err := service.Load("/tmp/paper.pdf")
	require.Error(t, err)
	assert.Equal(t, "no document loader configured", session.LastError)
}

func TestUploadSubmitNetworkFailureOnFirstUpload(t *testing.T) {
	f := newFixture(t)
	doc := pdf("paper.pdf")
	f.backend.EXPECT().Upload(mockAnyContext(), doc).Return(ports.UploadResult{}, &domain.TransportError{Message: "dial tcp: connection refused"})

	session, err := f.upload.Submit(context.Background(), doc)
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, "backend unreachable: dial tcp: connection refused", session.LastError)
	assert.Empty(t, session.DocumentID)
	assert.False(t, session.Busy)
}

func TestUploadSubmitFailureKeepsPriorDocument(t *testing.T) {
	f := newFixture(t)
	previous := documentSession()
	previous.Transcript = []domain.Message{{ID: "m1"}, {ID: "m2"}}
	seed(f.store, previous)

	doc := pdf("other.pdf")
	f.backend.EXPECT().Upload(mockAnyContext(), doc).Return(ports.UploadResult{}, &domain.TransportError{StatusCode: 500, Message: "Error processing file"})

	session, err := f.upload.Submit(context.Background(), doc)
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, "d1", session.DocumentID)
	assert.Equal(t, "paper.pdf", session.FileName)
	assert.Len(t, session.Transcript, 2)
	assert.Equal(t, "backend status 500: Error processing file", session.LastError)
}

func TestUploadSubmitWrapsForeignErrors(t *testing.T) {
	f := newFixture(t)
	doc := pdf("paper.pdf")
	f.backend.EXPECT().Upload(mockAnyContext(), doc).Return(ports.UploadResult{}, assert.AnError)

	_, err := f.upload.Submit(context.Background(), doc)
	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, transportErr.StatusCode)
	assert.Equal(t, assert.AnError.Error(), transportErr.Message)
}

func TestUploadResetWhileBusyIsRejected(t *testing.T) {
	f := newFixture(t)
	seed(f.store, documentSession())
	_, err := f.store.begin(domain.OperationAsk, nil)
	require.NoError(t, err)

	session, err := f.upload.Reset()
	require.ErrorIs(t, err, domain.ErrBusy)
	assert.Equal(t, "d1", session.DocumentID)
	assert.True(t, session.Busy)
}

func TestUploadResetReturnsToEmpty(t *testing.T) {
	f := newFixture(t)
	seed(f.store, quizSession(2))

	session, err := f.upload.Reset()
	require.NoError(t, err)
	assert.False(t, session.HasDocument())
	assert.False(t, session.HasQuiz())
	assert.Nil(t, session.Cursor)
}

func TestUploadLogsFailureWithModule(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	f := newFixture(t)
	service := NewUploadService(Deps{Store: f.store, Backend: f.backend, Clock: newTestClock(t), Logger: zap.New(core)})

	doc := pdf("paper.pdf")
	f.backend.EXPECT().Upload(mockAnyContext(), doc).Return(ports.UploadResult{}, &domain.TransportError{StatusCode: 400, Message: "Only PDF and TXT files are supported"})

	_, err := service.Submit(context.Background(), doc)
	require.Error(t, err)

	entries := logs.FilterMessage("workflow failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "upload", entries[0].ContextMap()["module"])
	assert.Equal(t, string(domain.OperationUpload), entries[0].ContextMap()["operation"])
}
