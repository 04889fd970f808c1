package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowLabel(t *testing.T) {
	assert.Equal(t, "Uploading notes.txt...", workflowLabel(domain.OperationUpload, "notes.txt"))
	assert.Equal(t, "Scoring answer...", workflowLabel(domain.OperationSubmitAnswer, ""))
	assert.Equal(t, "reset...", workflowLabel(domain.OperationReset, ""))
}

func TestWorkflowSpinnerShowsElapsedAfterASecond(t *testing.T) {
	started := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	current := started
	model := newWorkflowSpinner("Thinking...", func() time.Time { return current }, nil)

	assert.Contains(t, model.View(), "Thinking...")
	assert.NotContains(t, model.View(), "0s")

	current = started.Add(3500 * time.Millisecond)
	assert.Contains(t, model.View(), "Thinking... 3s")
}

func TestWorkflowSpinnerStopsOnWorkDone(t *testing.T) {
	model := newWorkflowSpinner("Thinking...", time.Now, nil)

	updated, cmd := model.Update(workDoneMsg{err: errors.New("boom")})
	require.NotNil(t, cmd)

	done, ok := updated.(workflowSpinner)
	require.True(t, ok)
	assert.True(t, done.done)
	assert.EqualError(t, done.err, "boom")
	assert.Empty(t, done.View())
}

func TestRunWorkflowWithoutTerminalRunsDirectly(t *testing.T) {
	var output bytes.Buffer
	calls := 0

	err := runWorkflow(context.Background(), &output, domain.OperationAsk, "", func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, output.String())
}
