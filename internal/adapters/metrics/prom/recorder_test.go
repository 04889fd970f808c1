package prom

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWorkflowCountsOutcomes(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	recorder.RecordWorkflow(domain.OperationAsk, ports.OutcomeSuccess, 300*time.Millisecond)
	recorder.RecordWorkflow(domain.OperationAsk, ports.OutcomeSuccess, time.Second)
	recorder.RecordWorkflow(domain.OperationAsk, ports.OutcomeRejected, 0)
	recorder.RecordWorkflow(domain.OperationUpload, ports.OutcomeFailed, 2*time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(recorder.outcomes.WithLabelValues("ask", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.outcomes.WithLabelValues("ask", "rejected")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.outcomes.WithLabelValues("upload", "failed")), 0)

	// Rejections never reach the backend, so they are not timed.
	assert.Equal(t, 2, testutil.CollectAndCount(recorder.duration))
}

func TestRecorderExposition(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	recorder.RecordWorkflow(domain.OperationGenerateQuiz, ports.OutcomeSuccess, time.Second)

	expected := `
# HELP docassist_workflow_total Workflow operations by outcome.
# TYPE docassist_workflow_total counter
docassist_workflow_total{operation="generate_quiz",outcome="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(expected), "docassist_workflow_total"))
}

func TestServeExposesMetrics(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	recorder.RecordWorkflow(domain.OperationHint, ports.OutcomeSuccess, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	addr, done, err := recorder.Serve(ctx, "127.0.0.1:0")
	require.NoError(t, err)

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), `docassist_workflow_total{operation="hint",outcome="success"} 1`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}
