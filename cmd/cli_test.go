package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notesSummary = "The notes describe a cache. The main result is a 2x speedup. Hardware is listed in the appendix."

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, newTestEnv(t, "http://127.0.0.1:1/api"), "", "version")

	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestUnknownCommandIsRejected(t *testing.T) {
	_, _, err := executeCLI(t, newTestEnv(t, "http://127.0.0.1:1/api"), "", "login")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"login\"")
}

func TestHealthPrintsBackendStatus(t *testing.T) {
	backend := newFakeBackend(t)

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "", "health")

	require.NoError(t, err)
	assert.Contains(t, stdout, "backend: "+backend.baseURL())
	assert.Contains(t, stdout, "status: healthy")
}

func TestHealthJSONOutput(t *testing.T) {
	backend := newFakeBackend(t)

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "", "health", "--json")

	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"status\": \"healthy\"")
}

func TestHealthReportsUnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL + "/api"
	server.Close()

	_, _, err := executeCLI(t, newTestEnv(t, baseURL), "", "health")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "check backend health: backend unreachable")
}

func TestInvalidConfiguredBaseURLFailsBeforeAnyRequest(t *testing.T) {
	_, _, err := executeCLI(t, newTestEnv(t, "ftp://example.com"), "", "health")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
	assert.Contains(t, err.Error(), "backend.base_url must be an http or https url")
}

func TestUploadPrintsSummary(t *testing.T) {
	backend := newFakeBackend(t)
	env := newTestEnv(t, backend.baseURL())
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	stdout, _, err := executeCLI(t, env, "", "upload", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Summary: notes.txt")
	assert.Contains(t, stdout, "Hardware is listed in the appendix.")

	upload := backend.lastUpload()
	assert.Equal(t, "notes.txt", upload.fileName)
	assert.Equal(t, "Caches trade memory for latency.\n", upload.content)
	assert.True(t, strings.HasPrefix(upload.contentType, "text/plain"))
}

func TestUploadBriefSummary(t *testing.T) {
	backend := newFakeBackend(t)
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "", "upload", path, "--brief")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Brief summary: notes.txt")
	assert.Contains(t, stdout, "The main result is a 2x speedup.")
}

func TestUploadJSONOutput(t *testing.T) {
	backend := newFakeBackend(t)
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "", "upload", path, "--json")

	require.NoError(t, err)

	var out documentOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "doc-1", out.DocumentID)
	assert.Equal(t, "notes.txt", out.FileName)
	assert.Equal(t, int64(33), out.FileSize)
	assert.Equal(t, "text/plain", out.ContentType)
	assert.Equal(t, notesSummary, out.Summary)
}

func TestUploadRejectsUnsupportedFileWithoutCallingBackend(t *testing.T) {
	backend := newFakeBackend(t)
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	path := writeDocument(t, "image.png", string(png))

	_, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "", "upload", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
	assert.Equal(t, 0, backend.uploadCount())
}

func TestUploadMissingFile(t *testing.T) {
	backend := newFakeBackend(t)

	_, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "", "upload", filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestUploadSurfacesBackendError(t *testing.T) {
	backend := newFakeBackend(t)
	backend.failUpload = true
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	_, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "", "upload", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend status 500: could not read PDF")
}

func TestConfigInitWritesDefaultsOnce(t *testing.T) {
	env := newTestEnv(t, "")

	stdout, _, err := executeCLI(t, env, "", "config", "init")
	require.NoError(t, err)

	path := filepath.Join(env.configHome, "docassist", "config.toml")
	assert.Contains(t, stdout, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url")
	assert.Contains(t, string(data), "http://localhost:8000/api")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	_, _, err = executeCLI(t, env, "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file already exists")
	assert.Contains(t, err.Error(), "--force")

	_, _, err = executeCLI(t, env, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowReflectsFileAndEnvironment(t *testing.T) {
	env := newTestEnv(t, "")
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[quiz]\ndifficulty = \"hard\"\nhint_ttl = \"5m\"\n"), 0o600))
	t.Setenv("DA_BACKEND_BASE_URL", "http://backend.internal:9000/api")

	stdout, _, err := executeCLI(t, env, "", "config", "show", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "# "+path)
	assert.Contains(t, stdout, "http://backend.internal:9000/api")
	assert.Contains(t, stdout, "hard")
	assert.Contains(t, stdout, "5m")
}

func TestConfigShowRejectsMissingExplicitFile(t *testing.T) {
	env := newTestEnv(t, "")

	_, _, err := executeCLI(t, env, "", "config", "show", "--config", filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestShellScriptedSession(t *testing.T) {
	backend := newFakeBackend(t)
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	script := strings.Join([]string{
		"what is cached?",
		"history",
		"quiz easy",
		"hint",
		"answer A",
		"next",
		"answer C",
		"goto 1",
		"score",
		"progress",
		"finish",
		"status",
		"exit",
		"status",
	}, "\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), script, "shell", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Summary: notes.txt")
	assert.Contains(t, stdout, "Pages are cached.")
	assert.Contains(t, stdout, "messages: 2")
	assert.Contains(t, stdout, "Quiz quiz-1: 2 questions.")
	assert.Contains(t, stdout, "hint: Look at the first section.")
	assert.Contains(t, stdout, "Question 1/2")
	assert.Contains(t, stdout, "Question 2/2")
	assert.Contains(t, stdout, "100/100")
	assert.Contains(t, stdout, "  0/100")
	assert.Contains(t, stdout, "Quiz score")
	assert.Contains(t, stdout, " 50/100")
	assert.Contains(t, stdout, "Quiz progress")
	assert.Contains(t, stdout, "Final results")
	assert.Contains(t, stdout, "da[notes.txt q1/2]> ")
	assert.Equal(t, 1, strings.Count(stdout, "Document Session"), "nothing runs after exit")

	statusOut := stdout[strings.LastIndex(stdout, "Document Session"):]
	assert.NotContains(t, statusOut, "quiz:")

	assert.Equal(t, []string{"easy"}, backend.difficulties())
	assert.Equal(t, 1, backend.hintCount())
}

func TestShellPrintsErrorsAndKeepsGoing(t *testing.T) {
	backend := newFakeBackend(t)

	script := strings.Join([]string{
		"what is this about?",
		"answer A",
		"goto x",
		"quiz extreme",
		"status",
		"dismiss",
		"status",
	}, "\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), script, "shell")
	require.NoError(t, err)

	assert.Contains(t, stdout, "error: no active document")
	assert.Contains(t, stdout, "error: no active quiz")
	assert.Contains(t, stdout, "error: usage: goto <n>")
	assert.Contains(t, stdout, "error: difficulty:")
	assert.Contains(t, stdout, "Error dismissed.")

	statuses := strings.Split(stdout, "Document Session")
	require.Len(t, statuses, 3)
	assert.Contains(t, statuses[1], "error: difficulty:")
	assert.NotContains(t, statuses[2], "error:")
	assert.Equal(t, 0, backend.askCount())
}

func TestShellTreatsCommandWithUnexpectedArgsAsQuestion(t *testing.T) {
	backend := newFakeBackend(t)
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "show me the main result\n", "shell", path)
	require.NoError(t, err)

	assert.Equal(t, []string{"show me the main result"}, backend.questions())
	assert.Contains(t, stdout, "Pages are cached.")
}

func TestShellAsksQuestionsThatStartWithACommandName(t *testing.T) {
	backend := newFakeBackend(t)
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	script := strings.Join([]string{
		"summary of section 2?",
		"quiz me on chapter 1",
		"goto the appendix please",
		"quiz hard",
	}, "\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), script, "shell", path)
	require.NoError(t, err)

	assert.Equal(t, []string{"summary of section 2?", "quiz me on chapter 1", "goto the appendix please"}, backend.questions())
	assert.Equal(t, []string{"hard"}, backend.difficulties())
	assert.NotContains(t, stdout, "error:")
}

func TestShellRecordsRejectedUploadInStatus(t *testing.T) {
	backend := newFakeBackend(t)

	oversize := filepath.Join(t.TempDir(), "big.pdf")
	file, err := os.Create(oversize)
	require.NoError(t, err)
	require.NoError(t, file.Truncate(10*1024*1024+1))
	require.NoError(t, file.Close())
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	script := strings.Join([]string{
		"upload " + oversize,
		"status",
		"upload " + missing,
		"status",
	}, "\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), script, "shell")
	require.NoError(t, err)

	statuses := strings.Split(stdout, "Document Session")
	require.Len(t, statuses, 3)
	assert.Contains(t, statuses[1], "error: file: file is 10485761 bytes, limit is 10485760 bytes (10 MB)")
	assert.Contains(t, statuses[2], "error: file: "+missing+" does not exist")
	assert.Equal(t, 0, backend.uploadCount())
}

func TestShellSearchAndClarify(t *testing.T) {
	backend := newFakeBackend(t)
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	script := strings.Join([]string{
		"search cached pages",
		"clarify what about it?",
		"status",
	}, "\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), script, "shell", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, `Search: "cached pages"`)
	assert.Contains(t, stdout, "#1 high relevance (1.00)")
	assert.Less(t, strings.Index(stdout, "We cache pages in memory."), strings.Index(stdout, "Rows are read from disk."))
	assert.Contains(t, stdout, `Clarify: "what about it?"`)
	assert.Contains(t, stdout, "  - Name the section you mean.")
	assert.Contains(t, stdout, "messages: 0")
	assert.Equal(t, []string{"cached pages"}, backend.searches())
	assert.Equal(t, 0, backend.askCount())
}

func TestShellSearchWithoutDocument(t *testing.T) {
	backend := newFakeBackend(t)

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "search cached pages\n", "shell")
	require.NoError(t, err)

	assert.Contains(t, stdout, "error: no active document")
	assert.Empty(t, backend.searches())
}

func TestShellResetAndHelp(t *testing.T) {
	backend := newFakeBackend(t)
	path := writeDocument(t, "notes.txt", "Caches trade memory for latency.\n")

	stdout, _, err := executeCLI(t, newTestEnv(t, backend.baseURL()), "reset\nsummary\nhelp\nquit\n", "shell", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Session reset.")
	assert.Contains(t, stdout, "No active document.")
	assert.Contains(t, stdout, "goto <n>")
	assert.Contains(t, stdout, "Any other line is asked as a question.")
}

type testEnv struct {
	configHome string
	stateHome  string
}

func newTestEnv(t *testing.T, baseURL string) testEnv {
	t.Helper()

	env := testEnv{configHome: t.TempDir(), stateHome: t.TempDir()}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", env.configHome)
	t.Setenv("XDG_STATE_HOME", env.stateHome)
	if baseURL != "" {
		t.Setenv("DA_BACKEND_BASE_URL", baseURL)
	}

	return env
}

func executeCLI(t *testing.T, _ testEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type receivedUpload struct {
	fileName    string
	contentType string
	content     string
}

type fakeBackend struct {
	server     *httptest.Server
	failUpload bool

	mu        sync.Mutex
	uploads   []receivedUpload
	asked     []string
	searched  []string
	levels    []string
	hints     int
	evaluated map[string]float64
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	backend := &fakeBackend{evaluated: map[string]float64{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeTestJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
	})
	mux.HandleFunc("POST /api/upload", backend.handleUpload)
	mux.HandleFunc("POST /api/qa/ask", backend.handleAsk)
	mux.HandleFunc("POST /api/qa/search", backend.handleSearch)
	mux.HandleFunc("POST /api/qa/clarify", func(w http.ResponseWriter, _ *http.Request) {
		writeTestJSON(w, http.StatusOK, map[string]any{
			"suggestions":       []string{"Name the section you mean.", "Ask about one result at a time."},
			"original_question": "what about it?",
			"context":           "document_available",
		})
	})
	mux.HandleFunc("POST /api/challenge/generate", backend.handleGenerate)
	mux.HandleFunc("POST /api/challenge/evaluate", backend.handleEvaluate)
	mux.HandleFunc("POST /api/challenge/hint", func(w http.ResponseWriter, _ *http.Request) {
		backend.mu.Lock()
		backend.hints++
		backend.mu.Unlock()
		writeTestJSON(w, http.StatusOK, map[string]any{"hint": "Look at the first section."})
	})
	mux.HandleFunc("GET /api/challenge/session/{id}", backend.handleProgress("data"))
	mux.HandleFunc("DELETE /api/challenge/session/{id}", backend.handleProgress("final_results"))

	backend.server = httptest.NewServer(mux)
	t.Cleanup(backend.server.Close)

	return backend
}

func (b *fakeBackend) baseURL() string {
	return b.server.URL + "/api"
}

func (b *fakeBackend) handleUpload(w http.ResponseWriter, r *http.Request) {
	if b.failUpload {
		writeTestJSON(w, http.StatusInternalServerError, map[string]any{"detail": "could not read PDF"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeTestJSON(w, http.StatusBadRequest, map[string]any{"detail": err.Error()})
		return
	}
	defer file.Close()

	content, _ := io.ReadAll(file)

	b.mu.Lock()
	b.uploads = append(b.uploads, receivedUpload{
		fileName:    header.Filename,
		contentType: header.Header.Get("Content-Type"),
		content:     string(content),
	})
	b.mu.Unlock()

	writeTestJSON(w, http.StatusOK, map[string]any{"document_id": "doc-1", "summary": notesSummary})
}

func (b *fakeBackend) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	b.mu.Lock()
	b.asked = append(b.asked, req.Question)
	b.mu.Unlock()

	writeTestJSON(w, http.StatusOK, map[string]any{
		"answer":          "Pages are cached.",
		"justification":   "Section 2 says so.",
		"source_snippets": []string{"we cache pages"},
	})
}

func (b *fakeBackend) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	b.mu.Lock()
	b.searched = append(b.searched, req.Question)
	b.mu.Unlock()

	writeTestJSON(w, http.StatusOK, map[string]any{
		"query": req.Question,
		"results": []map[string]any{
			{"chunk_id": 0, "content": "We cache pages in memory.", "relevance_score": 1.0, "rank": 1, "relevance_category": "high"},
			{"chunk_id": 3, "content": "Rows are read from disk.", "relevance_score": 0.9, "rank": 2, "relevance_category": "high"},
		},
		"message":       "2 passages found",
		"total_results": 2,
	})
}

func (b *fakeBackend) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Difficulty string `json:"difficulty"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	b.mu.Lock()
	b.levels = append(b.levels, req.Difficulty)
	b.mu.Unlock()

	writeTestJSON(w, http.StatusOK, map[string]any{
		"session_id": "quiz-1",
		"questions": []map[string]any{
			{"id": "q-a", "question": "What is cached at easy level?", "options": map[string]string{"A": "Pages", "B": "Rows"}},
			{"id": 2, "question": "How much faster?", "options": []string{"1x", "3x", "2x"}},
		},
	})
}

func (b *fakeBackend) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionID string `json:"question_id"`
		UserAnswer string `json:"user_answer"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	score := 0.0
	if req.UserAnswer == "A" {
		score = 100
	}

	b.mu.Lock()
	b.evaluated[req.QuestionID] = score
	b.mu.Unlock()

	writeTestJSON(w, http.StatusOK, map[string]any{
		"score":    score,
		"correct":  score == 100,
		"feedback": "Checked " + req.QuestionID + ".",
	})
}

func (b *fakeBackend) handleProgress(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		answered := len(b.evaluated)
		total := 0.0
		for _, score := range b.evaluated {
			total += score
		}
		b.mu.Unlock()

		average := 0.0
		if answered > 0 {
			average = total / float64(answered)
		}

		writeTestJSON(w, http.StatusOK, map[string]any{
			"message": "ok",
			key: map[string]any{
				"answered":        answered,
				"total_questions": 2,
				"average_score":   average,
			},
		})
	}
}

func (b *fakeBackend) lastUpload() receivedUpload {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.uploads) == 0 {
		return receivedUpload{}
	}
	return b.uploads[len(b.uploads)-1]
}

func (b *fakeBackend) uploadCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.uploads)
}

func (b *fakeBackend) askCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.asked)
}

func (b *fakeBackend) questions() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.asked...)
}

func (b *fakeBackend) searches() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.searched...)
}

func (b *fakeBackend) difficulties() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.levels...)
}

func (b *fakeBackend) hintCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hints
}

func writeTestJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
