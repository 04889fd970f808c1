package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxResponseBytes = 1 << 20

const tracerName = "github.com/bnema/docassist-cli/internal/adapters/backend/httpapi"

var _ ports.Backend = Client{}

// Client talks to the document assistant backend over HTTP and JSON. BaseURL
// is the API root, for example http://localhost:8000/api.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Tracer         trace.Tracer
}

func (c Client) Upload(ctx context.Context, doc domain.Document) (ports.UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(doc.Name)))
	header.Set("Content-Type", doc.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return ports.UploadResult{}, &domain.TransportError{Message: fmt.Sprintf("create upload part: %v", err)}
	}
	if _, err := part.Write(doc.Content); err != nil {
		return ports.UploadResult{}, &domain.TransportError{Message: fmt.Sprintf("write upload part: %v", err)}
	}
	if err := writer.Close(); err != nil {
		return ports.UploadResult{}, &domain.TransportError{Message: fmt.Sprintf("close upload body: %v", err)}
	}

	var payload uploadResponse
	if err := c.do(ctx, request{
		op:          "upload",
		method:      http.MethodPost,
		path:        []string{"upload"},
		body:        &body,
		contentType: writer.FormDataContentType(),
	}, &payload); err != nil {
		return ports.UploadResult{}, err
	}
	if payload.DocumentID == "" {
		return ports.UploadResult{}, &domain.TransportError{StatusCode: http.StatusOK, Message: "upload response missing document_id"}
	}

	return ports.UploadResult{DocumentID: payload.DocumentID, Summary: payload.Summary}, nil
}

func (c Client) Ask(ctx context.Context, req ports.AskRequest) (ports.AskResult, error) {
	var payload askResponse
	if err := c.doJSON(ctx, "ask", http.MethodPost, []string{"qa", "ask"}, askRequest{
		Question:            req.Question,
		DocumentID:          req.DocumentID,
		ConversationHistory: []any{},
	}, &payload); err != nil {
		return ports.AskResult{}, err
	}

	return ports.AskResult{
		Answer:         payload.Answer,
		Justification:  payload.Justification,
		SourceSnippets: payload.SourceSnippets,
	}, nil
}

// Search ranks passages of the document against req.Query. An unknown
// document comes back as an empty result with the backend's message.
func (c Client) Search(ctx context.Context, req ports.SearchRequest) (domain.SearchResults, error) {
	var payload searchResponse
	if err := c.doJSON(ctx, "search", http.MethodPost, []string{"qa", "search"}, askRequest{
		Question:            req.Query,
		DocumentID:          req.DocumentID,
		ConversationHistory: []any{},
	}, &payload); err != nil {
		return domain.SearchResults{}, err
	}

	hits := make([]domain.SearchHit, 0, len(payload.Results))
	for i, result := range payload.Results {
		hits = append(hits, result.hit(i))
	}

	query := payload.Query
	if query == "" {
		query = req.Query
	}

	return domain.SearchResults{Query: query, Hits: hits, Message: payload.message()}, nil
}

func (c Client) Clarify(ctx context.Context, req ports.ClarifyRequest) (domain.Clarification, error) {
	var payload clarifyResponse
	if err := c.doJSON(ctx, "clarify", http.MethodPost, []string{"qa", "clarify"}, askRequest{
		Question:            req.Question,
		DocumentID:          req.DocumentID,
		ConversationHistory: []any{},
	}, &payload); err != nil {
		return domain.Clarification{}, err
	}

	question := payload.OriginalQuestion
	if question == "" {
		question = req.Question
	}

	return domain.Clarification{
		Question:    question,
		Suggestions: payload.Suggestions,
		Context:     payload.Context,
	}, nil
}

func (c Client) GenerateQuiz(ctx context.Context, req ports.GenerateQuizRequest) (ports.GeneratedQuiz, error) {
	var payload generateResponse
	if err := c.doJSON(ctx, "generate_quiz", http.MethodPost, []string{"challenge", "generate"}, generateRequest{
		DocumentID: req.DocumentID,
		Difficulty: string(req.Difficulty),
	}, &payload); err != nil {
		return ports.GeneratedQuiz{}, err
	}
	if payload.SessionID == "" {
		return ports.GeneratedQuiz{}, &domain.TransportError{StatusCode: http.StatusOK, Message: "generate response missing session_id"}
	}

	questions := make([]domain.Question, 0, len(payload.Questions))
	for _, question := range payload.Questions {
		options := map[string]string(question.Options)
		if options == nil {
			options = map[string]string{}
		}
		questions = append(questions, domain.Question{
			ID:      string(question.ID),
			Prompt:  question.Question,
			Options: options,
		})
	}

	return ports.GeneratedQuiz{QuizSessionID: payload.SessionID, Questions: questions}, nil
}

func (c Client) EvaluateAnswer(ctx context.Context, req ports.EvaluateRequest) (domain.Evaluation, error) {
	var payload evaluateResponse
	if err := c.doJSON(ctx, "evaluate_answer", http.MethodPost, []string{"challenge", "evaluate"}, evaluateRequest{
		SessionID:  req.QuizSessionID,
		QuestionID: req.QuestionID,
		UserAnswer: req.AnswerText,
		DocumentID: req.DocumentID,
	}, &payload); err != nil {
		return domain.Evaluation{}, err
	}

	return domain.Evaluation{
		Score:         domain.ClampScore(payload.Score),
		Correct:       payload.Correct,
		Feedback:      payload.Feedback,
		Justification: payload.Justification,
		Reference:     payload.Reference,
	}, nil
}

func (c Client) Hint(ctx context.Context, req ports.HintRequest) (string, error) {
	var payload hintResponse
	if err := c.doJSON(ctx, "hint", http.MethodPost, []string{"challenge", "hint"}, hintRequest{
		SessionID:  req.QuizSessionID,
		QuestionID: req.QuestionID,
		DocumentID: req.DocumentID,
	}, &payload); err != nil {
		return "", err
	}

	return payload.Hint, nil
}

func (c Client) QuizProgress(ctx context.Context, quizSessionID string) (domain.Progress, error) {
	var payload progressResponse
	if err := c.do(ctx, request{
		op:     "quiz_progress",
		method: http.MethodGet,
		path:   []string{"challenge", "session", url.PathEscape(quizSessionID)},
	}, &payload); err != nil {
		return domain.Progress{}, err
	}

	return payload.Data.progress(), nil
}

func (c Client) EndQuiz(ctx context.Context, quizSessionID string) (domain.Progress, error) {
	var payload endSessionResponse
	if err := c.do(ctx, request{
		op:     "end_quiz",
		method: http.MethodDelete,
		path:   []string{"challenge", "session", url.PathEscape(quizSessionID)},
	}, &payload); err != nil {
		return domain.Progress{}, err
	}

	return payload.FinalResults.progress(), nil
}

func (c Client) Health(ctx context.Context) (map[string]any, error) {
	payload := map[string]any{}
	if err := c.do(ctx, request{op: "health", method: http.MethodGet, path: []string{"health"}}, &payload); err != nil {
		return nil, err
	}

	return payload, nil
}

type request struct {
	op          string
	method      string
	path        []string
	body        io.Reader
	contentType string
}

func (c Client) doJSON(ctx context.Context, op string, method string, path []string, in any, out any) error {
	encoded, err := json.Marshal(in)
	if err != nil {
		return &domain.TransportError{Message: fmt.Sprintf("encode %s request: %v", op, err)}
	}

	return c.do(ctx, request{
		op:          op,
		method:      method,
		path:        path,
		body:        bytes.NewReader(encoded),
		contentType: "application/json",
	}, out)
}

// do performs one request and decodes a 2xx body into out. Every failure is
// returned as a *domain.TransportError.
func (c Client) do(ctx context.Context, r request, out any) (err error) {
	ctx, span := c.tracer().Start(ctx, "backend."+r.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.method", r.method)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	endpoint, err := buildAPIURL(c.BaseURL, r.path...)
	if err != nil {
		return &domain.TransportError{Message: err.Error()}
	}
	span.SetAttributes(attribute.String("http.url", endpoint))

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, r.method, endpoint, r.body)
	if err != nil {
		return &domain.TransportError{Message: fmt.Sprintf("create %s request: %v", r.op, err)}
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &domain.TransportError{Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domain.TransportError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read %s response: %v", r.op, err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return &domain.TransportError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, payload)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &domain.TransportError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode %s response: %v", r.op, err)}
	}

	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) tracer() trace.Tracer {
	if c.Tracer != nil {
		return c.Tracer
	}
	return otel.Tracer(tracerName)
}

// requestContext applies RequestTimeout when set. Without it the request
// lives as long as ctx.
func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.RequestTimeout <= 0 {
		return ctx, func() {}
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.RequestTimeout)
}

func buildAPIURL(baseURL string, path ...string) (string, error) {
	if baseURL == "" {
		return "", errors.New("backend base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse backend base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("backend base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("backend base url host is required")
	}

	return parsed.JoinPath(path...).String(), nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}
