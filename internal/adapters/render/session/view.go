package session

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type Kind int

const (
	KindStatus Kind = iota
	KindSummary
	KindBriefSummary
	KindTranscript
	KindLastExchange
	KindQuestion
	KindScore
)

// DefaultBriefSentences is how many sentences the brief summary keeps.
const DefaultBriefSentences = 3

const barWidth = 24

type RenderOptions struct {
	Now            time.Time
	BriefSentences int
}

func renderView(kind Kind, snapshot domain.Session, opts RenderOptions, s styles) string {
	switch kind {
	case KindSummary:
		return renderSummary(snapshot, false, opts, s)
	case KindBriefSummary:
		return renderSummary(snapshot, true, opts, s)
	case KindTranscript:
		return renderTranscript(snapshot, opts, s)
	case KindLastExchange:
		return renderLastExchange(snapshot, opts, s)
	case KindQuestion:
		return renderQuestion(snapshot, s)
	case KindScore:
		return renderScore(snapshot, s)
	default:
		return renderStatus(snapshot, s)
	}
}

func renderStatus(snapshot domain.Session, s styles) string {
	lines := []string{s.title.Render("Document Session")}

	if !snapshot.HasDocument() {
		lines = append(lines, s.empty.Render("No active document."))
	} else {
		lines = append(lines,
			s.document.Render(documentTitle(snapshot)),
			s.header.Render(fmt.Sprintf("document id: %s", snapshot.DocumentID)),
			s.detail.Render(fmt.Sprintf("messages: %d", len(snapshot.Transcript))),
		)
	}

	if snapshot.HasQuiz() {
		progress := snapshot.Progress()
		line := fmt.Sprintf("quiz: %s, answered %d/%d", snapshot.QuizSessionID, progress.Answered, progress.Total)
		if index, _, ok := snapshot.CurrentQuestion(); ok {
			line += fmt.Sprintf(", on question %d", index+1)
		}
		lines = append(lines, s.detail.Render(line))
	}

	if snapshot.Busy {
		lines = append(lines, s.warning.Render(fmt.Sprintf("busy: %s in progress", snapshot.BusyOperation)))
	}
	if snapshot.LastError != "" {
		lines = append(lines, s.warning.Render("error: "+snapshot.LastError))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummary(snapshot domain.Session, brief bool, opts RenderOptions, s styles) string {
	if !snapshot.HasDocument() {
		return s.empty.Render("No active document.")
	}

	title := "Summary"
	body := strings.TrimSpace(snapshot.Summary)
	if brief {
		title = "Brief summary"
		sentences := opts.BriefSentences
		if sentences <= 0 {
			sentences = DefaultBriefSentences
		}
		body = domain.BriefSummary(body, sentences)
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("%s: %s", title, snapshot.FileName)),
	}
	if body == "" {
		lines = append(lines, s.empty.Render("The backend returned no summary."))
	} else {
		lines = append(lines, s.detail.Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTranscript(snapshot domain.Session, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Conversation"),
		s.header.Render(fmt.Sprintf("messages: %d", len(snapshot.Transcript))),
	}

	if len(snapshot.Transcript) == 0 {
		lines = append(lines, s.empty.Render("No questions asked yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, message := range snapshot.Transcript {
		lines = append(lines, s.section.Render(renderMessage(message, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderLastExchange shows the latest question and answer pair.
func renderLastExchange(snapshot domain.Session, opts RenderOptions, s styles) string {
	count := len(snapshot.Transcript)
	if count < 2 {
		return s.empty.Render("No questions asked yet.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderMessage(snapshot.Transcript[count-2], opts, s),
		s.section.Render(renderMessage(snapshot.Transcript[count-1], opts, s)),
	)
}

func renderMessage(message domain.Message, opts RenderOptions, s styles) string {
	speaker := s.user.Render("you")
	if message.Role == domain.RoleAssistant {
		speaker = s.assistant.Render("assistant")
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, speaker, " ", s.meta.Render(formatTimestamp(message.Timestamp, opts.Now))),
		s.detail.Render(message.Text),
	}

	if message.Justification != "" {
		parts = append(parts, s.meta.Render("why: "+message.Justification))
	}
	for _, snippet := range message.SourceSnippets {
		parts = append(parts, s.meta.Render(fmt.Sprintf("source: %q", snippet)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSearch(results domain.SearchResults, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Search: %q", results.Query)),
		s.header.Render(fmt.Sprintf("passages: %d", len(results.Hits))),
	}

	if len(results.Hits) == 0 {
		empty := "No matching passages."
		if results.Message != "" {
			empty += " " + results.Message
		}
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render(empty))...)
	}

	for _, hit := range results.Hits {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.meta.Render(fmt.Sprintf("#%d %s relevance (%.2f)", hit.Rank, hit.Category, hit.Relevance)),
			s.detail.Render(strings.TrimSpace(hit.Content)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderClarification(clarification domain.Clarification, s styles) string {
	lines := []string{s.title.Render(fmt.Sprintf("Clarify: %q", clarification.Question))}

	if len(clarification.Suggestions) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("The question looks specific enough."))...)
	}

	for _, suggestion := range clarification.Suggestions {
		lines = append(lines, s.option.Render("  - "+suggestion))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderQuestion(snapshot domain.Session, s styles) string {
	if !snapshot.HasQuiz() {
		return s.empty.Render("No active quiz.")
	}

	index, question, ok := snapshot.CurrentQuestion()
	if !ok {
		return s.empty.Render("The quiz has no questions.")
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Question %d/%d", index+1, len(snapshot.Questions))),
		s.detail.Render(question.Prompt),
	}

	for _, key := range question.OptionKeys() {
		lines = append(lines, s.option.Render(fmt.Sprintf("  %s) %s", key, question.Options[key])))
	}

	answer, answered := snapshot.AnswerFor(index)
	if !answered {
		lines = append(lines, s.section.Render(s.empty.Render("Not answered yet.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderEvaluation(answer, s)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEvaluation(answer domain.Answer, s styles) string {
	verdict := s.incorrect.Render("incorrect")
	if answer.Evaluation.Correct {
		verdict = s.correct.Render("correct")
	}

	parts := []string{
		s.detail.Render("your answer: " + answer.SubmittedText),
		scoreLine("score:", answer.Evaluation.Score, s) + " " + verdict,
	}

	if answer.Evaluation.Feedback != "" {
		parts = append(parts, s.detail.Render(answer.Evaluation.Feedback))
	}
	if answer.Evaluation.Justification != "" {
		parts = append(parts, s.meta.Render("why: "+answer.Evaluation.Justification))
	}
	if answer.Evaluation.Reference != "" {
		parts = append(parts, s.meta.Render(fmt.Sprintf("reference: %q", answer.Evaluation.Reference)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderScore(snapshot domain.Session, s styles) string {
	if !snapshot.HasQuiz() {
		return s.empty.Render("No active quiz.")
	}

	return renderProgress("Quiz score", snapshot.Progress(), s)
}

func renderProgress(title string, progress domain.Progress, s styles) string {
	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("answered: %d/%d", progress.Answered, progress.Total)),
	}

	if progress.Answered == 0 {
		lines = append(lines, s.empty.Render("No answers submitted yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, scoreLine("average:", progress.AverageScore, s))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func scoreLine(label string, score int, s styles) string {
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.meta.Render(label),
		" ",
		renderScoreBar(score, barWidth, s),
		" ",
		scoreStyle.Render(fmt.Sprintf("%3d/100", score)),
	)
}

func renderScoreBar(score, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := float64(clampScore(score)) / float64(domain.MaxScore)
	filled := int(math.Round(float64(width) * fraction))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampScore(score int) int {
	if score < domain.MinScore {
		return domain.MinScore
	}
	if score > domain.MaxScore {
		return domain.MaxScore
	}
	return score
}

// scoreColor fades from red through yellow to green as the score rises.
func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return lipgloss.Color("114")
	case score >= 50:
		return lipgloss.Color("221")
	default:
		return lipgloss.Color("203")
	}
}

func documentTitle(snapshot domain.Session) string {
	name := strings.TrimSpace(snapshot.FileName)
	if name == "" {
		name = snapshot.DocumentID
	}

	details := []string{formatSize(snapshot.FileSize)}
	if snapshot.ContentType != "" {
		details = append(details, snapshot.ContentType)
	}

	return fmt.Sprintf("Document: %s (%s)", name, strings.Join(details, ", "))
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes) / unit
	for _, suffix := range []string{"KB", "MB"} {
		if value < unit || suffix == "MB" {
			return fmt.Sprintf("%.1f %s", value, suffix)
		}
		value /= unit
	}

	return fmt.Sprintf("%d B", bytes)
}

func formatTimestamp(at, now time.Time) string {
	if at.IsZero() {
		return ""
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := at.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return at.Format("15:04")
	}

	return at.Format("15:04 on 02 Jan")
}
