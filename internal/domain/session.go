package domain

import (
	"cmp"
	"maps"
	"slices"
	"time"
)

type Operation string

const (
	OperationUpload       Operation = "upload"
	OperationAsk          Operation = "ask"
	OperationSearch       Operation = "search"
	OperationClarify      Operation = "clarify"
	OperationGenerateQuiz Operation = "generate_quiz"
	OperationSubmitAnswer Operation = "submit_answer"
	OperationHint         Operation = "hint"
	OperationQuizProgress Operation = "quiz_progress"
	OperationFinishQuiz   Operation = "finish_quiz"
	OperationReset        Operation = "reset"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID             string
	Role           Role
	Text           string
	Justification  string
	SourceSnippets []string
	Timestamp      time.Time
}

type Question struct {
	ID      string
	Prompt  string
	Options map[string]string
}

// OptionKeys returns the option keys in display order. Shorter keys come
// first so numbered keys past Z stay after the letters and in numeric order.
func (q Question) OptionKeys() []string {
	keys := slices.Collect(maps.Keys(q.Options))
	slices.SortFunc(keys, func(a, b string) int {
		if byLength := cmp.Compare(len(a), len(b)); byLength != 0 {
			return byLength
		}
		return cmp.Compare(a, b)
	})
	return keys
}

type Evaluation struct {
	Score         int
	Correct       bool
	Feedback      string
	Justification string
	Reference     string
}

type Answer struct {
	QuestionIndex int
	QuestionID    string
	SubmittedText string
	Evaluation    Evaluation
	Timestamp     time.Time
}

type Session struct {
	DocumentID  string
	FileName    string
	FileSize    int64
	ContentType string
	Summary     string

	Transcript []Message

	QuizSessionID string
	Questions     []Question
	Cursor        *int
	Answers       map[int]Answer

	Busy          bool
	BusyOperation Operation
	LastError     string

	Version uint64
}

func (s Session) HasDocument() bool {
	return s.DocumentID != ""
}

func (s Session) HasQuiz() bool {
	return s.QuizSessionID != ""
}

// CurrentQuestion returns the question under the cursor, if any.
func (s Session) CurrentQuestion() (int, Question, bool) {
	if s.Cursor == nil {
		return 0, Question{}, false
	}
	index := *s.Cursor
	if index < 0 || index >= len(s.Questions) {
		return 0, Question{}, false
	}
	return index, s.Questions[index], true
}

func (s Session) AnswerFor(index int) (Answer, bool) {
	answer, ok := s.Answers[index]
	return answer, ok
}

func (s Session) AggregateScore() int {
	return AggregateScore(s.Answers)
}

func (s Session) Progress() Progress {
	return Progress{
		Answered:     len(s.Answers),
		Total:        len(s.Questions),
		AverageScore: AggregateScore(s.Answers),
	}
}

// Clone returns a deep copy that shares no slices or maps with s.
func (s Session) Clone() Session {
	out := s

	if s.Transcript != nil {
		out.Transcript = make([]Message, len(s.Transcript))
		for i, message := range s.Transcript {
			message.SourceSnippets = slices.Clone(message.SourceSnippets)
			out.Transcript[i] = message
		}
	}

	if s.Questions != nil {
		out.Questions = make([]Question, len(s.Questions))
		for i, question := range s.Questions {
			question.Options = maps.Clone(question.Options)
			out.Questions[i] = question
		}
	}

	if s.Cursor != nil {
		cursor := *s.Cursor
		out.Cursor = &cursor
	}

	out.Answers = maps.Clone(s.Answers)

	return out
}

type Progress struct {
	Answered     int
	Total        int
	AverageScore int
}
