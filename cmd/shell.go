package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	sessionview "github.com/bnema/docassist-cli/internal/adapters/render/session"
	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newShellCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "shell [file]",
		Short: "Start an interactive session, optionally uploading file first",
		Long:  "shell keeps one document session open. Type help for the available commands; any other line is asked as a question about the active document.",
		Args:  cobra.MaximumNArgs(1),
		RunE: rt.runE(func(cmd *cobra.Command, args []string, app *app) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if err := watchSession(ctx, app); err != nil {
				return err
			}
			if err := serveMetrics(ctx, app, cmd.ErrOrStderr()); err != nil {
				return err
			}

			sh := newShell(app, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			defer func() {
				_ = sh.editor.Close()
			}()

			if len(args) == 1 {
				sh.exec(ctx, "upload "+args[0])
			}

			return sh.run(ctx)
		}),
	}
}

// watchSession logs every published snapshot until ctx is done.
func watchSession(ctx context.Context, app *app) error {
	events, err := app.events.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("watch session: %w", err)
	}

	logger := app.logger.With(zap.String("module", "shell"))
	go func() {
		for event := range events {
			logger.Debug("session changed",
				zap.Uint64("version", event.Version),
				zap.String("document_id", event.DocumentID),
				zap.Bool("busy", event.Busy),
				zap.String("last_error", event.LastError),
			)
		}
	}()

	return nil
}

func serveMetrics(ctx context.Context, app *app, stderr io.Writer) error {
	listen := app.config.Metrics.Listen
	if listen == "" {
		return nil
	}

	addr, done, err := app.recorder.Serve(ctx, listen)
	if err != nil {
		return err
	}

	go func() {
		if err := <-done; err != nil {
			app.logger.Warn("metrics server stopped", zap.String("module", "shell"), zap.Error(err))
		}
	}()

	_, err = fmt.Fprintf(stderr, "metrics: http://%s/metrics\n", addr)
	return err
}

type shellCommand struct {
	name    string
	args    string
	summary string
	run     func(s *shell, ctx context.Context, args string) error
	// fits reports whether args have the shape the command expects. A line
	// that does not fit is asked as a question instead. Nil accepts anything.
	fits func(args string) bool
}

func noArgs(args string) bool {
	return args == ""
}

func oneWord(args string) bool {
	return !strings.ContainsAny(args, " \t")
}

func summaryArgs(args string) bool {
	switch args {
	case "", "--brief", "-b", "brief":
		return true
	default:
		return false
	}
}

type shell struct {
	app      *app
	out      io.Writer
	progress io.Writer
	editor   lineEditor
	commands []shellCommand
	byName   map[string]shellCommand
}

var errExitShell = errors.New("exit shell")

func newShell(app *app, in io.Reader, out, progress io.Writer) *shell {
	s := &shell{
		app:      app,
		out:      out,
		progress: progress,
		commands: shellCommands(),
		byName:   map[string]shellCommand{},
	}

	names := make([]string, 0, len(s.commands))
	for _, command := range s.commands {
		s.byName[command.name] = command
		names = append(names, command.name)
	}
	s.byName["quit"] = s.byName["exit"]

	s.editor = newLineEditor(in, out, lineEditorConfig{
		HistoryFile: app.historyPath,
		Commands:    names,
	})
	s.out = s.editor.Output()

	return s
}

func shellCommands() []shellCommand {
	return []shellCommand{
		{name: "upload", args: "<path>", summary: "upload a PDF or text file and show its summary", run: (*shell).upload},
		{name: "summary", args: "[--brief]", summary: "show the summary of the active document", run: (*shell).summary, fits: summaryArgs},
		{name: "ask", args: "<question>", summary: "ask a question about the active document", run: (*shell).ask},
		{name: "search", args: "<query>", summary: "list the passages that best match query", run: (*shell).search},
		{name: "clarify", args: "<question>", summary: "suggest ways to make a question more specific", run: (*shell).clarify},
		{name: "history", summary: "show the conversation so far", run: (*shell).history, fits: noArgs},
		{name: "clear", summary: "clear the conversation", run: (*shell).clear, fits: noArgs},
		{name: "quiz", args: "[easy|medium|hard]", summary: "generate a quiz on the active document", run: (*shell).generateQuiz, fits: oneWord},
		{name: "show", summary: "show the current quiz question", run: (*shell).showQuestion, fits: noArgs},
		{name: "next", summary: "move to the next question", run: (*shell).next, fits: noArgs},
		{name: "prev", summary: "move to the previous question", run: (*shell).prev, fits: noArgs},
		{name: "goto", args: "<n>", summary: "move to question n", run: (*shell).gotoQuestion, fits: oneWord},
		{name: "answer", args: "<text>", summary: "answer the current question", run: (*shell).answer},
		{name: "hint", summary: "get a hint for the current question", run: (*shell).hint, fits: noArgs},
		{name: "score", summary: "show the score over answered questions", run: (*shell).score, fits: noArgs},
		{name: "progress", summary: "show quiz progress as tracked by the backend", run: (*shell).remoteProgress, fits: noArgs},
		{name: "finish", summary: "end the quiz and show the final results", run: (*shell).finish, fits: noArgs},
		{name: "reset", summary: "discard the document, conversation and quiz", run: (*shell).reset, fits: noArgs},
		{name: "dismiss", summary: "clear the last error", run: (*shell).dismiss, fits: noArgs},
		{name: "status", summary: "show the session state", run: (*shell).status, fits: noArgs},
		{name: "help", summary: "list commands", run: (*shell).help, fits: noArgs},
		{name: "exit", summary: "leave the shell", run: (*shell).exit, fits: noArgs},
	}
}

func (s *shell) run(ctx context.Context) error {
	for {
		line, err := s.editor.ReadLine(s.prompt())
		switch {
		case errors.Is(err, errInputInterrupt):
			continue
		case errors.Is(err, errInputEOF):
			return nil
		case err != nil:
			return fmt.Errorf("read shell input: %w", err)
		}

		if line == "" {
			continue
		}
		if !s.exec(ctx, line) {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// exec runs one line and reports whether the shell should keep reading.
// Command errors are printed, not returned.
func (s *shell) exec(ctx context.Context, line string) bool {
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	args = strings.TrimSpace(args)

	command, ok := s.byName[strings.ToLower(name)]
	if !ok || (command.fits != nil && !command.fits(args)) {
		command, args = s.byName["ask"], line
	}

	err := command.run(s, ctx, args)
	if errors.Is(err, errExitShell) {
		return false
	}
	if err != nil {
		s.printf("error: %s\n", err)
	}
	return true
}

func (s *shell) prompt() string {
	snapshot := s.app.store.Snapshot()
	if !snapshot.HasDocument() {
		return "da> "
	}
	if index, _, ok := snapshot.CurrentQuestion(); ok {
		return fmt.Sprintf("da[%s q%d/%d]> ", snapshot.FileName, index+1, len(snapshot.Questions))
	}
	return fmt.Sprintf("da[%s]> ", snapshot.FileName)
}

func (s *shell) upload(ctx context.Context, args string) error {
	if args == "" {
		return errors.New("usage: upload <path>")
	}

	snapshot, err := uploadDocument(ctx, s.app, s.progress, args)
	if err != nil {
		return err
	}
	return s.show(sessionview.KindSummary, snapshot)
}

// summary only sees args accepted by summaryArgs.
func (s *shell) summary(_ context.Context, args string) error {
	kind := sessionview.KindSummary
	if args != "" {
		kind = sessionview.KindBriefSummary
	}
	return s.show(kind, s.app.store.Snapshot())
}

func (s *shell) ask(ctx context.Context, args string) error {
	var snapshot domain.Session
	err := runWorkflow(ctx, s.progress, domain.OperationAsk, "", func(ctx context.Context) error {
		var askErr error
		snapshot, askErr = s.app.qa.Ask(ctx, args)
		return askErr
	})
	if err != nil {
		return err
	}
	return s.show(sessionview.KindLastExchange, snapshot)
}

func (s *shell) search(ctx context.Context, args string) error {
	var results domain.SearchResults
	err := runWorkflow(ctx, s.progress, domain.OperationSearch, "", func(ctx context.Context) error {
		var searchErr error
		results, searchErr = s.app.qa.Search(ctx, args)
		return searchErr
	})
	if err != nil {
		return err
	}
	return s.showRendered(sessionview.RenderSearch(results))
}

func (s *shell) clarify(ctx context.Context, args string) error {
	var clarification domain.Clarification
	err := runWorkflow(ctx, s.progress, domain.OperationClarify, "", func(ctx context.Context) error {
		var clarifyErr error
		clarification, clarifyErr = s.app.qa.Clarify(ctx, args)
		return clarifyErr
	})
	if err != nil {
		return err
	}
	return s.showRendered(sessionview.RenderClarification(clarification))
}

func (s *shell) history(context.Context, string) error {
	return s.show(sessionview.KindTranscript, domain.Session{Transcript: s.app.qa.Transcript()})
}

func (s *shell) clear(context.Context, string) error {
	s.app.qa.ClearTranscript()
	s.printf("Conversation cleared.\n")
	return nil
}

func (s *shell) generateQuiz(ctx context.Context, args string) error {
	difficulty := domain.Difficulty(args)
	if args == "" {
		difficulty = s.app.config.Quiz.Difficulty
	}

	var snapshot domain.Session
	err := runWorkflow(ctx, s.progress, domain.OperationGenerateQuiz, "", func(ctx context.Context) error {
		var generateErr error
		snapshot, generateErr = s.app.quiz.Generate(ctx, difficulty)
		return generateErr
	})
	if err != nil {
		return err
	}

	s.printf("Quiz %s: %d questions.\n", snapshot.QuizSessionID, len(snapshot.Questions))
	if len(snapshot.Questions) == 0 {
		return nil
	}
	return s.show(sessionview.KindQuestion, snapshot)
}

func (s *shell) show(kind sessionview.Kind, snapshot domain.Session) error {
	rendered, err := s.app.render(kind, snapshot)
	if err != nil {
		return err
	}
	return writeRendered(s.out, rendered)
}

func (s *shell) showQuestion(context.Context, string) error {
	return s.show(sessionview.KindQuestion, s.app.store.Snapshot())
}

func (s *shell) next(context.Context, string) error {
	return s.show(sessionview.KindQuestion, s.app.quiz.Next())
}

func (s *shell) prev(context.Context, string) error {
	return s.show(sessionview.KindQuestion, s.app.quiz.Previous())
}

func (s *shell) gotoQuestion(_ context.Context, args string) error {
	number, err := strconv.Atoi(args)
	if err != nil {
		return errors.New("usage: goto <n>")
	}

	snapshot := s.app.store.Snapshot()
	if !snapshot.HasQuiz() {
		return domain.NoActiveQuiz()
	}
	if number < 1 || number > len(snapshot.Questions) {
		return domain.QuestionOutOfRange(number-1, len(snapshot.Questions))
	}

	return s.show(sessionview.KindQuestion, s.app.quiz.SetCursor(number-1))
}

func (s *shell) answer(ctx context.Context, args string) error {
	index := s.currentIndex()

	var snapshot domain.Session
	err := runWorkflow(ctx, s.progress, domain.OperationSubmitAnswer, "", func(ctx context.Context) error {
		var submitErr error
		snapshot, submitErr = s.app.quiz.SubmitAnswer(ctx, index, args)
		return submitErr
	})
	if err != nil {
		return err
	}
	return s.show(sessionview.KindQuestion, snapshot)
}

func (s *shell) hint(ctx context.Context, _ string) error {
	index := s.currentIndex()

	var hint string
	err := runWorkflow(ctx, s.progress, domain.OperationHint, "", func(ctx context.Context) error {
		var hintErr error
		hint, hintErr = s.app.quiz.Hint(ctx, index)
		return hintErr
	})
	if err != nil {
		return err
	}

	s.printf("hint: %s\n", hint)
	return nil
}

func (s *shell) score(context.Context, string) error {
	return s.show(sessionview.KindScore, s.app.store.Snapshot())
}

func (s *shell) remoteProgress(ctx context.Context, _ string) error {
	var progress domain.Progress
	err := runWorkflow(ctx, s.progress, domain.OperationQuizProgress, "", func(ctx context.Context) error {
		var progressErr error
		progress, progressErr = s.app.quiz.RemoteProgress(ctx)
		return progressErr
	})
	if err != nil {
		return err
	}
	return s.showProgress("Quiz progress", progress)
}

func (s *shell) finish(ctx context.Context, _ string) error {
	var progress domain.Progress
	err := runWorkflow(ctx, s.progress, domain.OperationFinishQuiz, "", func(ctx context.Context) error {
		var finishErr error
		progress, _, finishErr = s.app.quiz.Finish(ctx)
		return finishErr
	})
	if err != nil {
		return err
	}
	return s.showProgress("Final results", progress)
}

func (s *shell) showProgress(title string, progress domain.Progress) error {
	rendered, err := s.app.progressRenderer(title, progress)
	if err != nil {
		return fmt.Errorf("render progress: %w", err)
	}
	return writeRendered(s.out, rendered)
}

func (s *shell) showRendered(rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render results: %w", err)
	}
	return writeRendered(s.out, rendered)
}

func (s *shell) reset(context.Context, string) error {
	if _, err := s.app.upload.Reset(); err != nil {
		return err
	}
	s.printf("Session reset.\n")
	return nil
}

func (s *shell) dismiss(context.Context, string) error {
	s.app.store.DismissError()
	s.printf("Error dismissed.\n")
	return nil
}

func (s *shell) status(context.Context, string) error {
	return s.show(sessionview.KindStatus, s.app.store.Snapshot())
}

func (s *shell) help(context.Context, string) error {
	for _, command := range s.commands {
		usage := command.name
		if command.args != "" {
			usage += " " + command.args
		}
		s.printf("  %-26s %s\n", usage, command.summary)
	}
	s.printf("Any other line is asked as a question.\n")
	return nil
}

func (s *shell) exit(context.Context, string) error {
	return errExitShell
}

// currentIndex is the question under the cursor, or 0 so the workflow can
// report the missing quiz or question itself.
func (s *shell) currentIndex() int {
	if index, _, ok := s.app.store.Snapshot().CurrentQuestion(); ok {
		return index
	}
	return 0
}

func (s *shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
