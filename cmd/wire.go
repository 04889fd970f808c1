package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/bnema/docassist-cli/internal/adapters/backend/httpapi"
	configadapter "github.com/bnema/docassist-cli/internal/adapters/config/toml"
	fileloader "github.com/bnema/docassist-cli/internal/adapters/documents/file"
	"github.com/bnema/docassist-cli/internal/adapters/events/gochannel"
	"github.com/bnema/docassist-cli/internal/adapters/logging"
	"github.com/bnema/docassist-cli/internal/adapters/metrics/prom"
	sessionview "github.com/bnema/docassist-cli/internal/adapters/render/session"
	oteladapter "github.com/bnema/docassist-cli/internal/adapters/telemetry/otel"
	"github.com/bnema/docassist-cli/internal/application"
	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/version"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const historyFileName = "shell_history"

type app struct {
	config      configadapter.Config
	configPath  string
	historyPath string

	logger   *zap.Logger
	store    *application.SessionStore
	upload   *application.UploadService
	qa       *application.QAService
	quiz     *application.QuizService
	backend  httpapi.Client
	recorder *prom.Recorder
	events   *gochannel.Publisher
	tracing  *oteladapter.Provider

	sessionRenderer  func(sessionview.Kind, domain.Session, sessionview.RenderOptions) (string, error)
	progressRenderer func(string, domain.Progress) (string, error)
	now              func() time.Time

	closeLog func() error
}

func wireApp(ctx context.Context, opts rootOptions, stderr io.Writer) (*app, error) {
	if err := configadapter.LoadDotEnv(configadapter.DotEnvFile); err != nil {
		return nil, err
	}

	configDir, err := configadapter.DefaultConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory: %w", err)
	}

	cfg, err := configadapter.Load(viper.New(), configDir, opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	configPath := opts.configFile
	if configPath == "" {
		configPath = configadapter.ConfigPath(configDir)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Path:    cfg.Log.Path,
		Verbose: opts.verbose || cfg.Log.Verbose,
		Console: stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	tracing, err := oteladapter.Setup(ctx, oteladapter.Config{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.OTLPEndpoint,
		ServiceName:    "docassist-cli",
		ServiceVersion: version.Version,
	})
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("wire tracing: %w", err)
	}

	events := gochannel.NewPublisher(gochannel.NewPubSub(logging.NewWatermillAdapter(logger)))
	recorder := prom.NewRecorder()
	store := application.NewSessionStore(
		application.WithPublisher(events),
		application.WithStoreLogger(logger),
	)

	backend := httpapi.Client{
		BaseURL:        cfg.Backend.BaseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.Backend.RequestTimeout,
		Tracer:         tracing.Tracer(),
	}

	deps := application.Deps{
		Store:    store,
		Backend:  backend,
		Loader:   fileloader.Loader{MaxBytes: domain.MaxUploadBytes},
		Recorder: recorder,
		Logger:   logger,
	}

	historyPath := ""
	if cfg.Log.Path != "" {
		historyPath = filepath.Join(filepath.Dir(cfg.Log.Path), historyFileName)
	}

	logger.Debug("app wired",
		zap.String("module", "cmd"),
		zap.String("base_url", cfg.Backend.BaseURL),
		zap.String("config", configPath),
		zap.Bool("tracing", tracing.Enabled()),
	)

	return &app{
		config:           cfg,
		configPath:       configPath,
		historyPath:      historyPath,
		logger:           logger,
		store:            store,
		upload:           application.NewUploadService(deps),
		qa:               application.NewQAService(deps),
		quiz:             application.NewQuizService(deps, application.WithHintTTL(cfg.Quiz.HintTTL)),
		backend:          backend,
		recorder:         recorder,
		events:           events,
		tracing:          tracing,
		sessionRenderer:  sessionview.Render,
		progressRenderer: sessionview.RenderProgress,
		now:              time.Now,
		closeLog:         closeLog,
	}, nil
}

// Close flushes spans, stops the event bus and closes the log file.
func (a *app) Close() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return errors.Join(
		a.tracing.Shutdown(shutdownCtx),
		a.events.Close(),
		a.closeLog(),
	)
}

func (a *app) render(kind sessionview.Kind, snapshot domain.Session) (string, error) {
	rendered, err := a.sessionRenderer(kind, snapshot, sessionview.RenderOptions{Now: a.now()})
	if err != nil {
		return "", fmt.Errorf("render session: %w", err)
	}
	return rendered, nil
}
