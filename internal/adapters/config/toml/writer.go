package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	Backend   backendSchema   `toml:"backend"`
	Log       logSchema       `toml:"log"`
	Telemetry telemetrySchema `toml:"telemetry"`
	Metrics   metricsSchema   `toml:"metrics"`
	Quiz      quizSchema      `toml:"quiz"`
}

type backendSchema struct {
	BaseURL        string `toml:"base_url"`
	RequestTimeout string `toml:"request_timeout"`
}

type logSchema struct {
	Path    string `toml:"path"`
	Verbose bool   `toml:"verbose"`
}

type telemetrySchema struct {
	Enabled      bool   `toml:"enabled"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

type metricsSchema struct {
	Listen string `toml:"listen"`
}

type quizSchema struct {
	Difficulty string `toml:"difficulty"`
	HintTTL    string `toml:"hint_ttl"`
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		Backend: backendSchema{
			BaseURL:        cfg.Backend.BaseURL,
			RequestTimeout: cfg.Backend.RequestTimeout.String(),
		},
		Log:       logSchema{Path: cfg.Log.Path, Verbose: cfg.Log.Verbose},
		Telemetry: telemetrySchema{Enabled: cfg.Telemetry.Enabled, OTLPEndpoint: cfg.Telemetry.OTLPEndpoint},
		Metrics:   metricsSchema{Listen: cfg.Metrics.Listen},
		Quiz: quizSchema{
			Difficulty: string(cfg.Quiz.Difficulty),
			HintTTL:    cfg.Quiz.HintTTL.String(),
		},
	}
}

func fromSchema(file fileSchema) (Config, error) {
	requestTimeout, err := parseDuration(keyBackendRequestTimeout, file.Backend.RequestTimeout)
	if err != nil {
		return Config{}, err
	}
	hintTTL, err := parseDuration(keyQuizHintTTL, file.Quiz.HintTTL)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Backend:   BackendConfig{BaseURL: file.Backend.BaseURL, RequestTimeout: requestTimeout},
		Log:       LogConfig{Path: file.Log.Path, Verbose: file.Log.Verbose},
		Telemetry: TelemetryConfig{Enabled: file.Telemetry.Enabled, OTLPEndpoint: file.Telemetry.OTLPEndpoint},
		Metrics:   MetricsConfig{Listen: file.Metrics.Listen},
		Quiz:      QuizConfig{Difficulty: domain.Difficulty(file.Quiz.Difficulty), HintTTL: hintTTL},
	}, nil
}

func parseDuration(key string, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

// Encode renders cfg as the TOML document Write would produce.
func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return nil, fmt.Errorf("encode config file: %w", err)
	}
	return data, nil
}

// Decode parses a config document produced by Encode.
func Decode(data []byte) (Config, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("decode config file: %w", err)
	}
	return fromSchema(file)
}

// Write stores cfg at path through a temp file and rename, so readers never
// see a partial file. Without overwrite an existing file is left alone and
// ErrConfigExists is returned.
func Write(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
