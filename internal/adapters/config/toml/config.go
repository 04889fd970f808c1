package toml

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "DA"
	appDirName = "docassist"
	logFile    = "da.log"

	DefaultBaseURL = "http://localhost:8000/api"
	DefaultHintTTL = 30 * time.Minute
)

const (
	keyBackendBaseURL        = "backend.base_url"
	keyBackendRequestTimeout = "backend.request_timeout"
	keyLogPath               = "log.path"
	keyLogVerbose            = "log.verbose"
	keyTelemetryEnabled      = "telemetry.enabled"
	keyTelemetryEndpoint     = "telemetry.otlp_endpoint"
	keyMetricsListen         = "metrics.listen"
	keyQuizDifficulty        = "quiz.difficulty"
	keyQuizHintTTL           = "quiz.hint_ttl"
)

type Config struct {
	Backend   BackendConfig
	Log       LogConfig
	Telemetry TelemetryConfig
	Metrics   MetricsConfig
	Quiz      QuizConfig
}

type BackendConfig struct {
	BaseURL string
	// RequestTimeout bounds each backend call. Zero means no timeout.
	RequestTimeout time.Duration
}

type LogConfig struct {
	Path    string
	Verbose bool
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
}

type MetricsConfig struct {
	// Listen is the address for the /metrics endpoint. Empty disables it.
	Listen string
}

type QuizConfig struct {
	Difficulty domain.Difficulty
	HintTTL    time.Duration
}

// Load reads config.toml from configDir, or explicitFile when set, and
// applies DA_* environment overrides (DA_BACKEND_BASE_URL and so on).
// A missing file in configDir is not an error.
func Load(cfg *viper.Viper, configDir string, explicitFile string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	defaults, err := Defaults()
	if err != nil {
		return Config{}, err
	}
	setDefaults(cfg, defaults)

	cfg.SetConfigType(configType)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if explicitFile != "" {
		cfg.SetConfigFile(explicitFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.AddConfigPath(configDir)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if explicitFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		Backend: BackendConfig{
			BaseURL:        strings.TrimSpace(cfg.GetString(keyBackendBaseURL)),
			RequestTimeout: cfg.GetDuration(keyBackendRequestTimeout),
		},
		Log: LogConfig{
			Path:    cfg.GetString(keyLogPath),
			Verbose: cfg.GetBool(keyLogVerbose),
		},
		Telemetry: TelemetryConfig{
			Enabled:      cfg.GetBool(keyTelemetryEnabled),
			OTLPEndpoint: cfg.GetString(keyTelemetryEndpoint),
		},
		Metrics: MetricsConfig{
			Listen: cfg.GetString(keyMetricsListen),
		},
		Quiz: QuizConfig{
			Difficulty: domain.Difficulty(strings.ToLower(strings.TrimSpace(cfg.GetString(keyQuizDifficulty)))),
			HintTTL:    cfg.GetDuration(keyQuizHintTTL),
		},
	}

	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

// Defaults is the configuration used when no file or environment override is present.
func Defaults() (Config, error) {
	logPath, err := DefaultLogPath()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Backend: BackendConfig{BaseURL: DefaultBaseURL},
		Log:     LogConfig{Path: logPath},
		Quiz:    QuizConfig{HintTTL: DefaultHintTTL},
	}, nil
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("parse %s: %w", keyBackendBaseURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%s must be an http or https url, got %q", keyBackendBaseURL, c.Backend.BaseURL)
	}
	if c.Backend.RequestTimeout < 0 {
		return fmt.Errorf("%s must not be negative", keyBackendRequestTimeout)
	}
	if !c.Quiz.Difficulty.Valid() {
		return fmt.Errorf("%s must be easy, medium or hard, got %q", keyQuizDifficulty, c.Quiz.Difficulty)
	}
	if c.Quiz.HintTTL < 0 {
		return fmt.Errorf("%s must not be negative", keyQuizHintTTL)
	}
	return nil
}

func setDefaults(cfg *viper.Viper, defaults Config) {
	cfg.SetDefault(keyBackendBaseURL, defaults.Backend.BaseURL)
	cfg.SetDefault(keyBackendRequestTimeout, defaults.Backend.RequestTimeout)
	cfg.SetDefault(keyLogPath, defaults.Log.Path)
	cfg.SetDefault(keyLogVerbose, defaults.Log.Verbose)
	cfg.SetDefault(keyTelemetryEnabled, defaults.Telemetry.Enabled)
	cfg.SetDefault(keyTelemetryEndpoint, defaults.Telemetry.OTLPEndpoint)
	cfg.SetDefault(keyMetricsListen, defaults.Metrics.Listen)
	cfg.SetDefault(keyQuizDifficulty, string(defaults.Quiz.Difficulty))
	cfg.SetDefault(keyQuizHintTTL, defaults.Quiz.HintTTL)
}

// DefaultConfigDir is $XDG_CONFIG_HOME/docassist, falling back to ~/.config/docassist.
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultLogPath is $XDG_STATE_HOME/docassist/da.log, falling back to ~/.local/state.
func DefaultLogPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFile), nil
}

func ConfigPath(configDir string) string {
	return filepath.Join(configDir, configName+"."+configType)
}

func xdgDir(envKey string, homeFallback string) (string, error) {
	if base := os.Getenv(envKey); base != "" && filepath.IsAbs(base) {
		return filepath.Join(base, appDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, homeFallback, appDirName), nil
}
