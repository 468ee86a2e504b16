package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/riverfjs/telegramify-html/internal/types"
	"github.com/riverfjs/telegramify-html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// SecretsDir is where Docker secrets are mounted.
var SecretsDir = "/run/secrets"

// Config is the service configuration. Zero MaxMessageLength means the
// render config decides.
type Config struct {
	Port             int
	NatsURL          string
	NatsToken        string
	LogLevel         string
	MaxMessageLength int
	RenderConfigPath string
	RequestSubject   string
	ResultSubject    string
}

func Load() Config {
	return Config{
		Port:             envInt("TELEGRAMIFY_PORT", 8780),
		NatsURL:          envStr("NATS_URL", ""),
		NatsToken:        ReadSecret("nats_token", "NATS_TOKEN"),
		LogLevel:         envStr("LOG_LEVEL", "info"),
		MaxMessageLength: envInt("MAX_MESSAGE_LENGTH", 0),
		RenderConfigPath: envStr("TELEGRAMIFY_CONFIG", ""),
		RequestSubject:   envStr("TELEGRAMIFY_REQUEST_SUBJECT", "telegramify.render.request"),
		ResultSubject:    envStr("TELEGRAMIFY_RESULT_SUBJECT", "telegramify.render.result"),
	}
}

// ReadSecret reads a secret from SecretsDir/<name> or SecretsDir/<name>.txt,
// falling back to the environment variable envKey.
func ReadSecret(name, envKey string) string {
	for _, path := range []string{
		filepath.Join(SecretsDir, name),
		filepath.Join(SecretsDir, name+".txt"),
	} {
		data, err := os.ReadFile(path) // #nosec G304 -- fixed secrets mount
		if err != nil {
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			slog.Debug("secret loaded from file", "name", name)
			return v
		}
	}
	return os.Getenv(envKey)
}

// ResolveRenderConfig loads the render config file named by c and applies
// the MAX_MESSAGE_LENGTH override when it was set.
func (c Config) ResolveRenderConfig() (*types.RenderConfig, error) {
	cfg, err := LoadRenderConfig(c.RenderConfigPath)
	if err != nil {
		return nil, err
	}
	if c.MaxMessageLength > 0 {
		cfg.MaxLength = c.MaxMessageLength
	}
	return cfg, nil
}

// LoadRenderConfig reads a YAML render config. Keys missing from the file
// keep their defaults; unknown keys are rejected. An empty path returns
// the defaults.
func LoadRenderConfig(path string) (*types.RenderConfig, error) {
	cfg := types.DefaultRenderConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.Normalize()
	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
