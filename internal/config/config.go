package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields folio reads from its config file.
type Config struct {
	APIURL string
	// LogFile is an absolute path, or empty when logging is disabled.
	LogFile        string
	LogLevel       string
	RequestTimeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/folio/config.toml"
	defaultAPIURL         = "https://rickandmortyapi.com/api/character"
	defaultLogFile        = "~/.local/state/folio/folio.log"
	defaultLogLevel       = "info"
	defaultTimeoutSeconds = 10
)

// Load locates and parses the folio config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:         defaultAPIURL,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		RequestTimeout: defaultTimeoutSeconds * time.Second,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string  `toml:"api_url"`
		LogFile        *string `toml:"log_file"`
		LogLevel       string  `toml:"log_level"`
		TimeoutSeconds int     `toml:"request_timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.LogFile != nil {
		// An explicitly empty log_file disables logging.
		if v := strings.TrimSpace(*raw.LogFile); v == "" {
			cfg.LogFile = ""
		} else {
			cfg.LogFile = mustExpand(v)
		}
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
