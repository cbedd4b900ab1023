package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pellmont/folio/internal/api"
	"github.com/pellmont/folio/internal/config"
	"github.com/pellmont/folio/internal/logging"
	"github.com/pellmont/folio/internal/pager"
	"github.com/pellmont/folio/internal/prefs"
	"github.com/pellmont/folio/internal/ui"
)

// Options carries command-line overrides into Run. Zero values mean
// "use the config file or the built-in default".
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// PrefsPath overrides the default preferences file location.
	PrefsPath string

	// URL overrides the configured API endpoint.
	URL string

	// LogLevel overrides the configured log level.
	LogLevel string
}

// Run loads configuration, builds the API client and the pagination
// controller, and starts the terminal UI. It blocks until the UI exits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.URL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logSink, logPath, err := openLogSink(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if closer, ok := logSink.(io.Closer); ok {
		defer closer.Close()
	}

	logging.Setup(logging.Config{
		Level:  logging.Level(cfg.LogLevel),
		Output: logSink,
	})
	logger := logging.NewLogger("app")
	logger.Info().
		Str("endpoint", cfg.APIURL).
		Str("log_level", cfg.LogLevel).
		Msg("starting folio")

	client, err := api.NewClient(cfg.APIURL, cfg.RequestTimeout, logging.NewLogger("api"))
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	controller := pager.New(client, logging.NewLogger("pager"))

	return ui.Run(ui.Options{
		Context:    ctx,
		Controller: controller,
		Endpoint:   cfg.APIURL,
		LogPath:    logPath,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}

// openLogSink opens the log file for appending, creating parent
// directories as needed. An empty path disables logging: the sink is
// io.Discard and the returned path is empty, which the UI shows as
// "logging disabled".
func openLogSink(path string) (io.Writer, string, error) {
	if path == "" {
		return io.Discard, "", nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, "", err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", err
	}
	return file, path, nil
}
