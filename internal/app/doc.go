// Package app provides the orchestration layer for the folio application.
//
// # Overview
//
// This package wires together configuration, logging, the API client, the
// pagination controller, and the UI to create the complete folio TUI
// experience. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/folio/config.toml
//  2. Apply command-line overrides (endpoint URL, log level)
//  3. Load UI preferences (theme) from ~/.config/folio/prefs.toml
//  4. Open the log sink and configure structured logging
//  5. Initialize the HTTP client for the paginated list endpoint
//  6. Create the pagination controller that owns fetch state
//  7. Start the TUI and block until the user exits or context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read folio config
//	       ├─────> prefs.Load()       Read saved theme
//	       ├─────> openLogSink()      Open log file (or discard)
//	       ├─────> logging.Setup()    Configure zerolog
//	       ├─────> api.NewClient()    Create HTTP client
//	       ├─────> pager.New()        Create pagination controller
//	       └─────> ui.Run()           Start TUI (blocks)
//
//	Pagination Loop (driven by the UI):
//	┌─────────────────────────────────────────┐
//	│ ui dispatches controller operations     │
//	│  ├─> LoadInitial / LoadMore / Retry     │
//	│  ├─> controller fetches via api.Client  │
//	│  └─> controller updates its state       │
//	│      └─> UI reads controller.Snapshot() │
//	└─────────────────────────────────────────┘
//
// # Logging
//
// The TUI owns the terminal, so logs never go to stdout or stderr. Run
// opens the configured log file in append mode (creating parent
// directories as needed) and hands it to the logging package as the sink
// for JSON lines. An empty log_file in the config disables logging
// entirely; the sink becomes io.Discard and the UI's log view shows a
// placeholder instead of tailing a file.
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Log file cannot be created or opened
//   - API client initialization failure (malformed endpoint URL)
//
// Recoverable errors (absorbed, never fatal):
//   - Missing or unreadable preferences file (defaults apply)
//   - Fetch failures at runtime (the controller records them and the UI
//     offers retry)
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to config.toml (default: ~/.config/folio/config.toml)
//   - PrefsPath: Path to prefs.toml (default: ~/.config/folio/prefs.toml)
//   - URL: Override for the configured API endpoint
//   - LogLevel: Override for the configured log level
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{
//		ConfigPath: "", // Use default
//		URL:        "https://rickandmortyapi.com/api/character",
//	}
//
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("folio failed: %v", err)
//	}
//
// # Dependencies
//
//   - config: Loads and parses the folio configuration file
//   - prefs: Persists UI preferences across sessions
//   - logging: Structured logging setup on zerolog
//   - api: HTTP client for the paginated list endpoint
//   - pager: Pagination controller owning fetch state and phases
//   - ui: Terminal user interface (TUI) implementation
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (api, pager, ui). The app package
// simply connects these pieces with sensible defaults for the
// single-operator, read-only browsing use case.
package app
