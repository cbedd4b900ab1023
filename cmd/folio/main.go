package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pellmont/folio/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	url := flag.String("url", "", "override the list endpoint URL (optional)")
	logLevel := flag.String("log-level", "", "override log level: debug, info, warn, error (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		URL:        *url,
		LogLevel:   *logLevel,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		return 1
	}
	return 0
}
