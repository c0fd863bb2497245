package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/taskease/internal/buildinfo"
	"github.com/dmitrijs2005/taskease/internal/client/cli"
	"github.com/dmitrijs2005/taskease/internal/client/config"
	"github.com/dmitrijs2005/taskease/internal/filex"
	"github.com/dmitrijs2005/taskease/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Printf("taskease: %v", err)
		os.Exit(1)
	}
}

// run starts the client and returns once the REPL exits. Log file and signal
// handler are released before it returns.
func run(cfg *config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "error", err)
		return err
	}

	app.Run(ctx)
	return nil
}

// newLogger writes to cfg.LogFile when set, otherwise to stderr.
func newLogger(cfg *config.Config) (logging.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return logging.New(cfg.LogLevel, os.Stderr), func() error { return nil }, nil
	}

	path, err := filex.EnsureParentDir(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = f
	return logging.New(cfg.LogLevel, w), f.Close, nil
}
