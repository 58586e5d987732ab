package toaddb

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/toaddb/toaddb/internal/log"
	"github.com/toaddb/toaddb/internal/manager"
	"github.com/toaddb/toaddb/internal/toaddb/config"
	"github.com/toaddb/toaddb/internal/toaddb/repl"
	"github.com/toaddb/toaddb/internal/version"
)

// Run runs the toadDB CLI.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.CLIVersion())

	var logWriter io.Writer = os.Stderr
	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer file.Close()
		logWriter = file
	}
	logger := log.NewLogger(logWriter)

	var mgr *manager.Manager
	defer func() {
		// Cleanup tolerates a manager that was never constructed.
		if mgr == nil {
			return
		}
		if err := mgr.Close(); err != nil {
			logger.ErrorNs(log.NsShell, "error closing database", log.KV{"error": err.Error()})
		}
	}()

	mgr, err := manager.New(manager.Config{
		Logger:      logger,
		Path:        conf.Database,
		BusyTimeout: conf.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}

	rp := repl.NewRepl(ctx, stop, conf, mgr)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
