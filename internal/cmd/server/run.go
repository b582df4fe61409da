package serverrun

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cfgpkg "github.com/leynos/crockford/internal/config"
	"github.com/leynos/crockford/internal/journal"
	httpserver "github.com/leynos/crockford/internal/server/http"
	logpkg "github.com/leynos/crockford/pkg/log"
)

// Options configures one server run. Zero-valued fields fall back to the
// embedded Config.
type Options struct {
	Config cfgpkg.Config
}

// Run opens the journal, starts the HTTP server and blocks until ctx is
// cancelled or the server fails.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context; layer a
	// local signal context over the provided one.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := opts.Config
	if cfg.DataDir == "" {
		cfg.DataDir = cfgpkg.DefaultDataDir()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logpkg.ApplyConfig(&logpkg.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	// Redirect stdlib logs (Pebble) to our logger
	logpkg.RedirectStdLog(logger)

	fsync, err := journal.ParseFsyncMode(cfg.Fsync)
	if err != nil {
		return err
	}
	jr, err := journal.Open(journal.Options{
		DataDir: filepath.Join(cfg.DataDir, "journal"),
		Fsync:   fsync,
	})
	if err != nil {
		return err
	}
	defer jr.Close()

	logger.Info("starting cuuid server",
		logpkg.Str("http", cfg.HTTPAddr),
		logpkg.Str("data_dir", cfg.DataDir),
		logpkg.Str("fsync", cfg.Fsync),
		logpkg.Str("level", cfg.LogLevel),
		logpkg.Str("format", cfg.LogFormat),
	)

	srv := httpserver.New(cfg, jr, logger)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe(sctx, cfg.HTTPAddr) }()

	select {
	case <-sctx.Done():
		srv.Close()
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}
