package reportserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"chembench/internal/duckdb"
	"chembench/internal/spec"
)

// Config captures the settings for serving a benchmark warehouse.
type Config struct {
	Addr    string
	DBPath  string
	Targets spec.TargetsConfig
}

// Serve starts an HTTP server that hosts run reports and the warehouse file.
// It blocks until the context is cancelled or the server fails.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	db, err := duckdb.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	handler, err := NewHandler(cfg, db)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
