package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/orgvault/orgvault/internal/pgutil"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func run() error {
	ctx := context.Background()

	cfg, err := parseConfig(os.Environ())
	if err != nil {
		return err
	}

	if err = os.MkdirAll(cfg.Filestore.Dir, 0o777); err != nil {
		return fmt.Errorf("filestore dir: %w", err)
	}

	db, err := pgutil.NewPool(ctx, cfg.PG.ConnectionString)
	if err != nil {
		return err
	}
	defer db.Close()

	server := NewServer(db, cfg)

	slog.Info("starting server", "addr", server.Addr)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
