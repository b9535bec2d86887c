package main

import (
	"fmt"
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
	connectionString, ok := os.LookupEnv("ORGVAULT_PG_CONNECTION_STRING")
	if !ok {
		return fmt.Errorf("ORGVAULT_PG_CONNECTION_STRING is unset")
	}

	if err := pgutil.Setup(connectionString); err != nil {
		return err
	}

	return nil
}
