package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mnadalc/yt-translate-transcription/internal/cli"
	"github.com/mnadalc/yt-translate-transcription/internal/db"
)

func runHealth(args []string) int {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 10*time.Second, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		logger.Info().Msg("configuration ok, no database configured")
		fmt.Println("ok (no database configured)")
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("database health check failed")
		fmt.Fprintf(os.Stderr, "Database check failed: %v\n", err)
		return 1
	}
	defer pool.Close()

	logger.Info().Msg("configuration and database ok")
	fmt.Println("ok")
	return 0
}
