// Command rank lists the best-rated players in a table for one role.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/gaffer/internal/app"
	"github.com/okian/gaffer/internal/config"
	"github.com/okian/gaffer/pkg/logger"
)

const defaultTopN = 10

func main() {
	os.Exit(run())
}

func run() int {
	var (
		table = flag.String("table", "", "Path of the player table: .xlsx, .csv, or .tsv (default from config)")
		role  = flag.String("role", "", "Role to rank, e.g. 'GK' or 'W(s) R'")
		topN  = flag.Int("top", defaultTopN, "Number of entries to list")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	if *role == "" {
		os.Stderr.WriteString("missing -role\n")
		return 1
	}
	path := cfg.PlayerTable
	if *table != "" {
		path = *table
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithTableHeaderRows(cfg.TableHeaderRows),
		app.WithTableSheet(cfg.TableSheet),
		app.WithPoolShardCount(cfg.PoolShardCount),
	)
	entries, err := svc.RankRole(ctx, path, *role, *topN)
	if err != nil {
		log.Error(ctx, "ranking failed", logger.Error(err))
		return 1
	}
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%3d. %s (age %d, score: %.1f)\n", e.Rank, e.Player, e.Age, e.Score)
	}
	return 0
}
