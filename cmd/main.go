// Command gaffer picks a starting eleven: it reads a role file and a
// scouted-player table, runs the selection engine, and prints the team
// sheet on stdout.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/gaffer/internal/app"
	"github.com/okian/gaffer/internal/config"
	"github.com/okian/gaffer/pkg/logger"
	"github.com/okian/gaffer/pkg/metrics"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		roleFile  = flag.String("roles", "", "Path of the role file (default from config)")
		table     = flag.String("table", "", "Path of the player table: .xlsx, .csv, or .tsv (default from config)")
		sheetName = flag.String("sheet", "", "Worksheet to read from workbook files (default: first sheet)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
		}
	}()
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Flags beat config for the two input paths.
	roles := cfg.RoleFile
	if *roleFile != "" {
		roles = *roleFile
	}
	players := cfg.PlayerTable
	if *table != "" {
		players = *table
	}
	worksheet := cfg.TableSheet
	if *sheetName != "" {
		worksheet = *sheetName
	}

	// Optional metrics listener for batch loops.
	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Error(ctx, "metrics listener failed", logger.Error(err))
			}
		}()
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithTableHeaderRows(cfg.TableHeaderRows),
		app.WithTableSheet(worksheet),
		app.WithPoolShardCount(cfg.PoolShardCount),
	)

	out, err := svc.PickTeam(ctx, roles, players)
	if err != nil {
		log.Error(ctx, "team selection failed", logger.Error(err))
		return 1
	}
	os.Stdout.WriteString(out)
	return 0
}
