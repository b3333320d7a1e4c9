// Package app provides the core service the squad-tool binaries sit on:
// it wires table loading, parsing, selection, and formatting, and owns the
// logging and metrics seams for soft signals.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gaffer/internal/adapters/repository"
	"github.com/okian/gaffer/internal/adapters/tableio"
	"github.com/okian/gaffer/internal/domain/catalogue"
	"github.com/okian/gaffer/internal/domain/format"
	"github.com/okian/gaffer/internal/domain/model"
	"github.com/okian/gaffer/internal/domain/rolefile"
	"github.com/okian/gaffer/internal/domain/selection"
	"github.com/okian/gaffer/internal/domain/sheet"
	"github.com/okian/gaffer/pkg/logger"
	"github.com/okian/gaffer/pkg/metrics"
)

// Service implements the squad-selection pipeline for the CLI binaries.
type Service struct {
	loader *tableio.Loader
	pool   *repository.PoolStore
	logger logger.Logger

	// Configuration
	headerRows int
	sheetName  string
	shardCount int
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTableHeaderRows sets how many heading rows to drop from tables.
func WithTableHeaderRows(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.headerRows = n
		}
	}
}

// WithTableSheet names the worksheet to read from workbook files.
func WithTableSheet(name string) Option {
	return func(s *Service) {
		s.sheetName = name
	}
}

// WithPoolShardCount sets the shard count of the pool store.
func WithPoolShardCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.shardCount = n
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		headerRows: 1,
		shardCount: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.loader = tableio.NewLoader(
		tableio.WithHeaderRows(s.headerRows),
		tableio.WithSheetName(s.sheetName),
	)
	s.pool = repository.NewPoolStore(repository.WithShardCount(s.shardCount))
	return s
}

// Pool exposes the store filled by LoadPlayers.
func (s *Service) Pool() repository.Store {
	return s.pool
}

// LoadPlayers reads the table at path, parses it, logs parse warnings,
// and fills the pool store.
func (s *Service) LoadPlayers(ctx context.Context, path string) ([]model.Player, error) {
	rows, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	players, warnings, err := sheet.Parse(ctx, rows)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		s.logger.Warn(ctx, "player table warning", logger.String("detail", w.String()))
		metrics.RecordParseWarning()
	}
	for range len(rows) - len(players) {
		metrics.RecordRowSkipped()
	}
	metrics.RecordPlayersParsed(len(players))

	for _, p := range players {
		if err := s.pool.Add(ctx, p); err != nil {
			return nil, err
		}
	}
	metrics.UpdatePoolSize(s.pool.Count(ctx))
	return players, nil
}

// PickTeam runs the whole pipeline: role file and table in, rendered team
// sheet out. Per-slot infeasibility is logged and reflected in the partial
// output, never returned as an error.
func (s *Service) PickTeam(ctx context.Context, roleFilePath, tablePath string) (string, error) {
	runID := uuid.NewString()
	log := s.logger.Named("pick")

	raw, err := os.ReadFile(roleFilePath)
	if err != nil {
		return "", fmt.Errorf("read role file: %w", err)
	}
	content, err := rolefile.Parse(string(raw))
	if err != nil {
		return "", err
	}

	players, err := s.LoadPlayers(ctx, tablePath)
	if err != nil {
		return "", err
	}
	log.Info(ctx, "pool loaded",
		logger.String("run_id", runID),
		logger.Int("players", len(players)),
		logger.Int("filters", len(content.Filters)))

	start := time.Now()
	team, warnings, err := selection.Select(players, content.Roles, content.Filters)
	if err != nil {
		return "", err
	}
	metrics.RecordSelection(float64(time.Since(start).Microseconds()) / 1000.0)

	for _, w := range warnings {
		log.Warn(ctx, w.String(), logger.String("run_id", runID))
		metrics.RecordSlotUnfilled()
	}
	if !team.Complete(selection.SquadSize) {
		log.Warn(ctx, "team is incomplete",
			logger.String("run_id", runID),
			logger.Int("filled", team.Size()),
			logger.Int("slots", selection.SquadSize))
	}
	log.Info(ctx, "team selected",
		logger.String("run_id", runID),
		logger.Int("filled", team.Size()),
		logger.Float64("total_score", team.TotalScore()))

	return format.Team(team), nil
}

// RankRole loads the table at path and returns the top-n ranking for role.
func (s *Service) RankRole(ctx context.Context, tablePath, role string, n int) ([]repository.Entry, error) {
	if !catalogue.IsRole(role) {
		return nil, fmt.Errorf("%w: %q", catalogue.ErrUnknownRole, role)
	}
	if _, err := s.LoadPlayers(ctx, tablePath); err != nil {
		return nil, err
	}
	return s.pool.TopN(ctx, catalogue.RoleID(role), n)
}
