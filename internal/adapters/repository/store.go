// Package repository defines the scouted-pool store interface and errors.
package repository

import (
	"context"

	"github.com/okian/gaffer/internal/domain/catalogue"
	"github.com/okian/gaffer/internal/domain/model"
)

// Entry is one row of a per-role ranking.
type Entry struct {
	Rank   int
	Player model.PlayerID
	Age    uint8
	Score  float64
}

// Store provides read access to the scouted pool, ranked per role.
// Implementations are safe for concurrent use.
type Store interface {
	// Add inserts or replaces a player in the pool.
	Add(ctx context.Context, p model.Player) error

	// TopN returns the n best-rated players for role, score descending.
	// Players without a rating for the role are not listed.
	TopN(ctx context.Context, role catalogue.RoleID, n int) ([]Entry, error)

	// Rank returns the position of player within the role's ranking.
	// Returns ErrNotFound when the player is unknown or unrated for role.
	Rank(ctx context.Context, role catalogue.RoleID, player model.PlayerID) (Entry, error)

	// Count returns the number of players in the pool.
	Count(ctx context.Context) int
}
