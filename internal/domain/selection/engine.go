// Package selection picks a starting eleven from a scouted pool.
//
// The algorithm is greedy and slot-ordered: each slot, in role-file order,
// takes the highest-rated still-available eligible player. Ties go to the
// earliest pool index, so a fixed input always yields the same team. A slot
// with no eligible player is skipped with a warning rather than failing;
// callers render the partial team.
package selection

import (
	"fmt"

	"github.com/okian/gaffer/internal/domain/catalogue"
	"github.com/okian/gaffer/internal/domain/eligibility"
	"github.com/okian/gaffer/internal/domain/model"
)

// SquadSize is the number of slots a formation fills.
const SquadSize = 11

// Warning reports a slot that could not be filled.
type Warning struct {
	Slot int // 0-based position in the role list
	Role catalogue.RoleID
}

func (w Warning) String() string {
	return fmt.Sprintf("no eligible players for role %s (slot %d)", w.Role, w.Slot+1)
}

// Select assigns at most one player per slot. roles must have exactly
// SquadSize entries (duplicates allowed, order significant) and players at
// least SquadSize entries; both are hard preconditions. Missing ratings
// score 0.0, keeping unrated players selectable as a last resort.
func Select(players []model.Player, roles []catalogue.RoleID, filters []model.PlayerFilter) (model.Team, []Warning, error) {
	if len(roles) != SquadSize {
		return model.Team{}, nil, fmt.Errorf("%w: need exactly %d roles, got %d", ErrSelection, SquadSize, len(roles))
	}
	if len(players) < SquadSize {
		return model.Team{}, nil, fmt.Errorf("%w: need at least %d players, got %d", ErrSelection, SquadSize, len(players))
	}

	matrix := eligibility.Build(filters)

	available := make([]model.Player, len(players))
	copy(available, players)

	var (
		assignments []model.Assignment
		warnings    []Warning
	)
	for slot, role := range roles {
		best := -1
		bestScore := 0.0
		for i, p := range available {
			if !matrix.Eligible(p.ID, role) {
				continue
			}
			// Strictly greater keeps the earliest index on ties.
			if s := p.Score(role); best == -1 || s > bestScore {
				best = i
				bestScore = s
			}
		}
		if best == -1 {
			warnings = append(warnings, Warning{Slot: slot, Role: role})
			continue
		}
		assignments = append(assignments, model.Assignment{
			Player: available[best],
			Role:   role,
			Score:  bestScore,
		})
		available = append(available[:best], available[best+1:]...)
	}
	return model.Team{Assignments: assignments}, warnings, nil
}
