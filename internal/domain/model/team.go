package model

import (
	"github.com/okian/gaffer/internal/domain/catalogue"
)

// Assignment pairs one player with one slot. Score is the player's rating
// for the role, fixed at construction.
type Assignment struct {
	Player Player
	Role   catalogue.RoleID
	Score  float64
}

// Team is the engine's result: at most one assignment per slot, in slot
// order. No player appears twice; duplicate roles are allowed. A team may
// be shorter than the slot list when constraints were unsatisfiable.
type Team struct {
	Assignments []Assignment
}

// Size returns the number of filled slots.
func (t Team) Size() int { return len(t.Assignments) }

// Complete reports whether every one of want slots was filled.
func (t Team) Complete(want int) bool { return len(t.Assignments) == want }

// TotalScore sums the assignment scores.
func (t Team) TotalScore() float64 {
	var total float64
	for _, a := range t.Assignments {
		total += a.Score
	}
	return total
}

// RoleCount returns how many assignments fill the given role.
func (t Team) RoleCount(role catalogue.RoleID) int {
	n := 0
	for _, a := range t.Assignments {
		if a.Role == role {
			n++
		}
	}
	return n
}
