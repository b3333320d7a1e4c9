// Package eligibility precomputes which players may fill which roles, so
// the assignment loop never re-walks filter lists.
package eligibility

import (
	"github.com/okian/gaffer/internal/domain/catalogue"
	"github.com/okian/gaffer/internal/domain/model"
)

// Matrix answers (player, role) eligibility queries. Only filtered players
// are stored; any player absent from the matrix is eligible everywhere.
// A built Matrix is read-only and safe to share across goroutines.
type Matrix struct {
	restricted map[model.PlayerID]map[catalogue.RoleID]struct{}
}

// Build expands each filter's categories into the set of catalogue roles
// the player may fill. Filters with an empty expansion leave the player
// eligible for nothing.
func Build(filters []model.PlayerFilter) *Matrix {
	m := &Matrix{restricted: make(map[model.PlayerID]map[catalogue.RoleID]struct{}, len(filters))}
	for _, f := range filters {
		allowed := make(map[catalogue.RoleID]struct{})
		for _, cat := range f.Allowed {
			for _, r := range catalogue.CategoryMembers(cat) {
				allowed[r] = struct{}{}
			}
		}
		m.restricted[f.Player] = allowed
	}
	return m
}

// Eligible reports whether player p may fill role r.
func (m *Matrix) Eligible(p model.PlayerID, r catalogue.RoleID) bool {
	allowed, ok := m.restricted[p]
	if !ok {
		return true
	}
	_, ok = allowed[r]
	return ok
}

// Restricted returns how many players carry a filter.
func (m *Matrix) Restricted() int {
	return len(m.restricted)
}
