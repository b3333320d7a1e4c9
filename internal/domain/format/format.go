// Package format renders a selected team as stable, diffable text.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/gaffer/internal/domain/model"
)

// Team renders one line per assignment, sorted by role name ascending
// (insertion order between equal roles), then a total-score line. Scores
// print with a single decimal.
func Team(t model.Team) string {
	sorted := make([]model.Assignment, len(t.Assignments))
	copy(sorted, t.Assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Role < sorted[j].Role
	})

	var b strings.Builder
	for _, a := range sorted {
		fmt.Fprintf(&b, "%s -> %s (score: %.1f)\n", a.Role, a.Player.ID, a.Score)
	}
	fmt.Fprintf(&b, "Total Score: %.1f\n", t.TotalScore())
	return b.String()
}
