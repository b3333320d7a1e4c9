// Package sheet converts a rectangular table of strings, as lifted from an
// FM export, into typed players.
//
// Row layout (0-based columns): 0 name, 1 age, 2 footedness, 3..49 the 47
// abilities in catalogue order, 50 DNA, 51..144 the 94 role ratings in
// catalogue order. Extra trailing columns are ignored; missing trailing
// columns read as empty cells.
package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/gaffer/internal/domain/catalogue"
	"github.com/okian/gaffer/internal/domain/dedupe"
	"github.com/okian/gaffer/internal/domain/model"
)

// Column offsets within a player row.
const (
	colName         = 0
	colAge          = 1
	colFoot         = 2
	colAbilityStart = 3
	colDNA          = colAbilityStart + catalogue.AbilityCount
	colRatingStart  = colDNA + 1
)

// missingCell is the literal FM writes for cells it has no value for.
const missingCell = "--"

// Warning is a soft signal tied to a source row. Warnings never abort a
// parse and are emitted in input-row order.
type Warning struct {
	Row     int // 0-based row index in the input table
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}

// Parse converts rows into players. Rows with an empty name cell are
// skipped silently; rows repeating an already-seen name, or carrying an
// unusable name, are skipped with a warning.
func Parse(ctx context.Context, rows [][]string) ([]model.Player, []Warning, error) {
	var (
		players  []model.Player
		warnings []Warning
		seen     = dedupe.NewTracker()
	)
	for i, row := range rows {
		name := strings.TrimSpace(cell(row, colName))
		if name == "" {
			continue
		}
		id, err := model.ParsePlayerID(name)
		if err != nil {
			warnings = append(warnings, Warning{Row: i, Message: err.Error() + "; row skipped"})
			continue
		}
		if seen.SeenAndRecord(ctx, id) {
			warnings = append(warnings, Warning{Row: i, Message: fmt.Sprintf("duplicate row for player %q; row skipped", id)})
			continue
		}

		age, w := parseAge(cell(row, colAge), i)
		if w != nil {
			warnings = append(warnings, *w)
		}
		foot, w := parseFoot(cell(row, colFoot), i)
		if w != nil {
			warnings = append(warnings, *w)
		}

		abilities := make([]model.Stat, catalogue.AbilityCount)
		for j := range abilities {
			abilities[j] = parseStat(cell(row, colAbilityStart+j))
		}
		ratings := make([]model.Stat, catalogue.RoleCount)
		for j := range ratings {
			ratings[j] = parseStat(cell(row, colRatingStart+j))
		}

		p, err := model.NewPlayer(id, age, foot, abilities, parseStat(cell(row, colDNA)), ratings)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		players = append(players, p)
	}
	return players, warnings, nil
}

// cell reads column j of row, treating short rows as padded with empties.
func cell(row []string, j int) string {
	if j >= len(row) {
		return ""
	}
	return row[j]
}

// parseStat reads an optional numeric cell. Empty cells, the "--" literal,
// and anything unparsable all read as absent, never as zero.
func parseStat(raw string) model.Stat {
	s := strings.TrimSpace(raw)
	if s == "" || s == missingCell {
		return model.Stat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Stat{}
	}
	return model.StatOf(v)
}

func parseAge(raw string, row int) (uint8, *Warning) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, &Warning{Row: row, Message: fmt.Sprintf("unparsable age %q; recorded as 0", raw)}
	}
	return uint8(v), nil
}

func parseFoot(raw string, row int) (model.Footedness, *Warning) {
	f, err := model.ParseFootedness(raw)
	if err != nil {
		return model.FootRight, &Warning{Row: row, Message: fmt.Sprintf("unknown footedness %q; recorded as R", raw)}
	}
	return f, nil
}
