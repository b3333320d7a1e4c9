// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/okian/gaffer/internal/domain/catalogue"
)

// maxPlayerIDLen bounds player identifiers; FM truncates names well below this.
const maxPlayerIDLen = 100

// PlayerID is a validated player identifier: trimmed, non-empty, at most
// 100 characters, containing at least one letter.
type PlayerID string

// ParsePlayerID validates and normalises a raw player name.
func ParsePlayerID(raw string) (PlayerID, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty player name", ErrInvalidPlayerID)
	}
	if len(s) > maxPlayerIDLen {
		return "", fmt.Errorf("%w: player name %q exceeds %d characters", ErrInvalidPlayerID, s, maxPlayerIDLen)
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return "", fmt.Errorf("%w: player name %q has no letters", ErrInvalidPlayerID, s)
	}
	return PlayerID(s), nil
}

// Footedness is the preferred-foot indicator.
type Footedness string

const (
	FootRight  Footedness = "R"
	FootLeft   Footedness = "L"
	FootEither Footedness = "RL"
)

// ParseFootedness maps a raw cell to a Footedness tag.
func ParseFootedness(raw string) (Footedness, error) {
	switch Footedness(strings.ToUpper(strings.TrimSpace(raw))) {
	case FootRight:
		return FootRight, nil
	case FootLeft:
		return FootLeft, nil
	case FootEither:
		return FootEither, nil
	}
	return "", fmt.Errorf("unknown footedness %q", raw)
}

// Stat is an optional numeric cell. Missing source cells stay absent here;
// absent collapses to 0.0 only at scoring time, never in the data model.
type Stat struct {
	Value float64
	Valid bool
}

// StatOf wraps a present value.
func StatOf(v float64) Stat { return Stat{Value: v, Valid: true} }

// Player is one scouted player with typed ability and role-rating vectors.
// Vector order follows the catalogues; lengths are enforced at construction.
type Player struct {
	ID          PlayerID
	Age         uint8
	Foot        Footedness
	Abilities   []Stat // len == catalogue.AbilityCount
	DNA         Stat
	RoleRatings []Stat // len == catalogue.RoleCount
}

// NewPlayer builds a Player, guarding the vector lengths against
// programmer error. Parsers always hand over full-length vectors.
func NewPlayer(id PlayerID, age uint8, foot Footedness, abilities []Stat, dna Stat, ratings []Stat) (Player, error) {
	if len(abilities) != catalogue.AbilityCount {
		return Player{}, fmt.Errorf("%w: player %q has %d ability cells, want %d",
			ErrTableShape, id, len(abilities), catalogue.AbilityCount)
	}
	if len(ratings) != catalogue.RoleCount {
		return Player{}, fmt.Errorf("%w: player %q has %d rating cells, want %d",
			ErrTableShape, id, len(ratings), catalogue.RoleCount)
	}
	return Player{
		ID:          id,
		Age:         age,
		Foot:        foot,
		Abilities:   abilities,
		DNA:         dna,
		RoleRatings: ratings,
	}, nil
}

// Rating returns the player's rating cell for role; absent when the player
// has no rating there or the role is unknown.
func (p Player) Rating(role catalogue.RoleID) Stat {
	i, ok := catalogue.RoleOffset(role)
	if !ok {
		return Stat{}
	}
	return p.RoleRatings[i]
}

// Score is the rating for role with absent collapsed to 0.0, which makes an
// unrated player the worst candidate rather than an excluded one.
func (p Player) Score(role catalogue.RoleID) float64 {
	s := p.Rating(role)
	if !s.Valid {
		return 0
	}
	return s.Value
}

// PlayerFilter restricts the named player to roles belonging to at least
// one of the allowed categories. Players without a filter are unrestricted.
type PlayerFilter struct {
	Player  PlayerID
	Allowed []catalogue.Category
}

// RoleFileContent is the parsed target formation: an ordered role list
// (duplicates permitted) plus per-player category filters.
type RoleFileContent struct {
	Roles   []catalogue.RoleID
	Filters []PlayerFilter
}
