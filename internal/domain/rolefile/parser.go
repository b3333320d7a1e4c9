// Package rolefile parses the target-formation document: an ordered list of
// eleven roles plus optional per-player category filters.
//
// Two layouts are accepted. The legacy layout is eleven bare role lines.
// The sectioned layout opens with "[roles]" and may follow with a
// "[filters]" section of "player: cat, cat" lines. Section headers are
// matched case-insensitively; "#" starts a comment; blank lines are ignored.
package rolefile

import (
	"fmt"
	"strings"

	"github.com/okian/gaffer/internal/domain/catalogue"
	"github.com/okian/gaffer/internal/domain/model"
)

// SquadSize is the number of roles a formation names.
const SquadSize = 11

const (
	sectionRoles   = "[roles]"
	sectionFilters = "[filters]"
)

// line is a logical line surviving tokenisation, with its 1-based position
// in the source kept for error messages.
type line struct {
	text string
	num  int
}

// Parse reads a UTF-8 role-file document.
func Parse(src string) (model.RoleFileContent, error) {
	lines := tokenise(src)
	if len(lines) == 0 {
		return model.RoleFileContent{}, fmt.Errorf("%w: empty role file", ErrRoleFile)
	}
	if isHeader(lines[0].text) {
		return parseSectioned(lines)
	}
	return parseLegacy(lines)
}

// tokenise strips comments, trims, and drops blank lines.
func tokenise(src string) []line {
	var out []line
	for i, raw := range strings.Split(src, "\n") {
		text := raw
		if idx := strings.Index(text, "#"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, line{text: text, num: i + 1})
	}
	return out
}

func isHeader(s string) bool {
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

// parseLegacy handles the headerless layout: exactly eleven role lines.
func parseLegacy(lines []line) (model.RoleFileContent, error) {
	if len(lines) != SquadSize {
		return model.RoleFileContent{}, fmt.Errorf("%w: legacy role file has %d lines, want exactly %d",
			ErrRoleFile, len(lines), SquadSize)
	}
	roles := make([]catalogue.RoleID, 0, SquadSize)
	for _, ln := range lines {
		r, err := parseRole(ln)
		if err != nil {
			return model.RoleFileContent{}, err
		}
		roles = append(roles, r)
	}
	return model.RoleFileContent{Roles: roles}, nil
}

func parseSectioned(lines []line) (model.RoleFileContent, error) {
	var (
		content   model.RoleFileContent
		section   string
		seenNames = make(map[model.PlayerID]struct{})
	)
	for _, ln := range lines {
		if isHeader(ln.text) {
			switch strings.ToLower(ln.text) {
			case sectionRoles, sectionFilters:
				section = strings.ToLower(ln.text)
			default:
				return model.RoleFileContent{}, fmt.Errorf("%w: unknown section %q on line %d",
					ErrRoleFile, ln.text, ln.num)
			}
			continue
		}
		switch section {
		case sectionRoles:
			r, err := parseRole(ln)
			if err != nil {
				return model.RoleFileContent{}, err
			}
			content.Roles = append(content.Roles, r)
		case sectionFilters:
			f, err := parseFilter(ln)
			if err != nil {
				return model.RoleFileContent{}, err
			}
			if _, dup := seenNames[f.Player]; dup {
				return model.RoleFileContent{}, fmt.Errorf("%w: duplicate filter for player %q on line %d",
					ErrRoleFile, f.Player, ln.num)
			}
			seenNames[f.Player] = struct{}{}
			content.Filters = append(content.Filters, f)
		}
	}
	if len(content.Roles) != SquadSize {
		return model.RoleFileContent{}, fmt.Errorf("%w: [roles] section has %d roles, want exactly %d",
			ErrRoleFile, len(content.Roles), SquadSize)
	}
	return content, nil
}

// parseRole checks a role line against the catalogue. The catalogue match
// is exact: case and punctuation both count.
func parseRole(ln line) (catalogue.RoleID, error) {
	if !catalogue.IsRole(ln.text) {
		return "", fmt.Errorf("%w: %w %q on line %d", ErrRoleFile, catalogue.ErrUnknownRole, ln.text, ln.num)
	}
	return catalogue.RoleID(ln.text), nil
}

// parseFilter reads a "player: cat, cat" line.
func parseFilter(ln line) (model.PlayerFilter, error) {
	name, rest, found := strings.Cut(ln.text, ":")
	if !found {
		return model.PlayerFilter{}, fmt.Errorf("%w: filter line %d is missing ':'", ErrRoleFile, ln.num)
	}
	id, err := model.ParsePlayerID(name)
	if err != nil {
		return model.PlayerFilter{}, fmt.Errorf("%w: bad player name on line %d: %w", ErrRoleFile, ln.num, err)
	}
	var cats []catalogue.Category
	for _, tok := range strings.Split(rest, ",") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		c, err := catalogue.ParseCategory(tok)
		if err != nil {
			return model.PlayerFilter{}, fmt.Errorf("%w: %w on line %d", ErrRoleFile, err, ln.num)
		}
		cats = append(cats, c)
	}
	if len(cats) == 0 {
		return model.PlayerFilter{}, fmt.Errorf("%w: filter for %q on line %d lists no categories",
			ErrRoleFile, id, ln.num)
	}
	return model.PlayerFilter{Player: id, Allowed: cats}, nil
}
