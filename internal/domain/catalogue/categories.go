package catalogue

import (
	"fmt"
	"strings"
)

// Category is a coarse positional tag grouping related roles. Categories
// are not disjoint: a role may belong to several.
type Category string

// The nine closed category tags.
const (
	CatGoalkeeper Category = "goal"
	CatDefender   Category = "cd"
	CatWingBack   Category = "wb"
	CatDefMid     Category = "dm"
	CatCenMid     Category = "cm"
	CatWinger     Category = "wing"
	CatAttMid     Category = "am"
	CatPlaymaker  Category = "pm"
	CatStriker    Category = "str"
)

// categories is the ordered tag list, used for validation and iteration.
var categories = [9]Category{
	CatGoalkeeper, CatDefender, CatWingBack, CatDefMid, CatCenMid,
	CatWinger, CatAttMid, CatPlaymaker, CatStriker,
}

// members is the authoritative category membership table. Cross-memberships
// are intentional: e.g. CM(d) covers both dm and cm, IF covers wing and str.
var members = map[Category][]RoleID{
	CatGoalkeeper: {
		"GK", "SK(d)", "SK(s)", "SK(a)",
	},
	CatDefender: {
		"CD(d)", "CD(s)", "CD(c)",
		"BPD(d)", "BPD(s)", "BPD(c)",
		"NCB(d)", "NCB(s)", "NCB(c)",
		"WCB(d)", "WCB(s)", "WCB(a)",
		"L(d)", "L(s)", "L(a)",
	},
	CatWingBack: {
		"FB(d) R", "FB(s) R", "FB(a) R",
		"FB(d) L", "FB(s) L", "FB(a) L",
		"WB(d) R", "WB(s) R", "WB(a) R",
		"WB(d) L", "WB(s) L", "WB(a) L",
		"IFB(d) R", "IFB(d) L",
		"IWB(d)", "IWB(s)", "IWB(a)",
		"CWB(s) R", "CWB(a) R", "CWB(s) L", "CWB(a) L",
	},
	CatDefMid: {
		"DM(d)", "DM(s)", "HB", "A",
		"BWM(d)", "BWM(s)",
		"CM(d)", "DLP(d)", "BBM",
		"SV(s)", "SV(a)", "RGA",
	},
	CatCenMid: {
		"CM(d)", "CM(s)", "CM(a)",
		"DLP(d)", "DLP(s)",
		"RPM", "BBM", "CAR",
		"MEZ(s)", "MEZ(a)",
	},
	CatWinger: {
		"WM(d)", "WM(s)", "WM(a)",
		"WP(s)", "WP(a)",
		"DW(d)", "DW(s)",
		"W(s) R", "W(a) R", "W(s) L", "W(a) L",
		"IF(s)", "IF(a)",
		"IW(s)", "IW(a)",
		"WTM(s)", "WTM(a)",
		"TQ(a)", "RD(A)",
	},
	CatAttMid: {
		"SS", "EG",
		"AP(s)", "AP(a)",
		"CM(a)", "MEZ(a)",
		"IW(s)", "IW(a)",
		"TQ(a)",
	},
	CatPlaymaker: {
		"DLP(d)", "DLP(s)",
		"AP(s)", "AP(a)",
		"WP(s)", "WP(a)",
		"RGA", "RPM", "EG",
	},
	CatStriker: {
		"AF", "P",
		"DLF(s)", "DLF(a)",
		"CF(s)", "CF(a)",
		"F9",
		"TM(s)", "TM(a)",
		"PF(d)", "PF(s)", "PF(a)",
		"IF(s)", "IF(a)",
	},
}

// memberSet is the lookup form of members.
var memberSet = func() map[Category]map[RoleID]struct{} {
	m := make(map[Category]map[RoleID]struct{}, len(members))
	for cat, rs := range members {
		set := make(map[RoleID]struct{}, len(rs))
		for _, r := range rs {
			set[r] = struct{}{}
		}
		m[cat] = set
	}
	return m
}()

// Categories returns the nine category tags in canonical order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// ParseCategory validates a category tag. Tags are matched after trimming
// and lowercasing, so filter files may write "Goal" or " STR ".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := memberSet[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// RoleInCategory reports whether role belongs to cat. Unknown roles and
// unknown categories are simply not members.
func RoleInCategory(role RoleID, cat Category) bool {
	set, ok := memberSet[cat]
	if !ok {
		return false
	}
	_, ok = set[role]
	return ok
}

// CategoryMembers returns the roles belonging to cat, in table order.
func CategoryMembers(cat Category) []RoleID {
	rs := members[cat]
	out := make([]RoleID, len(rs))
	copy(out, rs)
	return out
}
