// Package catalogue holds the closed domain vocabularies: the role
// catalogue, the ability catalogue, and the category membership table.
//
// Conventions:
// - All catalogues are fixed and ordered; order dictates column offsets
//   in exported player tables.
// - Membership checks against these tables are the single authority for
//   validity. Nothing else in the repo hard-codes a role or ability name.
package catalogue

// RoleID identifies a role from the catalogue. The external string form
// (e.g. "W(s) R") is canonical; values are case- and punctuation-sensitive.
type RoleID string

// RoleCount is the size of the role catalogue.
const RoleCount = 94

// roles is the ordered role catalogue. The index of each entry is the
// offset of its rating column in a player row.
var roles = [RoleCount]RoleID{
	// Goalkeepers.
	"GK", "SK(d)", "SK(s)", "SK(a)",
	// Central defenders.
	"CD(d)", "CD(s)", "CD(c)",
	"BPD(d)", "BPD(s)", "BPD(c)",
	"NCB(d)", "NCB(s)", "NCB(c)",
	"WCB(d)", "WCB(s)", "WCB(a)",
	"L(d)", "L(s)", "L(a)",
	// Full backs and wing backs.
	"FB(d) R", "FB(s) R", "FB(a) R",
	"FB(d) L", "FB(s) L", "FB(a) L",
	"WB(d) R", "WB(s) R", "WB(a) R",
	"WB(d) L", "WB(s) L", "WB(a) L",
	"IFB(d) R", "IFB(d) L",
	"IWB(d)", "IWB(s)", "IWB(a)",
	"CWB(s) R", "CWB(a) R", "CWB(s) L", "CWB(a) L",
	// Defensive midfielders.
	"DM(d)", "DM(s)", "HB", "A",
	"BWM(d)", "BWM(s)",
	"DLP(d)", "DLP(s)",
	"SV(s)", "SV(a)",
	"RGA", "RPM",
	// Central midfielders.
	"CM(d)", "CM(s)", "CM(a)",
	"BBM", "CAR",
	"MEZ(s)", "MEZ(a)",
	"AP(s)", "AP(a)",
	// Wide midfielders and wingers.
	"WM(d)", "WM(s)", "WM(a)",
	"WP(s)", "WP(a)",
	"DW(d)", "DW(s)",
	"W(s) R", "W(a) R", "W(s) L", "W(a) L",
	"IF(s)", "IF(a)",
	"IW(s)", "IW(a)",
	"WTM(s)", "WTM(a)",
	"TQ(a)", "RD(A)",
	// Attacking midfielders.
	"SS", "EG",
	// Strikers.
	"AF", "P",
	"DLF(s)", "DLF(a)",
	"CF(s)", "CF(a)",
	"F9",
	"TM(s)", "TM(a)",
	"PF(d)", "PF(s)", "PF(a)",
}

// roleIndex maps each role to its catalogue offset.
var roleIndex = func() map[RoleID]int {
	m := make(map[RoleID]int, RoleCount)
	for i, r := range roles {
		m[r] = i
	}
	return m
}()

// Roles returns the ordered role catalogue.
func Roles() []RoleID {
	out := make([]RoleID, RoleCount)
	copy(out, roles[:])
	return out
}

// IsRole reports whether s is an exact catalogue entry.
func IsRole(s string) bool {
	_, ok := roleIndex[RoleID(s)]
	return ok
}

// RoleOffset returns the rating-column offset of r within a player row.
// The second return is false when r is not a catalogue entry.
func RoleOffset(r RoleID) (int, bool) {
	i, ok := roleIndex[r]
	return i, ok
}
