package catalogue

// AbilityID identifies a player ability column. The identifiers are the
// abbreviated headings FM uses in exported views ("Cor", "OtB", "1v1", ...).
type AbilityID string

// AbilityCount is the size of the ability catalogue.
const AbilityCount = 47

// abilities is the ordered ability catalogue: technical, mental, physical,
// then goalkeeping. The index of each entry is the offset of its column in
// a player row.
var abilities = [AbilityCount]AbilityID{
	// Technical.
	"Cor", "Cro", "Dri", "Fin", "Fir", "Fre", "Hea",
	"Lon", "L Th", "Mar", "Pas", "Pen", "Tck", "Tec",
	// Mental.
	"Agg", "Ant", "Bra", "Cmp", "Cnt", "Dec", "Det",
	"Fla", "Ldr", "OtB", "Pos", "Tea", "Vis", "Wor",
	// Physical.
	"Acc", "Agi", "Bal", "Jum", "Nat", "Pac", "Sta", "Str",
	// Goalkeeping.
	"Aer", "Cmd", "Com", "Ecc", "Han", "Kic", "1v1", "Pun", "Ref", "TRO", "Thr",
}

var abilityIndex = func() map[AbilityID]int {
	m := make(map[AbilityID]int, AbilityCount)
	for i, a := range abilities {
		m[a] = i
	}
	return m
}()

// Abilities returns the ordered ability catalogue.
func Abilities() []AbilityID {
	out := make([]AbilityID, AbilityCount)
	copy(out, abilities[:])
	return out
}

// AbilityOffset returns the column offset of a within a player row's
// ability block. The second return is false when a is unknown.
func AbilityOffset(a AbilityID) (int, bool) {
	i, ok := abilityIndex[a]
	return i, ok
}
