package catalogue_test

import (
	"testing"

	"github.com/okian/gaffer/internal/domain/catalogue"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoleCatalogue(t *testing.T) {
	Convey("Given the role catalogue", t, func() {
		roles := catalogue.Roles()

		Convey("Then it holds exactly 94 roles", func() {
			So(len(roles), ShouldEqual, catalogue.RoleCount)
			So(len(roles), ShouldEqual, 94)
		})

		Convey("Then entries are unique", func() {
			seen := make(map[catalogue.RoleID]struct{}, len(roles))
			for _, r := range roles {
				_, dup := seen[r]
				So(dup, ShouldBeFalse)
				seen[r] = struct{}{}
			}
		})

		Convey("Then offsets follow catalogue order", func() {
			for i, r := range roles {
				off, ok := catalogue.RoleOffset(r)
				So(ok, ShouldBeTrue)
				So(off, ShouldEqual, i)
			}
		})

		Convey("Then membership checks are exact on case and punctuation", func() {
			So(catalogue.IsRole("GK"), ShouldBeTrue)
			So(catalogue.IsRole("W(s) R"), ShouldBeTrue)
			So(catalogue.IsRole("FB(a) L"), ShouldBeTrue)
			So(catalogue.IsRole("gk"), ShouldBeFalse)
			So(catalogue.IsRole("W(s)R"), ShouldBeFalse)
			So(catalogue.IsRole("W (s) R"), ShouldBeFalse)
		})

		Convey("Then the 96-entry extras are not members", func() {
			So(catalogue.IsRole("AM(s)"), ShouldBeFalse)
			So(catalogue.IsRole("AM(a)"), ShouldBeFalse)
		})

		Convey("Then unknown roles have no offset", func() {
			_, ok := catalogue.RoleOffset("ZZ(d)")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestAbilityCatalogue(t *testing.T) {
	Convey("Given the ability catalogue", t, func() {
		abilities := catalogue.Abilities()

		Convey("Then it holds exactly 47 abilities", func() {
			So(len(abilities), ShouldEqual, catalogue.AbilityCount)
			So(len(abilities), ShouldEqual, 47)
		})

		Convey("Then offsets follow catalogue order", func() {
			for i, a := range abilities {
				off, ok := catalogue.AbilityOffset(a)
				So(ok, ShouldBeTrue)
				So(off, ShouldEqual, i)
			}
		})

		Convey("Then the blocks start where the column layout expects", func() {
			cor, _ := catalogue.AbilityOffset("Cor")
			agg, _ := catalogue.AbilityOffset("Agg")
			acc, _ := catalogue.AbilityOffset("Acc")
			aer, _ := catalogue.AbilityOffset("Aer")
			So(cor, ShouldEqual, 0)  // technical block
			So(agg, ShouldEqual, 14) // mental block
			So(acc, ShouldEqual, 28) // physical block
			So(aer, ShouldEqual, 36) // goalkeeping block
		})
	})
}

// expectedMembers pins the full membership table cell by cell: a role is in
// a category exactly when this map says so.
var expectedMembers = map[catalogue.Category][]catalogue.RoleID{
	"goal": {
		"GK", "SK(d)", "SK(s)", "SK(a)",
	},
	"cd": {
		"CD(d)", "CD(s)", "CD(c)",
		"BPD(d)", "BPD(s)", "BPD(c)",
		"NCB(d)", "NCB(s)", "NCB(c)",
		"WCB(d)", "WCB(s)", "WCB(a)",
		"L(d)", "L(s)", "L(a)",
	},
	"wb": {
		"FB(d) R", "FB(s) R", "FB(a) R",
		"FB(d) L", "FB(s) L", "FB(a) L",
		"WB(d) R", "WB(s) R", "WB(a) R",
		"WB(d) L", "WB(s) L", "WB(a) L",
		"IFB(d) R", "IFB(d) L",
		"IWB(d)", "IWB(s)", "IWB(a)",
		"CWB(s) R", "CWB(a) R", "CWB(s) L", "CWB(a) L",
	},
	"dm": {
		"DM(d)", "DM(s)", "HB", "A",
		"BWM(d)", "BWM(s)",
		"CM(d)", "DLP(d)", "BBM",
		"SV(s)", "SV(a)", "RGA",
	},
	"cm": {
		"CM(d)", "CM(s)", "CM(a)",
		"DLP(d)", "DLP(s)",
		"RPM", "BBM", "CAR",
		"MEZ(s)", "MEZ(a)",
	},
	"wing": {
		"WM(d)", "WM(s)", "WM(a)",
		"WP(s)", "WP(a)",
		"DW(d)", "DW(s)",
		"W(s) R", "W(a) R", "W(s) L", "W(a) L",
		"IF(s)", "IF(a)",
		"IW(s)", "IW(a)",
		"WTM(s)", "WTM(a)",
		"TQ(a)", "RD(A)",
	},
	"am": {
		"SS", "EG",
		"AP(s)", "AP(a)",
		"CM(a)", "MEZ(a)",
		"IW(s)", "IW(a)",
		"TQ(a)",
	},
	"pm": {
		"DLP(d)", "DLP(s)",
		"AP(s)", "AP(a)",
		"WP(s)", "WP(a)",
		"RGA", "RPM", "EG",
	},
	"str": {
		"AF", "P",
		"DLF(s)", "DLF(a)",
		"CF(s)", "CF(a)",
		"F9",
		"TM(s)", "TM(a)",
		"PF(d)", "PF(s)", "PF(a)",
		"IF(s)", "IF(a)",
	},
}

func TestCategoryMembership(t *testing.T) {
	Convey("Given the category membership table", t, func() {
		Convey("Then there are nine categories", func() {
			So(len(catalogue.Categories()), ShouldEqual, 9)
			So(len(expectedMembers), ShouldEqual, 9)
		})

		Convey("Then every cell of the table matches the contract", func() {
			for _, cat := range catalogue.Categories() {
				want := make(map[catalogue.RoleID]struct{}, len(expectedMembers[cat]))
				for _, r := range expectedMembers[cat] {
					want[r] = struct{}{}
				}
				for _, r := range catalogue.Roles() {
					_, expected := want[r]
					So(catalogue.RoleInCategory(r, cat), ShouldEqual, expected)
				}
			}
		})

		Convey("Then every member is a catalogue role", func() {
			for _, rs := range expectedMembers {
				for _, r := range rs {
					So(catalogue.IsRole(string(r)), ShouldBeTrue)
				}
			}
		})

		Convey("Then cross-memberships hold", func() {
			So(catalogue.RoleInCategory("CM(d)", "cm"), ShouldBeTrue)
			So(catalogue.RoleInCategory("CM(d)", "dm"), ShouldBeTrue)
			So(catalogue.RoleInCategory("IF(a)", "wing"), ShouldBeTrue)
			So(catalogue.RoleInCategory("IF(a)", "str"), ShouldBeTrue)
			So(catalogue.RoleInCategory("GK", "goal"), ShouldBeTrue)
			So(catalogue.RoleInCategory("GK", "str"), ShouldBeFalse)
		})

		Convey("Then unknown inputs are never members", func() {
			So(catalogue.RoleInCategory("ZZ(d)", "cm"), ShouldBeFalse)
			So(catalogue.RoleInCategory("GK", "keeper"), ShouldBeFalse)
		})
	})
}

func TestParseCategory(t *testing.T) {
	Convey("Given category tag parsing", t, func() {
		Convey("Then known tags parse after trimming and lowercasing", func() {
			c, err := catalogue.ParseCategory(" Goal ")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, catalogue.CatGoalkeeper)

			c, err = catalogue.ParseCategory("STR")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, catalogue.CatStriker)
		})

		Convey("Then unknown tags fail with the sentinel", func() {
			_, err := catalogue.ParseCategory("keeper")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "keeper")
		})
	})
}
