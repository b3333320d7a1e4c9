package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/gaffer/internal/adapters/repository"
	"github.com/okian/gaffer/internal/domain/catalogue"
	"github.com/okian/gaffer/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// ratedPlayer builds a player with ratings only for the given roles.
func ratedPlayer(id model.PlayerID, age uint8, ratings map[catalogue.RoleID]float64) model.Player {
	rr := make([]model.Stat, catalogue.RoleCount)
	for role, v := range ratings {
		off, ok := catalogue.RoleOffset(role)
		if !ok {
			panic("unknown role in test fixture: " + string(role))
		}
		rr[off] = model.StatOf(v)
	}
	p, err := model.NewPlayer(id, age, model.FootRight,
		make([]model.Stat, catalogue.AbilityCount), model.Stat{}, rr)
	if err != nil {
		panic(err)
	}
	return p
}

func seededStore(ctx context.Context) *repository.PoolStore {
	store := repository.NewPoolStore()
	for _, p := range []model.Player{
		ratedPlayer("Alisson", 31, map[catalogue.RoleID]float64{"GK": 18.5}),
		ratedPlayer("Ederson", 30, map[catalogue.RoleID]float64{"GK": 18.0, "SK(a)": 17.5}),
		ratedPlayer("Pope", 32, map[catalogue.RoleID]float64{"GK": 15.0}),
		ratedPlayer("Salah", 32, map[catalogue.RoleID]float64{"W(s) R": 17.8}),
	} {
		if err := store.Add(ctx, p); err != nil {
			panic(err)
		}
	}
	return store
}

func TestPoolStoreRanking(t *testing.T) {
	Convey("Given a seeded pool store", t, func() {
		ctx := context.Background()
		store := seededStore(ctx)

		Convey("Then Count reports the pool size", func() {
			So(store.Count(ctx), ShouldEqual, 4)
		})

		Convey("When asking for the top keepers", func() {
			top, err := store.TopN(ctx, "GK", 2)

			Convey("Then entries come back score descending, rank numbered", func() {
				So(err, ShouldBeNil)
				So(len(top), ShouldEqual, 2)
				So(top[0].Player, ShouldEqual, model.PlayerID("Alisson"))
				So(top[0].Rank, ShouldEqual, 1)
				So(top[0].Score, ShouldEqual, 18.5)
				So(top[1].Player, ShouldEqual, model.PlayerID("Ederson"))
				So(top[1].Rank, ShouldEqual, 2)
			})
		})

		Convey("When n exceeds the rated population", func() {
			top, err := store.TopN(ctx, "GK", 50)

			Convey("Then only rated players are returned", func() {
				So(err, ShouldBeNil)
				So(len(top), ShouldEqual, 3)
			})
		})

		Convey("When ranking a single player", func() {
			e, err := store.Rank(ctx, "GK", "Pope")

			So(err, ShouldBeNil)
			So(e.Rank, ShouldEqual, 3)
			So(e.Age, ShouldEqual, 32)
		})

		Convey("When the player has no rating for the role", func() {
			_, err := store.Rank(ctx, "GK", "Salah")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestPoolStoreTieBreak(t *testing.T) {
	Convey("Given two players with equal scores", t, func() {
		ctx := context.Background()
		store := repository.NewPoolStore(repository.WithShardCount(2))
		So(store.Add(ctx, ratedPlayer("Zoff", 40, map[catalogue.RoleID]float64{"GK": 16})), ShouldBeNil)
		So(store.Add(ctx, ratedPlayer("Buffon", 39, map[catalogue.RoleID]float64{"GK": 16})), ShouldBeNil)

		Convey("Then ties break on name ascending", func() {
			top, err := store.TopN(ctx, "GK", 10)
			So(err, ShouldBeNil)
			So(top[0].Player, ShouldEqual, model.PlayerID("Buffon"))
			So(top[1].Player, ShouldEqual, model.PlayerID("Zoff"))
		})
	})
}

func TestPoolStoreErrors(t *testing.T) {
	Convey("Given a pool store", t, func() {
		ctx := context.Background()
		store := seededStore(ctx)

		Convey("Then a non-positive limit is rejected", func() {
			_, err := store.TopN(ctx, "GK", 0)
			So(errors.Is(err, repository.ErrInvalidLimit), ShouldBeTrue)
		})

		Convey("Then an unknown role is rejected", func() {
			_, err := store.TopN(ctx, "AM(s)", 5)
			So(errors.Is(err, catalogue.ErrUnknownRole), ShouldBeTrue)

			_, err = store.Rank(ctx, "Sweeper", "Alisson")
			So(errors.Is(err, catalogue.ErrUnknownRole), ShouldBeTrue)
		})
	})
}

func TestPoolStoreReplace(t *testing.T) {
	Convey("Given a player added twice", t, func() {
		ctx := context.Background()
		store := repository.NewPoolStore()
		So(store.Add(ctx, ratedPlayer("Alisson", 31, map[catalogue.RoleID]float64{"GK": 18})), ShouldBeNil)
		So(store.Add(ctx, ratedPlayer("Alisson", 32, map[catalogue.RoleID]float64{"GK": 17})), ShouldBeNil)

		Convey("Then the latest row wins and the count stays at one", func() {
			So(store.Count(ctx), ShouldEqual, 1)
			e, err := store.Rank(ctx, "GK", "Alisson")
			So(err, ShouldBeNil)
			So(e.Score, ShouldEqual, 17.0)
			So(e.Age, ShouldEqual, 32)
		})
	})
}
