package controller

import (
	"testing"

	"github.com/abalcs/sleeper-app/db/mockdb"
	"github.com/abalcs/sleeper-app/model"
	"github.com/abalcs/sleeper-app/sleeper/mocksleeper"
	"github.com/abalcs/sleeper-app/textgen/mocktextgen"
	"github.com/itbasis/go-clock"
)

const testLeagueID = "99001122334455"

// newTestController wires a controller to mocks for every dependency.
// Tests set expectations on the returned mocks before calling into it.
func newTestController(t *testing.T) (*controller, *mockdb.DB, *mocksleeper.Client, *mocktextgen.Client, *clock.Mock) {
	t.Helper()

	clk := clock.NewMock()
	mdb := &mockdb.DB{}
	msleeper := &mocksleeper.Client{}
	mtextgen := &mocktextgen.Client{}

	c := &controller{
		clock:   clk,
		db:      mdb,
		sleeper: msleeper,
		textgen: mtextgen,
	}
	return c, mdb, msleeper, mtextgen, clk
}

// freshCacheEntry builds a player cache entry that will not trigger a
// refresh for the given mock clock.
func freshCacheEntry(clk *clock.Mock, directory model.PlayerDirectory) *model.PlayerCacheEntry {
	return &model.PlayerCacheEntry{
		Sport:   model.SportNFL,
		Blob:    directory,
		Updated: clk.Now(),
	}
}
