package controller

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/duanerilli/NFL-Pool-Backend/platforms/rapidapi"
	"github.com/duanerilli/NFL-Pool-Backend/testutils"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

// Runs a full season slice against the fake provider and a real database:
// sync both weeks, submit and settle picks, then read the leaderboard. The
// fake feed has two finished week 1 games (one of them a tie) and two
// scheduled week 2 games.
func TestSyncSettleLeaderboard(t *testing.T) {
	ctx := context.Background()

	fake := testutils.NewFakeRapidAPIServer()
	defer fake.Close()

	// Between the week 1 and week 2 kickoffs in the fake feed.
	c := clock.NewMock()
	c.Set(time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC))

	ctrl, err := New(c, rapidapi.NewForTest(fake.URL()), testDB.DB)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	users, err := testutils.InsertTestUsers(testDB.DB)
	if err != nil {
		t.Fatalf("error inserting test users: %v", err)
	}
	alice, bob, carol := users[0], users[1], users[2]

	for week, want := range map[int]int{1: 2, 2: 2} {
		n, err := ctrl.SyncGames(ctx, 2025, model.PhaseReg, week)
		if err != nil {
			t.Fatalf("error syncing week %d: %v", week, err)
		}
		if n != want {
			t.Fatalf("expected %d games synced for week %d, got %d", want, week, n)
		}
	}

	phase, week, err := ctrl.ResolveCurrentWeek(ctx)
	if err != nil {
		t.Fatalf("error resolving current week: %v", err)
	}
	if phase != model.PhaseReg || week != 2 {
		t.Errorf("wanted current week (reg, 2), got (%s, %d)", phase, week)
	}

	// Week 1 kicked off already, so its picks go in through the db directly.
	games, err := testDB.DB.ListGamesForWeek(ctx, 1, 2025)
	if err != nil {
		t.Fatalf("error listing week 1 games: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 week 1 games, got %d", len(games))
	}
	phiDal, kcBal := games[0], games[1]

	phi := getTeamID(t, "PHI")
	dal := getTeamID(t, "DAL")
	kc := getTeamID(t, "KC")
	for _, p := range []model.Pick{
		{UserID: alice.ID, Week: 1, TeamID: phi, GameID: phiDal.ID, Status: model.PickPending},
		{UserID: bob.ID, Week: 1, TeamID: dal, GameID: phiDal.ID, Status: model.PickPending},
		{UserID: carol.ID, Week: 1, TeamID: kc, GameID: kcBal.ID, Status: model.PickPending},
	} {
		p := p
		if err := testDB.DB.InsertPick(ctx, &p); err != nil {
			t.Fatalf("error inserting week 1 pick: %v", err)
		}
	}

	settled, err := ctrl.SettlePicks(ctx, 2025, model.PhaseReg, 1)
	if err != nil {
		t.Fatalf("error settling week 1: %v", err)
	}
	if settled != 3 {
		t.Errorf("expected 3 settled picks, got %d", settled)
	}

	// Re-running changes nothing: the picks are no longer pending.
	settled, err = ctrl.SettlePicks(ctx, 2025, model.PhaseReg, 1)
	if err != nil {
		t.Fatalf("error re-settling week 1: %v", err)
	}
	if settled != 0 {
		t.Errorf("expected 0 picks on a re-run, got %d", settled)
	}

	// Week 2 is still open, so Alice picks through the front door.
	detail, err := ctrl.SubmitPick(ctx, alice.ID, model.PhaseReg, 2, "SF")
	if err != nil {
		t.Fatalf("error submitting pick: %v", err)
	}
	if detail.Status != model.PickPending || detail.TeamCode != "SF" {
		t.Errorf("unexpected pick detail: %+v", detail)
	}

	lb, err := ctrl.GetLeaderboard(ctx)
	if err != nil {
		t.Fatalf("error reading leaderboard: %v", err)
	}
	// Alice won week 1, which in this pool means she is out. Bob lost and
	// Carol pushed, so both survive.
	if len(lb.Eliminated) != 1 || lb.Eliminated[0].ID != alice.ID {
		t.Fatalf("wanted Alice alone in eliminated, got %+v", lb.Eliminated)
	}
	if len(lb.StillIn) != 2 {
		t.Fatalf("wanted Bob and Carol still in, got %+v", lb.StillIn)
	}
	if lb.StillIn[0].Picks[0].Status != model.PickLoss {
		t.Errorf("Bob's week 1 pick should be a loss: %+v", lb.StillIn[0].Picks)
	}
	if lb.StillIn[1].Picks[0].Status != model.PickPush {
		t.Errorf("Carol's week 1 pick should be a push: %+v", lb.StillIn[1].Picks)
	}

	// Alice has used PHI and SF, and nothing in week 2 has kicked off yet.
	_, _, codes, err := ctrl.AvailableTeams(ctx, alice.ID, model.PhaseReg, 2, false)
	if err != nil {
		t.Fatalf("error listing available teams: %v", err)
	}
	if len(codes) != 30 {
		t.Errorf("expected 30 available teams, got %d", len(codes))
	}
	for _, code := range codes {
		if code == "PHI" || code == "SF" {
			t.Errorf("team %s should not be available", code)
		}
	}
}

func getTeamID(t *testing.T, code string) uuid.UUID {
	t.Helper()
	team, err := testDB.DB.GetTeamByCode(context.Background(), code)
	if err != nil {
		t.Fatalf("error reading team %s: %v", code, err)
	}
	return team.ID
}
