package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/db/mockdb"
	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/duanerilli/NFL-Pool-Backend/platforms/rapidapi/mockrapidapi"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
)

func TestSettlePicks(t *testing.T) {
	sf, gb, kc, det := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	win, tie := uuid.New(), uuid.New()
	games := []model.Game{
		{ID: win, Phase: model.PhaseReg, Week: 2, HomeTeamID: sf, AwayTeamID: gb, HomeScore: intPtr(24), AwayScore: intPtr(17)},
		{ID: tie, Phase: model.PhaseReg, Week: 2, HomeTeamID: kc, AwayTeamID: det, HomeScore: intPtr(20), AwayScore: intPtr(20)},
	}

	winPick := model.Pick{ID: uuid.New(), Week: 2, TeamID: sf, GameID: win, Status: model.PickPending}
	lossPick := model.Pick{ID: uuid.New(), Week: 2, TeamID: gb, GameID: win, Status: model.PickPending}
	pushPick := model.Pick{ID: uuid.New(), Week: 2, TeamID: kc, GameID: tie, Status: model.PickPending}

	mockDB := &mockdb.DB{}
	mockDB.On("ListScoredGames", mock.Anything, model.PhaseReg, 2,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)).
		Return(games, nil)
	mockDB.On("ListPendingPicks", mock.Anything, []uuid.UUID{win, tie}).
		Return([]model.Pick{winPick, lossPick, pushPick}, nil)
	mockDB.On("UpdatePickStatuses", mock.Anything, []uuid.UUID{winPick.ID}, model.PickWin).Return(1, nil)
	mockDB.On("UpdatePickStatuses", mock.Anything, []uuid.UUID{lossPick.ID}, model.PickLoss).Return(1, nil)
	mockDB.On("UpdatePickStatuses", mock.Anything, []uuid.UUID{pushPick.ID}, model.PickPush).Return(1, nil)

	ctrl, err := New(clock.NewMock(), &mockrapidapi.Client{}, mockDB)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	total, err := ctrl.SettlePicks(context.Background(), 2025, model.PhaseReg, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("wanted 3 settled picks, got %d", total)
	}
	mockDB.AssertExpectations(t)
}

func TestSettlePicks_noFinalGames(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockDB.On("ListScoredGames", mock.Anything, model.PhaseReg, 5, mock.Anything, mock.Anything).
		Return(nil, nil)

	ctrl, err := New(clock.NewMock(), &mockrapidapi.Client{}, mockDB)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	total, err := ctrl.SettlePicks(context.Background(), 2025, model.PhaseReg, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("wanted 0 settled picks, got %d", total)
	}
	// ListPendingPicks and UpdatePickStatuses were never registered, so any
	// call to them fails the test.
	mockDB.AssertExpectations(t)
}

func TestSettlePicks_updateError(t *testing.T) {
	sf, gb := uuid.New(), uuid.New()
	gameID := uuid.New()
	games := []model.Game{
		{ID: gameID, Phase: model.PhaseReg, Week: 2, HomeTeamID: sf, AwayTeamID: gb, HomeScore: intPtr(31), AwayScore: intPtr(10)},
	}
	pick := model.Pick{ID: uuid.New(), Week: 2, TeamID: sf, GameID: gameID, Status: model.PickPending}

	mockDB := &mockdb.DB{}
	mockDB.On("ListScoredGames", mock.Anything, model.PhaseReg, 2, mock.Anything, mock.Anything).
		Return(games, nil)
	mockDB.On("ListPendingPicks", mock.Anything, []uuid.UUID{gameID}).
		Return([]model.Pick{pick}, nil)
	mockDB.On("UpdatePickStatuses", mock.Anything, []uuid.UUID{pick.ID}, model.PickWin).
		Return(0, errors.New("connection reset"))

	ctrl, err := New(clock.NewMock(), &mockrapidapi.Client{}, mockDB)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	total, err := ctrl.SettlePicks(context.Background(), 2025, model.PhaseReg, 2)
	if !errorsEqual(err, errors.New("error settling win picks: connection reset")) {
		t.Errorf("not the expected error: '%v'", err)
	}
	if total != 0 {
		t.Errorf("wanted 0 settled picks, got %d", total)
	}
	mockDB.AssertExpectations(t)
}

func intPtr(v int) *int {
	return &v
}
