package controller

import (
	"context"
	"testing"

	"github.com/duanerilli/NFL-Pool-Backend/db/mockdb"
	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/duanerilli/NFL-Pool-Backend/platforms/rapidapi/mockrapidapi"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
)

func TestGetLeaderboard(t *testing.T) {
	alice := model.User{ID: uuid.New(), Name: "Alice"}
	bob := model.User{ID: uuid.New(), Name: "Bob"}
	carol := model.User{ID: uuid.New(), Name: "Carol"}

	picks := []model.PickDetail{
		{Pick: model.Pick{UserID: alice.ID, Week: 1, Status: model.PickWin}, TeamCode: "SF"},
		{Pick: model.Pick{UserID: bob.ID, Week: 1, Status: model.PickLoss}, TeamCode: "GB"},
		{Pick: model.Pick{UserID: bob.ID, Week: 2, Status: model.PickPending}, TeamCode: "KC"},
	}

	mockDB := &mockdb.DB{}
	mockDB.On("ListUsers", mock.Anything).Return([]model.User{alice, bob, carol}, nil)
	mockDB.On("ListPickDetails", mock.Anything).Return(picks, nil)

	ctrl, err := New(clock.NewMock(), &mockrapidapi.Client{}, mockDB)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	lb, err := ctrl.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A win eliminates, so Alice is out. A loss does not, so Bob is still in,
	// and so is Carol who has never picked.
	if len(lb.Eliminated) != 1 || lb.Eliminated[0].ID != alice.ID {
		t.Fatalf("wanted Alice alone in eliminated, got %+v", lb.Eliminated)
	}
	if !lb.Eliminated[0].Eliminated {
		t.Error("Alice's row should be marked eliminated")
	}
	if len(lb.StillIn) != 2 {
		t.Fatalf("wanted 2 users still in, got %d", len(lb.StillIn))
	}
	if lb.StillIn[0].ID != bob.ID || lb.StillIn[1].ID != carol.ID {
		t.Errorf("wanted Bob and Carol still in, got %+v", lb.StillIn)
	}

	if len(lb.StillIn[0].Picks) != 2 {
		t.Fatalf("wanted 2 picks in Bob's history, got %d", len(lb.StillIn[0].Picks))
	}
	if got := lb.StillIn[0].Picks[1]; got.Week != 2 || got.TeamCode != "KC" || got.Status != model.PickPending {
		t.Errorf("unexpected second pick for Bob: %+v", got)
	}
	if len(lb.StillIn[1].Picks) != 0 {
		t.Errorf("wanted empty history for Carol, got %+v", lb.StillIn[1].Picks)
	}

	mockDB.AssertExpectations(t)
}

func TestGetLeaderboard_empty(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockDB.On("ListUsers", mock.Anything).Return(nil, nil)
	mockDB.On("ListPickDetails", mock.Anything).Return(nil, nil)

	ctrl, err := New(clock.NewMock(), &mockrapidapi.Client{}, mockDB)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	lb, err := ctrl.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both halves marshal as [] rather than null.
	if lb.StillIn == nil || lb.Eliminated == nil {
		t.Errorf("leaderboard slices should be non-nil: %+v", lb)
	}
	if len(lb.StillIn) != 0 || len(lb.Eliminated) != 0 {
		t.Errorf("wanted an empty leaderboard, got %+v", lb)
	}
}
