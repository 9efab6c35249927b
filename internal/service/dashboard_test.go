package service_test

import (
	"context"
	"errors"
	"testing"

	"fundflow/internal/dto"
	"fundflow/internal/model"
	"fundflow/internal/repository"
	"fundflow/internal/service"

	"gorm.io/gorm"
)

func TestGoalCurrentAmountRecomputedFromDonations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	donationRepo := repository.NewDonationRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	dashboard := service.NewDashboardService(donationRepo, goalRepo)

	goal, err := dashboard.AddGoal(ctx, "u1", &dto.AddGoalRequest{
		Title:        "Give $100 this year",
		TargetAmount: 100,
		TargetDate:   "2026-12-31",
	})
	if err != nil {
		t.Fatal("add goal:", err)
	}
	if goal.TargetDate == nil {
		t.Error("expected parsed target date")
	}

	for _, amount := range []float64{10, 15} {
		if _, err := dashboard.AddDonation(ctx, "u1", &dto.AddDonationRequest{
			CampaignTitle: "Clean water",
			Amount:        amount,
		}); err != nil {
			t.Fatal("add donation:", err)
		}
	}

	goals, err := dashboard.Goals(ctx, "u1")
	if err != nil {
		t.Fatal("list goals:", err)
	}
	if len(goals) != 1 {
		t.Fatal("expected 1 goal, got", len(goals))
	}
	if goals[0].CurrentAmount != 25 {
		t.Error("expected current amount 25, got", goals[0].CurrentAmount)
	}

	// recomputed value is persisted
	var stored model.DonationGoal
	if err := db.First(&stored, "id = ?", goal.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.CurrentAmount != 25 {
		t.Error("expected persisted current amount 25, got", stored.CurrentAmount)
	}
}

func TestAddDonationValidation(t *testing.T) {
	db := newTestDB(t)
	dashboard := service.NewDashboardService(
		repository.NewDonationRepository(db),
		repository.NewGoalRepository(db),
	)

	cases := []dto.AddDonationRequest{
		{Amount: 10},                          // missing title
		{CampaignTitle: "X", Amount: 0},       // zero amount
		{CampaignTitle: "X", Amount: -3},      // negative amount
		{CampaignTitle: "X", Amount: 5, DonationDate: "31-12-2026"}, // bad date
	}
	for i, req := range cases {
		if _, err := dashboard.AddDonation(context.Background(), "u1", &req); !errors.Is(err, service.ErrInvalidRequest) {
			t.Errorf("case %d: expected ErrInvalidRequest, got %v", i, err)
		}
	}
}

func TestDeleteGoalScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	goalRepo := repository.NewGoalRepository(db)
	dashboard := service.NewDashboardService(repository.NewDonationRepository(db), goalRepo)

	goal, err := dashboard.AddGoal(ctx, "u1", &dto.AddGoalRequest{Title: "G", TargetAmount: 10})
	if err != nil {
		t.Fatal(err)
	}

	if err := dashboard.DeleteGoal(ctx, "u2", goal.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("another user must not delete the goal, got", err)
	}
	if err := dashboard.DeleteGoal(ctx, "u1", goal.ID); err != nil {
		t.Error("owner delete failed:", err)
	}
}
