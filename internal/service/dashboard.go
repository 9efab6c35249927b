package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"fundflow/internal/dto"
	"fundflow/internal/model"
	"fundflow/internal/repository"

	"github.com/google/uuid"
)

type DashboardService interface {
	Donations(ctx context.Context, userID string) ([]dto.DonationView, error)
	AddDonation(ctx context.Context, userID string, req *dto.AddDonationRequest) (*model.Donation, error)
	Goals(ctx context.Context, userID string) ([]dto.GoalView, error)
	AddGoal(ctx context.Context, userID string, req *dto.AddGoalRequest) (*model.DonationGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
}

type dashboardServiceImpl struct {
	donationRepo repository.DonationRepository
	goalRepo     repository.GoalRepository
}

func NewDashboardService(
	donationRepo repository.DonationRepository,
	goalRepo repository.GoalRepository,
) DashboardService {
	return &dashboardServiceImpl{
		donationRepo: donationRepo,
		goalRepo:     goalRepo,
	}
}

func (s *dashboardServiceImpl) Donations(ctx context.Context, userID string) ([]dto.DonationView, error) {
	donations, err := s.donationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}

	views := make([]dto.DonationView, len(donations))
	for i, d := range donations {
		views[i] = dto.DonationView{
			ID:            d.ID,
			CampaignID:    d.CampaignID,
			CampaignTitle: d.CampaignTitle,
			Amount:        d.Amount,
			Currency:      d.Currency,
			Method:        d.Method,
			DonationDate:  d.DonationDate,
		}
	}

	return views, nil
}

func (s *dashboardServiceImpl) AddDonation(ctx context.Context, userID string, req *dto.AddDonationRequest) (*model.Donation, error) {
	if req.CampaignTitle == "" {
		return nil, fmt.Errorf("%w: campaign title is required", ErrInvalidRequest)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}

	donationDate := time.Now()
	if req.DonationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DonationDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid donation date", ErrInvalidRequest)
		}
		donationDate = parsed
	}

	donation := &model.Donation{
		ID:            uuid.NewString(),
		UserID:        userID,
		CampaignTitle: req.CampaignTitle,
		Amount:        req.Amount,
		Currency:      "USD",
		DonationDate:  donationDate,
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}

	return donation, nil
}

// Goals recomputes each active goal's current amount from the user's donation
// sum before returning it, the way the dashboard page keeps goals in step
// with recorded donations.
func (s *dashboardServiceImpl) Goals(ctx context.Context, userID string) ([]dto.GoalView, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	donated, err := s.donationRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}

	views := make([]dto.GoalView, len(goals))
	for i, g := range goals {
		current := g.CurrentAmount
		if g.IsActive && current != donated {
			current = donated
			if err := s.goalRepo.UpdateCurrentAmount(ctx, g.ID, donated); err != nil {
				log.Println("update goal current amount:", err)
			}
		}
		views[i] = dto.GoalView{
			ID:            g.ID,
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: current,
			Currency:      g.Currency,
			TargetDate:    g.TargetDate,
			IsActive:      g.IsActive,
		}
	}

	return views, nil
}

func (s *dashboardServiceImpl) AddGoal(ctx context.Context, userID string, req *dto.AddGoalRequest) (*model.DonationGoal, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	if req.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target amount must be positive", ErrInvalidRequest)
	}

	goal := &model.DonationGoal{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Currency:     "USD",
		IsActive:     true,
	}
	if req.TargetDate != "" {
		parsed, err := time.Parse("2006-01-02", req.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid target date", ErrInvalidRequest)
		}
		goal.TargetDate = &parsed
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	return goal, nil
}

func (s *dashboardServiceImpl) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return s.goalRepo.Delete(ctx, userID, goalID)
}
