package service

import (
	"context"
	"fmt"
	"strings"

	"fundflow/internal/dto"
	"fundflow/internal/model"
	"fundflow/internal/repository"

	"github.com/google/uuid"
)

type CampaignService interface {
	Create(ctx context.Context, userID string, req *dto.CreateCampaignRequest) (*model.Campaign, error)
	List(ctx context.Context) ([]*dto.CampaignSummary, error)
	Get(ctx context.Context, campaignID string) (*dto.CampaignDetail, error)
	Comments(ctx context.Context, campaignID string) ([]dto.CommentView, error)
	ClearComments(ctx context.Context, campaignID string) error
}

type campaignServiceImpl struct {
	campaignRepo repository.CampaignRepository
	donationRepo repository.DonationRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
}

func NewCampaignService(
	campaignRepo repository.CampaignRepository,
	donationRepo repository.DonationRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) CampaignService {
	return &campaignServiceImpl{
		campaignRepo: campaignRepo,
		donationRepo: donationRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
	}
}

func (s *campaignServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateCampaignRequest) (*model.Campaign, error) {
	if req.Purpose == "" {
		return nil, fmt.Errorf("purpose is required")
	}
	if req.GoalAmount <= 0 {
		return nil, fmt.Errorf("goal amount must be positive")
	}

	campaign := &model.Campaign{
		ID:          uuid.NewString(),
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Purpose:     req.Purpose,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		PhotoData:   req.PhotoData,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	return campaign, nil
}

func organizerName(firstName, lastName string) string {
	name := strings.TrimSpace(firstName + " " + lastName)
	if name == "" {
		return "Anonymous"
	}
	return name
}

func campaignTitle(c *model.Campaign) string {
	if c.Purpose != "" {
		return c.Purpose
	}
	return organizerName(c.FirstName, c.LastName)
}

func (s *campaignServiceImpl) List(ctx context.Context) ([]*dto.CampaignSummary, error) {
	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	ids := make([]string, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}
	totals, err := s.donationRepo.SumByCampaigns(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}

	summaries := make([]*dto.CampaignSummary, len(campaigns))
	for i, c := range campaigns {
		summaries[i] = &dto.CampaignSummary{
			ID:           c.ID,
			Title:        campaignTitle(c),
			Organizer:    organizerName(c.FirstName, c.LastName),
			Description:  c.Description,
			GoalAmount:   c.GoalAmount,
			AmountRaised: totals[c.ID],
			PhotoData:    c.PhotoData,
			CreatedAt:    c.CreatedAt,
		}
	}

	return summaries, nil
}

func (s *campaignServiceImpl) Get(ctx context.Context, campaignID string) (*dto.CampaignDetail, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	raised, err := s.donationRepo.SumByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}
	count, err := s.donationRepo.CountByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("count donations: %w", err)
	}

	progress := 0.0
	if campaign.GoalAmount > 0 {
		progress = raised / campaign.GoalAmount * 100
		if progress > 100 {
			progress = 100
		}
	}

	highlights, err := s.highlights(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("donation highlights: %w", err)
	}

	comments, err := s.Comments(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &dto.CampaignDetail{
		CampaignSummary: dto.CampaignSummary{
			ID:           campaign.ID,
			Title:        campaignTitle(campaign),
			Organizer:    organizerName(campaign.FirstName, campaign.LastName),
			Description:  campaign.Description,
			GoalAmount:   campaign.GoalAmount,
			AmountRaised: raised,
			PhotoData:    campaign.PhotoData,
			CreatedAt:    campaign.CreatedAt,
		},
		DonationCount: count,
		Progress:      progress,
		Highlights:    highlights,
		Comments:      comments,
	}, nil
}

// highlights picks the most recent, the largest and the earliest donation for
// the campaign page, deduplicated in that order.
func (s *campaignServiceImpl) highlights(ctx context.Context, campaignID string) ([]dto.DonationHighlight, error) {
	donations, err := s.donationRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if len(donations) == 0 {
		return []dto.DonationHighlight{}, nil
	}

	first := donations[0]
	recent := donations[len(donations)-1]
	top := donations[0]
	for _, d := range donations {
		if d.Amount > top.Amount {
			top = d
		}
	}

	names, err := s.donorNames(ctx, donations)
	if err != nil {
		return nil, err
	}

	result := make([]dto.DonationHighlight, 0, 3)
	seen := make(map[string]bool)
	push := func(d *model.Donation, kind string) {
		if seen[d.ID] {
			return
		}
		seen[d.ID] = true
		result = append(result, dto.DonationHighlight{
			ID:     d.ID,
			Name:   names[d.UserID],
			Amount: d.Amount,
			Type:   kind,
		})
	}
	push(recent, "recent")
	push(top, "top")
	push(first, "first")

	return result, nil
}

func (s *campaignServiceImpl) donorNames(ctx context.Context, donations []*model.Donation) (map[string]string, error) {
	idSet := make(map[string]bool)
	for _, d := range donations {
		if d.UserID != "" {
			idSet[d.UserID] = true
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names := make(map[string]string, len(ids))
	if len(ids) > 0 {
		users, err := s.userRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			names[u.ID] = organizerName(u.FirstName, u.LastName)
		}
	}
	for _, d := range donations {
		if names[d.UserID] == "" {
			names[d.UserID] = "Anonymous"
		}
	}

	return names, nil
}

func (s *campaignServiceImpl) Comments(ctx context.Context, campaignID string) ([]dto.CommentView, error) {
	comments, err := s.commentRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CommentView, len(comments))
	for i, c := range comments {
		views[i] = dto.CommentView{
			ID:        c.ID,
			UserID:    c.UserID,
			Message:   c.Message,
			CreatedAt: c.CreatedAt,
		}
	}

	return views, nil
}

func (s *campaignServiceImpl) ClearComments(ctx context.Context, campaignID string) error {
	return s.commentRepo.DeleteByCampaign(ctx, campaignID)
}
