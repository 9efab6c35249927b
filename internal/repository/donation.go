package repository

import (
	"context"

	"fundflow/internal/model"

	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *model.Donation) error
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.Donation, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Donation, error)
	// SumByCampaign derives the amount raised by aggregation. The campaign row
	// never stores a running total, so concurrent donations cannot lose
	// updates; the trade-off is one aggregation query per read.
	SumByCampaign(ctx context.Context, campaignID string) (float64, error)
	SumByCampaigns(ctx context.Context, campaignIDs []string) (map[string]float64, error)
	SumByUser(ctx context.Context, userID string) (float64, error)
	CountByCampaign(ctx context.Context, campaignID string) (int64, error)
}

type donationRepoImpl struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepoImpl{
		db: db,
	}
}

func (r *donationRepoImpl) Create(ctx context.Context, donation *model.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepoImpl) ListByCampaign(ctx context.Context, campaignID string) ([]*model.Donation, error) {
	var donations []*model.Donation
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("donation_date ASC").
		Find(&donations).Error

	if err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *donationRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Donation, error) {
	var donations []*model.Donation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("donation_date DESC").
		Find(&donations).Error

	if err != nil {
		return nil, err
	}

	return donations, nil
}

func (r *donationRepoImpl) SumByCampaign(ctx context.Context, campaignID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("campaign_id = ?", campaignID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error

	return total, err
}

func (r *donationRepoImpl) SumByCampaigns(ctx context.Context, campaignIDs []string) (map[string]float64, error) {
	if len(campaignIDs) == 0 {
		return map[string]float64{}, nil
	}

	var rows []struct {
		CampaignID string
		Total      float64
	}
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("campaign_id IN ?", campaignIDs).
		Select("campaign_id, COALESCE(SUM(amount), 0) AS total").
		Group("campaign_id").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.CampaignID] = row.Total
	}

	return totals, nil
}

func (r *donationRepoImpl) SumByUser(ctx context.Context, userID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error

	return total, err
}

func (r *donationRepoImpl) CountByCampaign(ctx context.Context, campaignID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("campaign_id = ?", campaignID).
		Count(&count).Error

	return count, err
}
