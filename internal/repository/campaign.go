package repository

import (
	"context"

	"fundflow/internal/model"

	"gorm.io/gorm"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *model.Campaign) error
	FindByID(ctx context.Context, id string) (*model.Campaign, error)
	List(ctx context.Context) ([]*model.Campaign, error)
}

type campaignRepoImpl struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepoImpl{
		db: db,
	}
}

func (r *campaignRepoImpl) Create(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepoImpl) FindByID(ctx context.Context, id string) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaign).Error

	if err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (r *campaignRepoImpl) List(ctx context.Context) ([]*model.Campaign, error) {
	var campaigns []*model.Campaign
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&campaigns).Error

	if err != nil {
		return nil, err
	}

	return campaigns, nil
}
