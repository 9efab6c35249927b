package repository

import (
	"context"

	"fundflow/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.DonationComment) error
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.DonationComment, error)
	DeleteByCampaign(ctx context.Context, campaignID string) error
}

type commentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepoImpl{
		db: db,
	}
}

func (r *commentRepoImpl) Create(ctx context.Context, comment *model.DonationComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepoImpl) ListByCampaign(ctx context.Context, campaignID string) ([]*model.DonationComment, error) {
	var comments []*model.DonationComment
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepoImpl) DeleteByCampaign(ctx context.Context, campaignID string) error {
	return r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Delete(&model.DonationComment{}).Error
}
