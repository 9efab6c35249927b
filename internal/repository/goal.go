package repository

import (
	"context"
	"time"

	"fundflow/internal/model"

	"gorm.io/gorm"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.DonationGoal) error
	ListByUser(ctx context.Context, userID string) ([]*model.DonationGoal, error)
	UpdateCurrentAmount(ctx context.Context, goalID string, amount float64) error
	Delete(ctx context.Context, userID, goalID string) error
}

type goalRepoImpl struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepoImpl{
		db: db,
	}
}

func (r *goalRepoImpl) Create(ctx context.Context, goal *model.DonationGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.DonationGoal, error) {
	var goals []*model.DonationGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error

	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepoImpl) UpdateCurrentAmount(ctx context.Context, goalID string, amount float64) error {
	return r.db.WithContext(ctx).Model(&model.DonationGoal{}).
		Where("id = ?", goalID).
		Updates(map[string]interface{}{
			"current_amount": amount,
			"updated_at":     time.Now(),
		}).Error
}

func (r *goalRepoImpl) Delete(ctx context.Context, userID, goalID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&model.DonationGoal{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
