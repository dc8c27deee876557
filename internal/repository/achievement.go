package repository

import (
	"context"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type AchievementRepository interface {
	// Create inserts a catalog entry, updating its definition when the name
	// already exists. It is only used by migration seeding.
	Create(ctx context.Context, achievement *entity.Achievement) error
	GetByID(ctx context.Context, id string) (*entity.Achievement, error)
	GetAll(ctx context.Context) ([]entity.Achievement, error)
	GetAllActive(ctx context.Context) ([]entity.Achievement, error)
}

type achievementRepository struct{}

func NewAchievementRepository() *achievementRepository {
	return &achievementRepository{}
}

func (r *achievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"description":     achievement.Description,
				"category":        achievement.Category,
				"tier":            achievement.Tier,
				"requirement":     achievement.Requirement,
				"unlock_criteria": achievement.UnlockCriteria,
				"is_active":       achievement.IsActive,
			}),
		}).Create(achievement).Error
}

func (r *achievementRepository) GetByID(ctx context.Context, id string) (*entity.Achievement, error) {
	var result entity.Achievement
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *achievementRepository) GetAll(ctx context.Context) ([]entity.Achievement, error) {
	var result []entity.Achievement
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *achievementRepository) GetAllActive(ctx context.Context) ([]entity.Achievement, error) {
	var result []entity.Achievement
	err := xcontext.DB(ctx).
		Where("is_active=?", true).
		Order("requirement ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
