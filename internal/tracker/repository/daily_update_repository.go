package repository

import (
	"context"

	"margin-tracker/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyUpdateRepository interface {
	// Upsert inserts today's update, or overwrites the existing row for the
	// same (position, date) pair.
	Upsert(ctx context.Context, update *entity.DailyUpdate) error
	ListByPosition(ctx context.Context, positionID uint) ([]entity.DailyUpdate, error)
}

type dailyUpdateRepository struct {
	db *gorm.DB
}

func NewDailyUpdateRepository(db *gorm.DB) DailyUpdateRepository {
	return &dailyUpdateRepository{db: db}
}

func (r *dailyUpdateRepository) Upsert(ctx context.Context, update *entity.DailyUpdate) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "position_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"price", "gross_profit", "gross_loss", "total_interest", "roi", "margin_call_risk",
		}),
	}).Create(update).Error
}

func (r *dailyUpdateRepository) ListByPosition(ctx context.Context, positionID uint) ([]entity.DailyUpdate, error) {
	var updates []entity.DailyUpdate
	err := r.db.WithContext(ctx).
		Where("position_id = ?", positionID).
		Order("date ASC").
		Find(&updates).Error
	if err != nil {
		return nil, err
	}
	return updates, nil
}
