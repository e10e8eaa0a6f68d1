package repository

import (
	"context"
	"errors"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"

	"gorm.io/gorm"
)

// ErrPositionNotFound is returned when a position id does not exist.
var ErrPositionNotFound = errors.New("position not found")

type PositionRepository interface {
	Create(ctx context.Context, position *entity.TrackedPosition) error
	GetByID(ctx context.Context, id uint) (*entity.TrackedPosition, error)
	Get(ctx context.Context, param dto.GetPositionsParam) ([]entity.TrackedPosition, error)
	Save(ctx context.Context, position *entity.TrackedPosition) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type positionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, position *entity.TrackedPosition) error {
	return r.db.WithContext(ctx).Create(position).Error
}

func (r *positionRepository) GetByID(ctx context.Context, id uint) (*entity.TrackedPosition, error) {
	var position entity.TrackedPosition
	err := r.db.WithContext(ctx).
		Preload("DailyUpdates", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("RiskAlerts", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC") }).
		First(&position, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}
	return &position, nil
}

func (r *positionRepository) Get(ctx context.Context, param dto.GetPositionsParam) ([]entity.TrackedPosition, error) {
	query := r.db.WithContext(ctx).Model(&entity.TrackedPosition{})

	if len(param.IDs) > 0 {
		query = query.Where("id IN (?)", param.IDs)
	}
	if len(param.Symbols) > 0 {
		query = query.Where("symbol IN (?)", param.Symbols)
	}
	if len(param.Statuses) > 0 {
		query = query.Where("status IN (?)", param.Statuses)
	}
	if param.WithUpdates {
		query = query.Preload("DailyUpdates", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") })
	}
	if param.WithRiskAlerts {
		query = query.Preload("RiskAlerts", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC") })
	}

	var positions []entity.TrackedPosition
	if err := query.Order("created_at DESC").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *positionRepository) Save(ctx context.Context, position *entity.TrackedPosition) error {
	return r.db.WithContext(ctx).Omit("DailyUpdates", "RiskAlerts").Save(position).Error
}

func (r *positionRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entity.TrackedPosition{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *positionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("position_id = ?", id).Delete(&entity.DailyUpdate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("position_id = ?", id).Delete(&entity.RiskAlert{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.TrackedPosition{}, id).Error
	})
}
