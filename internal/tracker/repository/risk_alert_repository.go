package repository

import (
	"context"
	"errors"

	"margin-tracker/internal/entity"

	"gorm.io/gorm"
)

// ErrRiskAlertNotFound is returned when a risk alert id does not exist.
var ErrRiskAlertNotFound = errors.New("risk alert not found")

type RiskAlertRepository interface {
	CreateBatch(ctx context.Context, alerts []entity.RiskAlert) error
	GetByID(ctx context.Context, id uint) (*entity.RiskAlert, error)
	Acknowledge(ctx context.Context, id uint) error
}

type riskAlertRepository struct {
	db *gorm.DB
}

func NewRiskAlertRepository(db *gorm.DB) RiskAlertRepository {
	return &riskAlertRepository{db: db}
}

func (r *riskAlertRepository) CreateBatch(ctx context.Context, alerts []entity.RiskAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&alerts).Error
}

func (r *riskAlertRepository) GetByID(ctx context.Context, id uint) (*entity.RiskAlert, error) {
	var alert entity.RiskAlert
	if err := r.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRiskAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *riskAlertRepository) Acknowledge(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.RiskAlert{}).
		Where("id = ?", id).
		Update("acknowledged", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRiskAlertNotFound
	}
	return nil
}
