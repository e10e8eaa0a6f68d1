package repository

import (
	"context"
	"errors"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"

	"gorm.io/gorm"
)

// ErrTriggeredAlertNotFound is returned when a triggered alert id does not
// exist.
var ErrTriggeredAlertNotFound = errors.New("triggered alert not found")

type TriggeredAlertRepository interface {
	Create(ctx context.Context, alert *entity.TriggeredAlert) error
	GetByID(ctx context.Context, id uint) (*entity.TriggeredAlert, error)
	Get(ctx context.Context, param dto.GetTriggeredAlertsParam) ([]entity.TriggeredAlert, error)
	SetStatus(ctx context.Context, id uint, status entity.TriggeredAlertStatus, at time.Time) error
}

type triggeredAlertRepository struct {
	db *gorm.DB
}

func NewTriggeredAlertRepository(db *gorm.DB) TriggeredAlertRepository {
	return &triggeredAlertRepository{db: db}
}

func (r *triggeredAlertRepository) Create(ctx context.Context, alert *entity.TriggeredAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *triggeredAlertRepository) GetByID(ctx context.Context, id uint) (*entity.TriggeredAlert, error) {
	var alert entity.TriggeredAlert
	if err := r.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTriggeredAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *triggeredAlertRepository) Get(ctx context.Context, param dto.GetTriggeredAlertsParam) ([]entity.TriggeredAlert, error) {
	query := r.db.WithContext(ctx).Model(&entity.TriggeredAlert{})

	if len(param.Statuses) > 0 {
		query = query.Where("status IN (?)", param.Statuses)
	}
	if len(param.Types) > 0 {
		query = query.Where("type IN (?)", param.Types)
	}
	if len(param.Severities) > 0 {
		query = query.Where("severity IN (?)", param.Severities)
	}
	if param.Symbol != "" {
		query = query.Where("symbol = ?", param.Symbol)
	}

	var alerts []entity.TriggeredAlert
	if err := query.Order("triggered_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *triggeredAlertRepository) SetStatus(ctx context.Context, id uint, status entity.TriggeredAlertStatus, at time.Time) error {
	fields := map[string]interface{}{"status": status}
	switch status {
	case entity.TriggeredStatusAcknowledged:
		fields["acknowledged_at"] = at
	case entity.TriggeredStatusDismissed:
		fields["dismissed_at"] = at
	}

	result := r.db.WithContext(ctx).
		Model(&entity.TriggeredAlert{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTriggeredAlertNotFound
	}
	return nil
}
