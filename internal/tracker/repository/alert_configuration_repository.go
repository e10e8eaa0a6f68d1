package repository

import (
	"context"
	"errors"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"

	"gorm.io/gorm"
)

// ErrAlertConfigurationNotFound is returned when a configuration id does not
// exist.
var ErrAlertConfigurationNotFound = errors.New("alert configuration not found")

type AlertConfigurationRepository interface {
	Create(ctx context.Context, config *entity.AlertConfiguration) error
	GetByID(ctx context.Context, id uint) (*entity.AlertConfiguration, error)
	Get(ctx context.Context, param dto.GetAlertConfigurationsParam) ([]entity.AlertConfiguration, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type alertConfigurationRepository struct {
	db *gorm.DB
}

func NewAlertConfigurationRepository(db *gorm.DB) AlertConfigurationRepository {
	return &alertConfigurationRepository{db: db}
}

func (r *alertConfigurationRepository) Create(ctx context.Context, config *entity.AlertConfiguration) error {
	return r.db.WithContext(ctx).Create(config).Error
}

func (r *alertConfigurationRepository) GetByID(ctx context.Context, id uint) (*entity.AlertConfiguration, error) {
	var config entity.AlertConfiguration
	if err := r.db.WithContext(ctx).First(&config, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertConfigurationNotFound
		}
		return nil, err
	}
	return &config, nil
}

func (r *alertConfigurationRepository) Get(ctx context.Context, param dto.GetAlertConfigurationsParam) ([]entity.AlertConfiguration, error) {
	query := r.db.WithContext(ctx).Model(&entity.AlertConfiguration{})

	if param.Enabled != nil {
		query = query.Where("enabled = ?", *param.Enabled)
	}
	if param.Symbol != "" {
		query = query.Where("symbol = ?", param.Symbol)
	}
	if len(param.Types) > 0 {
		query = query.Where("type IN (?)", param.Types)
	}

	var configs []entity.AlertConfiguration
	if err := query.Order("created_at ASC").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *alertConfigurationRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entity.AlertConfiguration{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertConfigurationNotFound
	}
	return nil
}

func (r *alertConfigurationRepository) Delete(ctx context.Context, id uint) error {
	// Weak reference: already-triggered alerts keep their alert_id.
	return r.db.WithContext(ctx).Delete(&entity.AlertConfiguration{}, id).Error
}

func (r *alertConfigurationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.AlertConfiguration{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
