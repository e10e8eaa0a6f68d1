package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/pkg/common"
	"margin-tracker/pkg/logger"
	"margin-tracker/pkg/redis"
	"margin-tracker/pkg/telegram"

	"gorm.io/datatypes"
)

// AlertEngineService owns the configurable alert rules: CRUD over
// configurations, the evaluation pass, and the triggered-alert lifecycle.
type AlertEngineService interface {
	AddAlert(ctx context.Context, req *dto.CreateAlertRequest) (*entity.AlertConfiguration, error)
	RemoveAlert(ctx context.Context, id uint) error
	UpdateAlert(ctx context.Context, id uint, req *dto.UpdateAlertRequest) error
	GetAlerts(ctx context.Context, param dto.GetAlertConfigurationsParam) ([]entity.AlertConfiguration, error)
	GetTriggeredAlerts(ctx context.Context, param dto.GetTriggeredAlertsParam) ([]entity.TriggeredAlert, error)
	AcknowledgeAlert(ctx context.Context, id uint) error
	DismissAlert(ctx context.Context, id uint) error

	// EvaluateAlerts runs every enabled configuration against the candidate
	// positions and persists one triggered alert per matching pair.
	EvaluateAlerts(ctx context.Context, positions []entity.TrackedPosition) error

	// SeedDefaults inserts two disabled example configurations when the store
	// is empty. Safe to call on every startup.
	SeedDefaults(ctx context.Context) error
}

// NewAlertEngineService creates the engine with its evaluator table. A nil
// redis client disables the resend window: every pass re-triggers matching
// pairs.
func NewAlertEngineService(
	alertRepo repository.AlertConfigurationRepository,
	triggeredRepo repository.TriggeredAlertRepository,
	marketRepo repository.MarketDataRepository,
	redisClient *redis.Client,
	notifier telegram.Notifier,
	resendInterval time.Duration,
	log *logger.Logger,
) AlertEngineService {
	return &alertEngineService{
		alertRepo:      alertRepo,
		triggeredRepo:  triggeredRepo,
		marketRepo:     marketRepo,
		redisClient:    redisClient,
		notifier:       notifier,
		resendInterval: resendInterval,
		evaluators:     newEvaluatorTable(),
		logger:         log,
		now:            time.Now,
	}
}

type alertEngineService struct {
	alertRepo      repository.AlertConfigurationRepository
	triggeredRepo  repository.TriggeredAlertRepository
	marketRepo     repository.MarketDataRepository
	redisClient    *redis.Client
	notifier       telegram.Notifier
	resendInterval time.Duration
	evaluators     map[entity.AlertType]Evaluator
	logger         *logger.Logger
	now            func() time.Time
}

func (s *alertEngineService) AddAlert(ctx context.Context, req *dto.CreateAlertRequest) (*entity.AlertConfiguration, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("unknown alert type: %s", req.Type)
	}

	conditions, err := entity.MarshalConditions(req.Conditions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode alert conditions: %w", err)
	}

	severity := req.Severity
	if severity == "" {
		severity = entity.SeverityMedium
	}

	config := &entity.AlertConfiguration{
		Type:                  req.Type,
		Name:                  req.Name,
		Description:           req.Description,
		Symbol:                req.Symbol,
		Conditions:            conditions,
		Severity:              severity,
		Enabled:               req.Enabled,
		NotifySound:           req.NotifySound,
		NotifyEmail:           req.NotifyEmail,
		NotifyPush:            req.NotifyPush,
		ExpiresAt:             req.ExpiresAt,
		RepeatIntervalMinutes: req.RepeatIntervalMinutes,
	}
	if err := s.alertRepo.Create(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to create alert configuration: %w", err)
	}

	s.logger.InfoContext(ctx, "Alert configuration created",
		logger.Field("id", config.ID),
		logger.StringField("type", string(config.Type)))
	return config, nil
}

func (s *alertEngineService) RemoveAlert(ctx context.Context, id uint) error {
	return s.alertRepo.Delete(ctx, id)
}

func (s *alertEngineService) UpdateAlert(ctx context.Context, id uint, req *dto.UpdateAlertRequest) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Symbol != nil {
		fields["symbol"] = *req.Symbol
	}
	if req.Conditions != nil {
		conditions, err := entity.MarshalConditions(req.Conditions)
		if err != nil {
			return fmt.Errorf("failed to encode alert conditions: %w", err)
		}
		fields["conditions"] = conditions
	}
	if req.Severity != nil {
		fields["severity"] = *req.Severity
	}
	if req.Enabled != nil {
		fields["enabled"] = *req.Enabled
	}
	if req.NotifySound != nil {
		fields["notify_sound"] = *req.NotifySound
	}
	if req.NotifyEmail != nil {
		fields["notify_email"] = *req.NotifyEmail
	}
	if req.NotifyPush != nil {
		fields["notify_push"] = *req.NotifyPush
	}
	if len(fields) == 0 {
		return nil
	}
	return s.alertRepo.UpdateFields(ctx, id, fields)
}

func (s *alertEngineService) GetAlerts(ctx context.Context, param dto.GetAlertConfigurationsParam) ([]entity.AlertConfiguration, error) {
	return s.alertRepo.Get(ctx, param)
}

func (s *alertEngineService) GetTriggeredAlerts(ctx context.Context, param dto.GetTriggeredAlertsParam) ([]entity.TriggeredAlert, error) {
	return s.triggeredRepo.Get(ctx, param)
}

func (s *alertEngineService) AcknowledgeAlert(ctx context.Context, id uint) error {
	return s.triggeredRepo.SetStatus(ctx, id, entity.TriggeredStatusAcknowledged, s.now())
}

func (s *alertEngineService) DismissAlert(ctx context.Context, id uint) error {
	return s.triggeredRepo.SetStatus(ctx, id, entity.TriggeredStatusDismissed, s.now())
}

func (s *alertEngineService) EvaluateAlerts(ctx context.Context, positions []entity.TrackedPosition) error {
	enabled := true
	configs, err := s.alertRepo.Get(ctx, dto.GetAlertConfigurationsParam{Enabled: &enabled})
	if err != nil {
		return fmt.Errorf("failed to load alert configurations: %w", err)
	}
	if len(configs) == 0 || len(positions) == 0 {
		return nil
	}

	in := &evalInput{
		snap: newMarketSnapshot(s.marketRepo),
		now:  s.now(),
	}

	for i := range configs {
		config := &configs[i]
		evaluate, ok := s.evaluators[config.Type]
		if !ok {
			s.logger.DebugContext(ctx, "No evaluator registered for alert type, skipping",
				logger.StringField("type", string(config.Type)))
			continue
		}

		for j := range positions {
			position := &positions[j]
			if config.Symbol != nil && *config.Symbol != position.Symbol {
				continue
			}

			match, err := evaluate(ctx, in, config, position)
			if err != nil {
				s.logger.DebugContext(ctx, "Alert evaluation skipped",
					logger.ErrorField(err),
					logger.Field("alert_id", config.ID),
					logger.StringField("symbol", position.Symbol))
				continue
			}
			if match == nil {
				continue
			}
			if !s.shouldTrigger(ctx, config.ID, position.ID) {
				continue
			}
			if err := s.trigger(ctx, config, position, match, in.now); err != nil {
				s.logger.ErrorContext(ctx, "Failed to record triggered alert",
					logger.ErrorField(err),
					logger.Field("alert_id", config.ID),
					logger.Field("position_id", position.ID))
			}
		}
	}
	return nil
}

// shouldTrigger enforces the resend window: a configuration/position pair
// fires at most once per interval. Without redis it always fires.
func (s *alertEngineService) shouldTrigger(ctx context.Context, alertID, positionID uint) bool {
	if s.redisClient == nil || s.resendInterval <= 0 {
		return true
	}
	key := fmt.Sprintf(common.RedisKeyAlertTrigger, alertID, positionID)
	ok, err := s.redisClient.SetNX(ctx, key, 1, s.resendInterval).Result()
	if err != nil {
		s.logger.WarnContext(ctx, "Alert dedup check failed, triggering anyway",
			logger.ErrorField(err), logger.StringField("key", key))
		return true
	}
	return ok
}

func (s *alertEngineService) trigger(ctx context.Context, config *entity.AlertConfiguration, position *entity.TrackedPosition, match *alertMatch, now time.Time) error {
	currentValue := match.CurrentValue
	targetValue := match.TargetValue

	metadata, _ := json.Marshal(map[string]interface{}{
		"position_id": position.ID,
	})

	triggered := &entity.TriggeredAlert{
		AlertID:      config.ID,
		Type:         config.Type,
		Symbol:       position.Symbol,
		Title:        config.Name,
		Message:      match.Message,
		Severity:     escalateSeverity(config),
		Status:       entity.TriggeredStatusTriggered,
		TriggeredAt:  now,
		CurrentValue: &currentValue,
		TargetValue:  &targetValue,
		Metadata:     datatypes.JSON(metadata),
	}
	if err := s.triggeredRepo.Create(ctx, triggered); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Alert triggered",
		logger.Field("alert_id", config.ID),
		logger.Field("triggered_id", triggered.ID),
		logger.StringField("type", string(config.Type)),
		logger.StringField("symbol", position.Symbol),
		logger.StringField("severity", string(triggered.Severity)))

	if config.NotifyPush && s.notifier != nil {
		text := telegram.FormatTriggeredAlertForTelegram(
			triggered.Title, triggered.Message, triggered.Symbol,
			string(triggered.Severity), triggered.CurrentValue, triggered.TargetValue,
			triggered.TriggeredAt)
		if err := s.notifier.SendMessage(text); err != nil {
			s.logger.WarnContext(ctx, "Failed to send alert notification", logger.ErrorField(err))
		}
	}
	return nil
}

var severityRank = map[entity.AlertSeverity]int{
	entity.SeverityLow:      0,
	entity.SeverityMedium:   1,
	entity.SeverityHigh:     2,
	entity.SeverityCritical: 3,
}

// escalateSeverity lifts the configured severity to a floor dictated by the
// alert type: margin-call risk is always critical, the stop-loss family is at
// least high.
func escalateSeverity(config *entity.AlertConfiguration) entity.AlertSeverity {
	severity := config.Severity
	if severity == "" {
		severity = entity.SeverityMedium
	}
	floor := severity
	switch {
	case config.Type == entity.AlertTypeMarginCallRisk:
		floor = entity.SeverityCritical
	case config.Type.Category() == entity.CategoryStopLoss:
		floor = entity.SeverityHigh
	}
	if severityRank[floor] > severityRank[severity] {
		return floor
	}
	return severity
}

func (s *alertEngineService) SeedDefaults(ctx context.Context) error {
	count, err := s.alertRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count alert configurations: %w", err)
	}
	if count > 0 {
		return nil
	}

	gainConditions, err := entity.MarshalConditions([]entity.AlertCondition{
		{Field: "percentage_gain", Operator: ">=", Value: 5},
	})
	if err != nil {
		return err
	}

	defaults := []entity.AlertConfiguration{
		{
			Type:        entity.AlertTypePercentageGain,
			Name:        "Gain above 5%",
			Description: "Fires when any position is up 5% or more from entry.",
			Conditions:  gainConditions,
			Severity:    entity.SeverityMedium,
			Enabled:     false,
		},
		{
			Type:        entity.AlertTypeMarginCallRisk,
			Name:        "Margin call risk",
			Description: "Fires when a position's price falls to its margin-call level.",
			Severity:    entity.SeverityCritical,
			Enabled:     false,
		},
	}
	for i := range defaults {
		if err := s.alertRepo.Create(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("failed to seed alert configuration: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "Seeded default alert configurations", logger.IntField("count", len(defaults)))
	return nil
}
