package service

import (
	"context"
	"sort"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/pkg/logger"
	"margin-tracker/pkg/utils"

	"go.uber.org/zap"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

// stubPositionRepo is an in-memory PositionRepository.
type stubPositionRepo struct {
	nextID    uint
	positions map[uint]*entity.TrackedPosition
}

func newStubPositionRepo() *stubPositionRepo {
	return &stubPositionRepo{positions: map[uint]*entity.TrackedPosition{}}
}

func (r *stubPositionRepo) Create(_ context.Context, position *entity.TrackedPosition) error {
	r.nextID++
	position.ID = r.nextID
	clone := *position
	r.positions[position.ID] = &clone
	return nil
}

func (r *stubPositionRepo) GetByID(_ context.Context, id uint) (*entity.TrackedPosition, error) {
	position, ok := r.positions[id]
	if !ok {
		return nil, repository.ErrPositionNotFound
	}
	clone := *position
	return &clone, nil
}

func (r *stubPositionRepo) Get(_ context.Context, param dto.GetPositionsParam) ([]entity.TrackedPosition, error) {
	var out []entity.TrackedPosition
	for _, position := range r.positions {
		if len(param.Statuses) > 0 && !containsStatus(param.Statuses, position.Status) {
			continue
		}
		if len(param.Symbols) > 0 && !containsString(param.Symbols, position.Symbol) {
			continue
		}
		out = append(out, *position)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPositionRepo) Save(_ context.Context, position *entity.TrackedPosition) error {
	clone := *position
	r.positions[position.ID] = &clone
	return nil
}

func (r *stubPositionRepo) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) error {
	position, ok := r.positions[id]
	if !ok {
		return repository.ErrPositionNotFound
	}
	for key, value := range fields {
		switch key {
		case "status":
			position.Status = value.(entity.PositionStatus)
		case "expiration_date":
			position.ExpirationDate = value.(time.Time)
		case "duration_days":
			position.DurationDays = value.(int)
		case "name":
			position.Name = value.(string)
		case "exit_price":
			position.ExitPrice = value.(float64)
		case "stop_loss_price":
			position.StopLossPrice = value.(float64)
		}
	}
	return nil
}

func (r *stubPositionRepo) Delete(_ context.Context, id uint) error {
	delete(r.positions, id)
	return nil
}

func containsStatus(statuses []entity.PositionStatus, s entity.PositionStatus) bool {
	for _, status := range statuses {
		if status == s {
			return true
		}
	}
	return false
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// stubDailyUpdateRepo keeps updates per position, enforcing the
// one-row-per-day rule the way the unique index does.
type stubDailyUpdateRepo struct {
	updates map[uint][]entity.DailyUpdate
}

func newStubDailyUpdateRepo() *stubDailyUpdateRepo {
	return &stubDailyUpdateRepo{updates: map[uint][]entity.DailyUpdate{}}
}

func (r *stubDailyUpdateRepo) Upsert(_ context.Context, update *entity.DailyUpdate) error {
	day := utils.TruncateToDay(update.Date)
	rows := r.updates[update.PositionID]
	for i := range rows {
		if utils.SameDay(rows[i].Date, day) {
			rows[i] = *update
			rows[i].Date = day
			return nil
		}
	}
	clone := *update
	clone.Date = day
	r.updates[update.PositionID] = append(rows, clone)
	return nil
}

func (r *stubDailyUpdateRepo) ListByPosition(_ context.Context, positionID uint) ([]entity.DailyUpdate, error) {
	rows := append([]entity.DailyUpdate(nil), r.updates[positionID]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

// stubRiskAlertRepo is an in-memory RiskAlertRepository.
type stubRiskAlertRepo struct {
	nextID uint
	alerts []entity.RiskAlert
}

func (r *stubRiskAlertRepo) CreateBatch(_ context.Context, alerts []entity.RiskAlert) error {
	for _, alert := range alerts {
		r.nextID++
		alert.ID = r.nextID
		r.alerts = append(r.alerts, alert)
	}
	return nil
}

func (r *stubRiskAlertRepo) GetByID(_ context.Context, id uint) (*entity.RiskAlert, error) {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			clone := r.alerts[i]
			return &clone, nil
		}
	}
	return nil, repository.ErrRiskAlertNotFound
}

func (r *stubRiskAlertRepo) Acknowledge(_ context.Context, id uint) error {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].Acknowledged = true
			return nil
		}
	}
	return repository.ErrRiskAlertNotFound
}

// stubAlertConfigRepo is an in-memory AlertConfigurationRepository.
type stubAlertConfigRepo struct {
	nextID  uint
	configs map[uint]*entity.AlertConfiguration
}

func newStubAlertConfigRepo() *stubAlertConfigRepo {
	return &stubAlertConfigRepo{configs: map[uint]*entity.AlertConfiguration{}}
}

func (r *stubAlertConfigRepo) Create(_ context.Context, config *entity.AlertConfiguration) error {
	r.nextID++
	config.ID = r.nextID
	clone := *config
	r.configs[config.ID] = &clone
	return nil
}

func (r *stubAlertConfigRepo) GetByID(_ context.Context, id uint) (*entity.AlertConfiguration, error) {
	config, ok := r.configs[id]
	if !ok {
		return nil, repository.ErrAlertConfigurationNotFound
	}
	clone := *config
	return &clone, nil
}

func (r *stubAlertConfigRepo) Get(_ context.Context, param dto.GetAlertConfigurationsParam) ([]entity.AlertConfiguration, error) {
	var out []entity.AlertConfiguration
	for _, config := range r.configs {
		if param.Enabled != nil && config.Enabled != *param.Enabled {
			continue
		}
		if param.Symbol != "" && (config.Symbol == nil || *config.Symbol != param.Symbol) {
			continue
		}
		out = append(out, *config)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAlertConfigRepo) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) error {
	config, ok := r.configs[id]
	if !ok {
		return repository.ErrAlertConfigurationNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			config.Name = value.(string)
		case "enabled":
			config.Enabled = value.(bool)
		case "severity":
			config.Severity = value.(entity.AlertSeverity)
		}
	}
	return nil
}

func (r *stubAlertConfigRepo) Delete(_ context.Context, id uint) error {
	delete(r.configs, id)
	return nil
}

func (r *stubAlertConfigRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.configs)), nil
}

// stubTriggeredRepo is an in-memory TriggeredAlertRepository.
type stubTriggeredRepo struct {
	nextID uint
	alerts []entity.TriggeredAlert
}

func (r *stubTriggeredRepo) Create(_ context.Context, alert *entity.TriggeredAlert) error {
	r.nextID++
	alert.ID = r.nextID
	r.alerts = append(r.alerts, *alert)
	return nil
}

func (r *stubTriggeredRepo) GetByID(_ context.Context, id uint) (*entity.TriggeredAlert, error) {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			clone := r.alerts[i]
			return &clone, nil
		}
	}
	return nil, repository.ErrTriggeredAlertNotFound
}

func (r *stubTriggeredRepo) Get(_ context.Context, param dto.GetTriggeredAlertsParam) ([]entity.TriggeredAlert, error) {
	var out []entity.TriggeredAlert
	for _, alert := range r.alerts {
		if len(param.Statuses) > 0 && !containsTriggeredStatus(param.Statuses, alert.Status) {
			continue
		}
		if param.Symbol != "" && alert.Symbol != param.Symbol {
			continue
		}
		out = append(out, alert)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TriggeredAt.After(out[j].TriggeredAt) })
	return out, nil
}

func (r *stubTriggeredRepo) SetStatus(_ context.Context, id uint, status entity.TriggeredAlertStatus, at time.Time) error {
	for i := range r.alerts {
		if r.alerts[i].ID != id {
			continue
		}
		r.alerts[i].Status = status
		switch status {
		case entity.TriggeredStatusAcknowledged:
			r.alerts[i].AcknowledgedAt = &at
		case entity.TriggeredStatusDismissed:
			r.alerts[i].DismissedAt = &at
		}
		return nil
	}
	return repository.ErrTriggeredAlertNotFound
}

func containsTriggeredStatus(statuses []entity.TriggeredAlertStatus, s entity.TriggeredAlertStatus) bool {
	for _, status := range statuses {
		if status == s {
			return true
		}
	}
	return false
}

// stubMarketRepo serves canned quotes and history series.
type stubMarketRepo struct {
	quotes    map[string]*dto.Quote
	histories map[string][]dto.OHLCV
	quoteErr  error
}

func newStubMarketRepo() *stubMarketRepo {
	return &stubMarketRepo{
		quotes:    map[string]*dto.Quote{},
		histories: map[string][]dto.OHLCV{},
	}
}

func (r *stubMarketRepo) GetQuote(_ context.Context, symbol string) (*dto.Quote, error) {
	if r.quoteErr != nil {
		return nil, r.quoteErr
	}
	quote, ok := r.quotes[symbol]
	if !ok {
		return nil, repository.ErrSymbolNotFound
	}
	clone := *quote
	return &clone, nil
}

func (r *stubMarketRepo) Search(_ context.Context, _ string) ([]dto.SearchResult, error) {
	return []dto.SearchResult{}, nil
}

func (r *stubMarketRepo) GetHistory(_ context.Context, symbol string, _ dto.HistoryPeriod) ([]dto.OHLCV, error) {
	series, ok := r.histories[symbol]
	if !ok {
		return nil, repository.ErrSymbolNotFound
	}
	return series, nil
}

// stubNotifier records sent messages.
type stubNotifier struct {
	sent []string
}

func (n *stubNotifier) SendMessage(text string) error {
	n.sent = append(n.sent, text)
	return nil
}
