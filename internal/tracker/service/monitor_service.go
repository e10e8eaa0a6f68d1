package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/config"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/pkg/common"
	"margin-tracker/pkg/logger"
	"margin-tracker/pkg/redis"

	"github.com/robfig/cron/v3"
)

// MonitorService owns the background loops: the quote-refresh poller, the
// alert-evaluation poller, and the daily expiration sweep.
type MonitorService interface {
	// Start launches the loops and blocks until ctx is cancelled.
	Start(ctx context.Context) error
}

// NewMonitorService wires the monitor. The sweep schedule is a standard cron
// expression; an invalid one fails Start.
func NewMonitorService(
	cfg *config.Config,
	positionRepo repository.PositionRepository,
	marketRepo repository.MarketDataRepository,
	dailyUpdateSvc DailyUpdateService,
	engine AlertEngineService,
	redisClient *redis.Client,
	log *logger.Logger,
) MonitorService {
	return &monitorService{
		cfg:            cfg,
		positionRepo:   positionRepo,
		marketRepo:     marketRepo,
		dailyUpdateSvc: dailyUpdateSvc,
		engine:         engine,
		redisClient:    redisClient,
		logger:         log,
		inFlight:       map[uint]bool{},
	}
}

type monitorService struct {
	cfg            *config.Config
	positionRepo   repository.PositionRepository
	marketRepo     repository.MarketDataRepository
	dailyUpdateSvc DailyUpdateService
	engine         AlertEngineService
	redisClient    *redis.Client
	logger         *logger.Logger

	mu       sync.Mutex
	inFlight map[uint]bool
}

func (s *monitorService) Start(ctx context.Context) error {
	sweepSchedule, err := cron.ParseStandard(s.cfg.Tracker.SweepSchedule)
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.cfg.Tracker.SweepSchedule, err)
	}

	s.logger.InfoContext(ctx, "Monitor started",
		logger.Field("refresh_interval", s.cfg.Tracker.RefreshInterval),
		logger.Field("evaluate_interval", s.cfg.Tracker.EvaluateInterval),
		logger.StringField("sweep_schedule", s.cfg.Tracker.SweepSchedule))

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.refreshLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		s.evaluateLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		s.sweepLoop(ctx, sweepSchedule)
	}()
	wg.Wait()

	s.logger.InfoContext(ctx, "Monitor stopped")
	return nil
}

func (s *monitorService) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Tracker.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshPass(ctx)
		}
	}
}

// refreshPass fetches a quote for every active position and recomputes its
// snapshot. At most one refresh per position is in flight; a slow fetch makes
// the position skip ticks instead of stacking goroutines.
func (s *monitorService) refreshPass(ctx context.Context) {
	positions, err := s.positionRepo.Get(ctx, dto.GetPositionsParam{
		Statuses: []entity.PositionStatus{entity.PositionStatusActive},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load active positions", logger.ErrorField(err))
		return
	}

	for i := range positions {
		position := positions[i]
		if !s.acquire(position.ID) {
			continue
		}
		go func() {
			defer s.release(position.ID)
			s.refreshOne(ctx, &position)
		}()
	}
}

func (s *monitorService) refreshOne(ctx context.Context, position *entity.TrackedPosition) {
	quote, err := s.marketRepo.GetQuote(ctx, position.Symbol)
	if err != nil {
		// No retry: the next tick tries again.
		s.logger.WarnContext(ctx, "Quote fetch failed, skipping refresh",
			logger.ErrorField(err), logger.StringField("symbol", position.Symbol))
		return
	}

	if err := s.dailyUpdateSvc.Refresh(ctx, position, quote); err != nil {
		s.logger.ErrorContext(ctx, "Position refresh failed",
			logger.ErrorField(err), logger.Field("position_id", position.ID))
		return
	}

	s.storeLastPrice(ctx, quote)
}

func (s *monitorService) storeLastPrice(ctx context.Context, quote *dto.Quote) {
	if s.redisClient == nil {
		return
	}
	key := fmt.Sprintf(common.RedisKeyLastPrice, quote.Symbol)
	pipe := s.redisClient.Pipeline()
	pipe.HSet(ctx, key, "price", quote.Price, "timestamp", time.Now().Unix())
	if ttl := s.cfg.Tracker.LastPriceCacheTTL; ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.WarnContext(ctx, "Failed to store last price",
			logger.ErrorField(err), logger.StringField("symbol", quote.Symbol))
	}
}

func (s *monitorService) evaluateLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Tracker.EvaluateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			positions, err := s.positionRepo.Get(ctx, dto.GetPositionsParam{
				Statuses: []entity.PositionStatus{entity.PositionStatusActive},
			})
			if err != nil {
				s.logger.ErrorContext(ctx, "Failed to load positions for evaluation", logger.ErrorField(err))
				continue
			}
			if err := s.engine.EvaluateAlerts(ctx, positions); err != nil {
				s.logger.ErrorContext(ctx, "Alert evaluation pass failed", logger.ErrorField(err))
			}
		}
	}
}

// sweepLoop expires positions on the configured cron schedule even when no
// fresh quote ever arrives for them.
func (s *monitorService) sweepLoop(ctx context.Context, schedule cron.Schedule) {
	for {
		next := schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := s.dailyUpdateSvc.ExpireSweep(ctx); err != nil {
				s.logger.ErrorContext(ctx, "Expiration sweep failed", logger.ErrorField(err))
			}
		}
	}
}

func (s *monitorService) acquire(positionID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[positionID] {
		return false
	}
	s.inFlight[positionID] = true
	return true
}

func (s *monitorService) release(positionID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, positionID)
}
