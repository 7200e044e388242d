package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/engine"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Pay Calendar
// ============================================================

// SetPaydayConfig stores the pay calendar seed and settings. All cached
// schedules derive from the seed, so the schedule cache is purged.
func (s *TrackerService) SetPaydayConfig(ctx context.Context, req *domain.PaydayConfigRequest) (*domain.PaydayConfig, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.SetPaydayConfig")
	defer span.End()

	if req.NextPayday == nil {
		return nil, &domain.ErrValidation{Field: "next_payday", Message: "required"}
	}
	if req.Strategy != "" && !req.Strategy.Valid() {
		return nil, &domain.ErrValidation{Field: "strategy", Message: "unknown strategy '" + string(req.Strategy) + "'"}
	}
	if req.AmountPerPayday != nil && *req.AmountPerPayday < 0 {
		return nil, &domain.ErrInvalidAmount{Field: "amount_per_payday", Amount: *req.AmountPerPayday}
	}
	if req.SavingsPerPaycheck != nil && *req.SavingsPerPaycheck < 0 {
		return nil, &domain.ErrInvalidAmount{Field: "savings_per_paycheck", Amount: *req.SavingsPerPaycheck}
	}

	cfg := &domain.PaydayConfig{
		NextPayday:         req.NextPayday,
		AmountPerPayday:    req.AmountPerPayday,
		SavingsPerPaycheck: req.SavingsPerPaycheck,
		Strategy:           req.Strategy,
	}
	if err := s.store.SavePaydayConfig(ctx, cfg); err != nil {
		return nil, err
	}

	s.purgeScheduleCache()

	s.logger.Info("payday config saved",
		zap.Time("next_payday", *cfg.NextPayday),
		zap.String("strategy", string(cfg.StrategyValue())),
	)
	return cfg, nil
}

// GetPaydayConfig returns the stored config with a stale seed self-healed:
// a next-payday in the past is advanced in 14-day steps until it reaches
// today or later, and the healed value is written back.
func (s *TrackerService) GetPaydayConfig(ctx context.Context, today time.Time) (*domain.PaydayConfig, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.GetPaydayConfig")
	defer span.End()

	cfg, err := s.store.GetPaydayConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.NextPayday == nil {
		return cfg, nil
	}

	healed := engine.AdvancePastToday(engine.StartOfDay(*cfg.NextPayday), engine.StartOfDay(today))
	if !healed.Equal(engine.StartOfDay(*cfg.NextPayday)) {
		cfg.NextPayday = &healed
		if err := s.store.SavePaydayConfig(ctx, cfg); err != nil {
			s.logger.Warn("failed to persist healed payday seed", zap.Error(err))
		}
		s.purgeScheduleCache()
		s.logger.Info("stale payday seed advanced", zap.Time("next_payday", healed))
	}
	return cfg, nil
}

// PaydaySchedule projects the pay calendar from the configured seed out to
// horizonDays, flagging bonus (third-in-month) paydays. A non-positive
// horizonDays falls back to the service's configured default window.
// Schedules are pure functions of (seed, horizon) and are memoized.
func (s *TrackerService) PaydaySchedule(ctx context.Context, horizonDays int, today time.Time) (*domain.PaydayScheduleResponse, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.PaydaySchedule")
	defer span.End()
	span.SetAttributes(attribute.Int("horizon_days", horizonDays))

	if horizonDays <= 0 {
		horizonDays = s.horizonDays
	}

	cfg, err := s.GetPaydayConfig(ctx, today)
	if err != nil {
		return nil, err
	}
	if cfg.NextPayday == nil {
		return nil, &domain.ErrValidation{Field: "next_payday", Message: "no payday configured"}
	}
	seed := engine.StartOfDay(*cfg.NextPayday)

	key := scheduleCacheKey(seed, horizonDays)
	if cached, ok := s.schedules.Get(key); ok {
		s.metrics.IncrCacheHit("payday_schedule")
		return &domain.PaydayScheduleResponse{Seed: seed, HorizonDays: horizonDays, Paydays: cached}, nil
	}
	s.metrics.IncrCacheMiss("payday_schedule")

	dates := engine.UpcomingPaydays(seed, horizonDays)
	entries := make([]domain.PaydayEntry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, domain.PaydayEntry{
			Date:  d,
			Bonus: engine.IsBonusPayday(d, dates),
		})
	}
	s.schedules.Set(key, entries)

	return &domain.PaydayScheduleResponse{Seed: seed, HorizonDays: horizonDays, Paydays: entries}, nil
}

// NextPayday returns the healed next payday and days until it.
func (s *TrackerService) NextPayday(ctx context.Context, today time.Time) (*domain.NextPaydayResponse, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.NextPayday")
	defer span.End()

	cfg, err := s.GetPaydayConfig(ctx, today)
	if err != nil {
		return nil, err
	}
	if cfg.NextPayday == nil {
		return nil, &domain.ErrValidation{Field: "next_payday", Message: "no payday configured"}
	}

	next := engine.StartOfDay(*cfg.NextPayday)
	return &domain.NextPaydayResponse{
		NextPayday: next,
		DaysUntil:  engine.DaysUntilNextPayday(next, today),
	}, nil
}

func scheduleCacheKey(seed time.Time, horizonDays int) string {
	return fmt.Sprintf("schedule:%s:%d", seed.Format("2006-01-02"), horizonDays)
}

// purgeScheduleCache drops every memoized schedule. The cache interface is
// key-based, so known horizons are cleared individually.
func (s *TrackerService) purgeScheduleCache() {
	type purger interface{ Purge() }
	if p, ok := s.schedules.(purger); ok {
		p.Purge()
	}
}
