package service

import (
	"context"
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/engine"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Savings Distribution
// ============================================================

// DistributeSavings splits total across underfunded goals using the
// urgency-weighted allocator. With apply set, allocations are added to
// each goal's amountSaved and persisted; the allocation phase completes
// over the whole batch before any goal is written (shares depend on the
// batch aggregate).
func (s *TrackerService) DistributeSavings(ctx context.Context, total float64, apply bool, today time.Time) (*domain.DistributeResponse, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.DistributeSavings")
	defer span.End()
	span.SetAttributes(
		attribute.Float64("total", total),
		attribute.Bool("apply", apply),
	)

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("distribute_savings", time.Since(start))
	}()

	goals, err := s.store.ListGoals(ctx)
	if err != nil {
		return nil, err
	}

	allocation, err := engine.Distribute(goals, total, today)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrDistribution()

	if apply {
		for _, goal := range goals {
			amount, ok := allocation[goal.ID]
			if !ok || amount == 0 {
				continue
			}
			goal.AmountSaved += amount
			if err := s.store.UpdateGoal(ctx, goal); err != nil {
				return nil, err
			}
		}
		s.logger.Info("savings distribution applied",
			zap.Float64("total", total),
			zap.Int("goals_funded", len(allocation)),
		)
	}

	resp := &domain.DistributeResponse{
		Allocations: make(map[string]float64, len(allocation)),
		Total:       total,
		Applied:     apply,
	}
	for id, amount := range allocation {
		resp.Allocations[id.String()] = amount
	}
	return resp, nil
}
