package service

import (
	"context"
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/engine"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Savings Goals
// ============================================================

func validateGoalRequest(req *domain.GoalRequest) error {
	if req.TargetAmount != nil && *req.TargetAmount < 0 {
		return &domain.ErrInvalidAmount{Field: "target_amount", Amount: *req.TargetAmount}
	}
	if req.Weight < 0 {
		return &domain.ErrValidation{Field: "weight", Message: "must be positive"}
	}
	if req.AmountSaved != nil && *req.AmountSaved < 0 {
		return &domain.ErrInvalidAmount{Field: "amount_saved", Amount: *req.AmountSaved}
	}
	return nil
}

// CreateGoal creates a savings goal. When a pay calendar is configured and
// the goal has both a target and a deadline, the per-paycheck pace is
// seeded from the number of paydays remaining before the deadline.
func (s *TrackerService) CreateGoal(ctx context.Context, req *domain.GoalRequest, today time.Time) (*domain.Goal, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.CreateGoal")
	defer span.End()

	if err := validateGoalRequest(req); err != nil {
		return nil, err
	}

	goal := &domain.Goal{
		ID:        uuid.New(),
		Name:      req.Name,
		Weight:    req.Weight,
		CreatedAt: time.Now(),
	}
	if goal.Weight <= 0 {
		goal.Weight = 1.0
	}
	goal.TargetAmount = req.TargetAmount
	goal.Deadline = req.Deadline
	if req.AmountSaved != nil {
		goal.AmountSaved = *req.AmountSaved
	}

	s.seedPaycheckPace(ctx, goal, today)

	if err := s.store.CreateGoal(ctx, goal); err != nil {
		s.logger.Error("failed to create goal", zap.String("goal_id", goal.ID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("goal created",
		zap.String("goal_id", goal.ID.String()),
		zap.String("name", goal.Name),
		zap.Float64("weight", goal.Weight),
	)

	return goal, nil
}

// GetGoal returns a goal by id.
func (s *TrackerService) GetGoal(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.GetGoal")
	defer span.End()
	span.SetAttributes(attribute.String("goal.id", id.String()))

	return s.store.GetGoal(ctx, id)
}

// ListGoals returns all goals.
func (s *TrackerService) ListGoals(ctx context.Context) ([]*domain.Goal, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.ListGoals")
	defer span.End()

	return s.store.ListGoals(ctx)
}

// UpdateGoal replaces a goal's editable fields.
func (s *TrackerService) UpdateGoal(ctx context.Context, id uuid.UUID, req *domain.GoalRequest, today time.Time) (*domain.Goal, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.UpdateGoal")
	defer span.End()
	span.SetAttributes(attribute.String("goal.id", id.String()))

	if err := validateGoalRequest(req); err != nil {
		return nil, err
	}

	goal, err := s.store.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	goal.Name = req.Name
	goal.TargetAmount = req.TargetAmount
	goal.Deadline = req.Deadline
	if req.Weight > 0 {
		goal.Weight = req.Weight
	}
	if req.AmountSaved != nil {
		goal.AmountSaved = *req.AmountSaved
	}
	s.seedPaycheckPace(ctx, goal, today)

	if err := s.store.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal updated", zap.String("goal_id", id.String()))
	return goal, nil
}

// DeleteGoal removes a goal.
func (s *TrackerService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.DeleteGoal")
	defer span.End()

	if err := s.store.DeleteGoal(ctx, id); err != nil {
		return err
	}
	s.logger.Info("goal deleted", zap.String("goal_id", id.String()))
	return nil
}

// seedPaycheckPace fills in AmountPerPaycheck from the configured pay
// calendar. Missing config or deadline leaves the pace unset.
func (s *TrackerService) seedPaycheckPace(ctx context.Context, goal *domain.Goal, today time.Time) {
	if goal.TargetAmount == nil || goal.Deadline == nil {
		return
	}
	cfg, err := s.store.GetPaydayConfig(ctx)
	if err != nil || cfg.NextPayday == nil {
		return
	}
	seed := engine.AdvancePastToday(engine.StartOfDay(*cfg.NextPayday), engine.StartOfDay(today))
	if paydays := engine.NumberOfPaydaysUntil(seed, *goal.Deadline); paydays > 0 {
		pace := *goal.TargetAmount / float64(paydays)
		goal.AmountPerPaycheck = &pace
	}
}
