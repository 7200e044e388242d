// Package service provides the business logic layer (use cases).
// TrackerService orchestrates the tracker store and the pure engines:
// bill status evaluation, the pay calendar, and savings distribution.
// Every method takes the evaluation clock ("today"/"now") explicitly so
// the underlying engines stay deterministic and testable.
package service

import (
	"context"

	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/engine"
	"github.com/moneymap/moneymap-go/internal/infra/observability"
	"github.com/moneymap/moneymap-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var trackerTracer = otel.Tracer("service/tracker")

// TrackerService orchestrates all tracker operations via the store.
type TrackerService struct {
	store       port.TrackerStore
	schedules   port.Cache[[]domain.PaydayEntry]
	horizonDays int
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// NewTrackerService creates a new tracker service. horizonDays is the
// default projection window for pay schedules when a request names none.
func NewTrackerService(store port.TrackerStore, schedules port.Cache[[]domain.PaydayEntry], horizonDays int, metrics *observability.Metrics, logger *zap.Logger) *TrackerService {
	if horizonDays <= 0 {
		horizonDays = engine.DefaultHorizonDays
	}
	return &TrackerService{store: store, schedules: schedules, horizonDays: horizonDays, metrics: metrics, logger: logger}
}

// Healthy reports whether the store is reachable.
func (s *TrackerService) Healthy(ctx context.Context) bool {
	_, err := s.store.ListBills(ctx)
	return err == nil
}
