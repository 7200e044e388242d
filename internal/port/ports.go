// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/moneymap/moneymap-go/internal/domain"
)

// TrackerStore defines all data operations for the tracker. The engines
// never touch it directly; the service layer reads records, runs the
// engines, and writes mutated records (including the refreshed cached
// status) back through this interface.
type TrackerStore interface {
	// Bills
	CreateBill(ctx context.Context, bill *domain.Bill) error
	ListBills(ctx context.Context) ([]*domain.Bill, error)
	GetBill(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	UpdateBill(ctx context.Context, bill *domain.Bill) error
	DeleteBill(ctx context.Context, id uuid.UUID) error

	// Goals
	CreateGoal(ctx context.Context, goal *domain.Goal) error
	ListGoals(ctx context.Context) ([]*domain.Goal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goal *domain.Goal) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error

	// Payday configuration
	GetPaydayConfig(ctx context.Context) (*domain.PaydayConfig, error)
	SavePaydayConfig(ctx context.Context, cfg *domain.PaydayConfig) error
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
