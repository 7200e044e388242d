// Package memstore is the in-memory TrackerStore adapter. Records are
// copied on the way in and out so callers can mutate their copies freely;
// the map under the mutex stays the single source of truth.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/port"
)

// Store is a thread-safe in-memory TrackerStore.
type Store struct {
	mu     sync.RWMutex
	bills  map[uuid.UUID]*domain.Bill
	goals  map[uuid.UUID]*domain.Goal
	payday *domain.PaydayConfig
}

var _ port.TrackerStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		bills: make(map[uuid.UUID]*domain.Bill),
		goals: make(map[uuid.UUID]*domain.Goal),
	}
}

// ============================================================
// Bills
// ============================================================

func (s *Store) CreateBill(_ context.Context, bill *domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bills[bill.ID] = copyBill(bill)
	return nil
}

func (s *Store) ListBills(_ context.Context) ([]*domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Bill, 0, len(s.bills))
	for _, b := range s.bills {
		out = append(out, copyBill(b))
	}
	return out, nil
}

func (s *Store) GetBill(_ context.Context, id uuid.UUID) (*domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bills[id]
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "bill", ID: id.String()}
	}
	return copyBill(b), nil
}

func (s *Store) UpdateBill(_ context.Context, bill *domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bills[bill.ID]; !ok {
		return &domain.ErrNotFound{Resource: "bill", ID: bill.ID.String()}
	}
	s.bills[bill.ID] = copyBill(bill)
	return nil
}

func (s *Store) DeleteBill(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bills[id]; !ok {
		return &domain.ErrNotFound{Resource: "bill", ID: id.String()}
	}
	delete(s.bills, id)
	return nil
}

// ============================================================
// Goals
// ============================================================

func (s *Store) CreateGoal(_ context.Context, goal *domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals[goal.ID] = copyGoal(goal)
	return nil
}

func (s *Store) ListGoals(_ context.Context) ([]*domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		out = append(out, copyGoal(g))
	}
	return out, nil
}

func (s *Store) GetGoal(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.goals[id]
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "goal", ID: id.String()}
	}
	return copyGoal(g), nil
}

func (s *Store) UpdateGoal(_ context.Context, goal *domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[goal.ID]; !ok {
		return &domain.ErrNotFound{Resource: "goal", ID: goal.ID.String()}
	}
	s.goals[goal.ID] = copyGoal(goal)
	return nil
}

func (s *Store) DeleteGoal(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[id]; !ok {
		return &domain.ErrNotFound{Resource: "goal", ID: id.String()}
	}
	delete(s.goals, id)
	return nil
}

// ============================================================
// Payday configuration
// ============================================================

func (s *Store) GetPaydayConfig(_ context.Context) (*domain.PaydayConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.payday == nil {
		return nil, &domain.ErrNotFound{Resource: "payday config", ID: "singleton"}
	}
	return copyPaydayConfig(s.payday), nil
}

func (s *Store) SavePaydayConfig(_ context.Context, cfg *domain.PaydayConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payday = copyPaydayConfig(cfg)
	return nil
}

// ============================================================
// Copy helpers
// ============================================================

func copyBill(b *domain.Bill) *domain.Bill {
	out := *b
	out.Amount = copyFloat(b.Amount)
	out.DueDate = copyTimePtr(b.DueDate)
	out.DatePaid = copyTimePtr(b.DatePaid)
	if b.CreditCard != nil {
		cc := *b.CreditCard
		out.CreditCard = &cc
	}
	if b.Status != nil {
		st := *b.Status
		out.Status = &st
	}
	return &out
}

func copyGoal(g *domain.Goal) *domain.Goal {
	out := *g
	out.TargetAmount = copyFloat(g.TargetAmount)
	out.Deadline = copyTimePtr(g.Deadline)
	out.AmountPerPaycheck = copyFloat(g.AmountPerPaycheck)
	return &out
}

func copyPaydayConfig(c *domain.PaydayConfig) *domain.PaydayConfig {
	out := *c
	out.NextPayday = copyTimePtr(c.NextPayday)
	out.AmountPerPayday = copyFloat(c.AmountPerPayday)
	out.SavingsPerPaycheck = copyFloat(c.SavingsPerPaycheck)
	return &out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}

func copyTimePtr(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	t := *v
	return &t
}
