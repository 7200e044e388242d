package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/infra/memstore"
)

func TestStore_BillCRUD(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	amount := 60.0
	bill := &domain.Bill{ID: uuid.New(), Name: "internet", Amount: &amount}
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	got, err := store.GetBill(ctx, bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if got.Name != "internet" {
		t.Errorf("name = %q", got.Name)
	}

	got.Name = "fiber"
	if err := store.UpdateBill(ctx, got); err != nil {
		t.Fatalf("UpdateBill: %v", err)
	}
	again, err := store.GetBill(ctx, bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if again.Name != "fiber" {
		t.Errorf("updated name = %q", again.Name)
	}

	if err := store.DeleteBill(ctx, bill.ID); err != nil {
		t.Fatalf("DeleteBill: %v", err)
	}
	_, err = store.GetBill(ctx, bill.ID)
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want *domain.ErrNotFound", err)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	amount := 60.0
	bill := &domain.Bill{ID: uuid.New(), Name: "internet", Amount: &amount}
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	got, err := store.GetBill(ctx, bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	got.Name = "mutated"
	*got.Amount = 999

	fresh, err := store.GetBill(ctx, bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if fresh.Name != "internet" || *fresh.Amount != 60 {
		t.Error("mutating a returned record must not affect the store")
	}
}

func TestStore_UpdateMissing(t *testing.T) {
	store := memstore.New()

	err := store.UpdateBill(context.Background(), &domain.Bill{ID: uuid.New()})
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want *domain.ErrNotFound", err)
	}

	err = store.UpdateGoal(context.Background(), &domain.Goal{ID: uuid.New()})
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want *domain.ErrNotFound", err)
	}
}

func TestStore_GoalCRUD(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	target := 1000.0
	goal := &domain.Goal{ID: uuid.New(), Name: "vacation", TargetAmount: &target}
	if err := store.CreateGoal(ctx, goal); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	goals, err := store.ListGoals(ctx)
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("len = %d, want 1", len(goals))
	}

	if err := store.DeleteGoal(ctx, goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	_, err = store.GetGoal(ctx, goal.ID)
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want *domain.ErrNotFound", err)
	}
}

func TestStore_PaydayConfig(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	_, err := store.GetPaydayConfig(ctx)
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want *domain.ErrNotFound before config is set", err)
	}

	next := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	cfg := &domain.PaydayConfig{NextPayday: &next, Strategy: domain.StrategyAllItems}
	if err := store.SavePaydayConfig(ctx, cfg); err != nil {
		t.Fatalf("SavePaydayConfig: %v", err)
	}

	got, err := store.GetPaydayConfig(ctx)
	if err != nil {
		t.Fatalf("GetPaydayConfig: %v", err)
	}
	if !got.NextPayday.Equal(next) || got.Strategy != domain.StrategyAllItems {
		t.Errorf("got %+v", got)
	}

	// Stored config is isolated from later mutations of the input.
	*cfg.NextPayday = next.AddDate(0, 1, 0)
	again, err := store.GetPaydayConfig(ctx)
	if err != nil {
		t.Fatalf("GetPaydayConfig: %v", err)
	}
	if !again.NextPayday.Equal(next) {
		t.Error("stored config must be a copy of the input")
	}
}
