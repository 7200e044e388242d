package service

import (
	"context"
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/engine"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ============================================================
// Bills
// ============================================================

func validateBillRequest(req *domain.BillRequest) error {
	if req.Category != "" && !req.Category.Valid() {
		return &domain.ErrValidation{Field: "category", Message: "unknown category '" + string(req.Category) + "'"}
	}
	if req.RecurrenceUnit != "" && !req.RecurrenceUnit.Valid() {
		return &domain.ErrValidation{Field: "recurrence_unit", Message: "unknown unit '" + string(req.RecurrenceUnit) + "'"}
	}
	if req.RecurrenceUnit != "" && req.RecurrenceInterval < 1 {
		return &domain.ErrInvalidRecurrence{Interval: req.RecurrenceInterval}
	}
	if req.CreditCard != nil && req.CreditCard.CreditLimit < 0 {
		return &domain.ErrInvalidAmount{Field: "credit_limit", Amount: req.CreditCard.CreditLimit}
	}
	return nil
}

func applyBillRequest(bill *domain.Bill, req *domain.BillRequest) {
	bill.Name = req.Name
	bill.Amount = req.Amount
	bill.DueDate = req.DueDate
	bill.Category = req.Category
	bill.RecurrenceInterval = req.RecurrenceInterval
	bill.RecurrenceUnit = req.RecurrenceUnit
	bill.CreditCard = req.CreditCard
}

// CreateBill creates a bill and derives its initial status as of today.
func (s *TrackerService) CreateBill(ctx context.Context, req *domain.BillRequest, today time.Time) (*domain.Bill, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.CreateBill")
	defer span.End()

	if err := validateBillRequest(req); err != nil {
		return nil, err
	}

	bill := &domain.Bill{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
	applyBillRequest(bill, req)

	status := s.evaluate(bill, today)

	if err := s.store.CreateBill(ctx, bill); err != nil {
		s.logger.Error("failed to create bill", zap.String("bill_id", bill.ID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("bill created",
		zap.String("bill_id", bill.ID.String()),
		zap.String("name", bill.Name),
		zap.String("category", string(bill.Category)),
		zap.String("status", string(status.State)),
	)

	return bill, nil
}

// GetBill returns a bill with its status freshly evaluated as of today.
// The refreshed record is written back so the cached status stays in sync.
func (s *TrackerService) GetBill(ctx context.Context, id uuid.UUID, today time.Time) (*domain.Bill, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.GetBill")
	defer span.End()
	span.SetAttributes(attribute.String("bill.id", id.String()))

	bill, err := s.store.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	s.evaluate(bill, today)
	if err := s.store.UpdateBill(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// ListBills evaluates every bill as of today and returns them. Bills with
// no required ordering between them are evaluated concurrently; each
// record has a single writer.
func (s *TrackerService) ListBills(ctx context.Context, today time.Time) ([]*domain.Bill, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.ListBills")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("list_bills", time.Since(start))
	}()

	bills, err := s.store.ListBills(ctx)
	if err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, bill := range bills {
		bill := bill
		g.Go(func() error {
			s.evaluate(bill, today)
			return s.store.UpdateBill(gCtx, bill)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bills, nil
}

// UpdateBill replaces a bill's editable fields and re-derives its status.
func (s *TrackerService) UpdateBill(ctx context.Context, id uuid.UUID, req *domain.BillRequest, today time.Time) (*domain.Bill, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.UpdateBill")
	defer span.End()
	span.SetAttributes(attribute.String("bill.id", id.String()))

	if err := validateBillRequest(req); err != nil {
		return nil, err
	}

	bill, err := s.store.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	applyBillRequest(bill, req)
	s.evaluate(bill, today)

	if err := s.store.UpdateBill(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.Info("bill updated", zap.String("bill_id", id.String()))
	return bill, nil
}

// DeleteBill removes a bill.
func (s *TrackerService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.DeleteBill")
	defer span.End()

	if err := s.store.DeleteBill(ctx, id); err != nil {
		return err
	}
	s.logger.Info("bill deleted", zap.String("bill_id", id.String()))
	return nil
}

// PayBill records a payment against a bill at time now. Credit card
// balances are reduced by the amount (overpayment leaves a credit); other
// categories just record the payment date. The bill is re-evaluated in
// the same call so a payment that closes out a period rolls it forward.
func (s *TrackerService) PayBill(ctx context.Context, id uuid.UUID, amount float64, now time.Time) (*domain.Bill, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.PayBill")
	defer span.End()
	span.SetAttributes(
		attribute.String("bill.id", id.String()),
		attribute.Float64("payment.amount", amount),
	)

	if amount < 0 {
		return nil, &domain.ErrInvalidAmount{Field: "amount", Amount: amount}
	}

	bill, err := s.store.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	dueBefore := bill.DueDate
	status := engine.MakePayment(bill, amount, now)
	s.metrics.IncrPayment()
	s.metrics.IncrBillEvaluation(string(status.State))
	if rolledOver(dueBefore, bill.DueDate) {
		s.metrics.IncrRollover()
	}

	if err := s.store.UpdateBill(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("bill_id", id.String()),
		zap.Float64("amount", amount),
		zap.String("status", string(status.State)),
	)

	return bill, nil
}

// EvaluateAllBills re-derives every bill's status as of today and persists
// the results. Returns the refreshed bills.
func (s *TrackerService) EvaluateAllBills(ctx context.Context, today time.Time) ([]*domain.Bill, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.EvaluateAllBills")
	defer span.End()

	return s.ListBills(ctx, today)
}

// BillsSummary aggregates totals and credit metrics across all bills,
// evaluated as of today.
func (s *TrackerService) BillsSummary(ctx context.Context, today time.Time) (*domain.BillsSummary, error) {
	ctx, span := trackerTracer.Start(ctx, "TrackerService.BillsSummary")
	defer span.End()

	bills, err := s.ListBills(ctx, today)
	if err != nil {
		return nil, err
	}

	summary := &domain.BillsSummary{
		TotalAmount:     domain.TotalAmount(bills),
		TotalByCategory: make(map[domain.BillCategory]float64),
		CountByState:    make(map[domain.StatusState]int),
		Credit:          domain.CreditSummary(bills),
	}
	for _, b := range bills {
		if b.Category != "" {
			summary.TotalByCategory[b.Category] += b.AmountValue()
		}
		if b.Status != nil {
			summary.CountByState[b.Status.State]++
		}
	}
	return summary, nil
}

// evaluate runs the status engine on one bill and records metrics.
func (s *TrackerService) evaluate(bill *domain.Bill, today time.Time) domain.BillStatus {
	dueBefore := bill.DueDate
	status := engine.Evaluate(bill, today)
	s.metrics.IncrBillEvaluation(string(status.State))
	if rolledOver(dueBefore, bill.DueDate) {
		s.metrics.IncrRollover()
	}
	return status
}

func rolledOver(before, after *time.Time) bool {
	if before == nil || after == nil {
		return false
	}
	return !before.Equal(*after)
}
