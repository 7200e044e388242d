package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================================
// Shared helper functions
// ============================================================

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseID parses a path parameter as a UUID.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

// handleServiceError maps domain errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var notFound *domain.ErrNotFound
	var validation *domain.ErrValidation
	var invalidRecurrence *domain.ErrInvalidRecurrence
	var invalidAmount *domain.ErrInvalidAmount

	switch {
	case errors.As(err, &notFound):
		logger.Debug("not found", zap.String("error", err.Error()))
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		logger.Debug("validation error", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &invalidRecurrence):
		logger.Debug("invalid recurrence", zap.Int("interval", invalidRecurrence.Interval))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &invalidAmount):
		logger.Debug("invalid amount",
			zap.String("field", invalidAmount.Field),
			zap.Float64("amount", invalidAmount.Amount),
		)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// billResponse decorates a bill with display-ready derived values.
func billResponse(b *domain.Bill, today time.Time) domain.BillAPIResponse {
	resp := domain.BillAPIResponse{Bill: b}
	if b.Status != nil {
		resp.StatusLabel = b.Status.Label(today)
	}
	if b.CreditCard != nil {
		util := b.CreditCard.Utilization()
		rec := b.CreditCard.RecommendedPayment()
		resp.Utilization = &util
		resp.RecommendedPayment = &rec
	}
	return resp
}
