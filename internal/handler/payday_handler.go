package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Pay Calendar
// ============================================================

func setPaydayConfigHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/payday")
		defer span.End()

		var req domain.PaydayConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		cfg, err := svc.SetPaydayConfig(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func getPaydayConfigHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/payday")
		defer span.End()

		cfg, err := svc.GetPaydayConfig(ctx, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func paydayScheduleHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/payday/schedule")
		defer span.End()

		horizonDays := 0
		if v := r.URL.Query().Get("horizon_days"); v != "" {
			h, err := strconv.Atoi(v)
			if err != nil || h < 1 {
				writeError(w, http.StatusBadRequest, "horizon_days must be a positive integer")
				return
			}
			horizonDays = h
		}

		schedule, err := svc.PaydaySchedule(ctx, horizonDays, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, schedule)
	}
}

func nextPaydayHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/payday/next")
		defer span.End()

		next, err := svc.NextPayday(ctx, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, next)
	}
}

// ============================================================
// Savings Distribution
// ============================================================

func distributeSavingsHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/savings/distribute")
		defer span.End()

		var req domain.DistributeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		resp, err := svc.DistributeSavings(ctx, req.Total, req.Apply, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
