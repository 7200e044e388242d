package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Savings Goals
// ============================================================

func goalResponse(g *domain.Goal, today time.Time) domain.GoalAPIResponse {
	return domain.GoalAPIResponse{
		Goal:              g,
		Remaining:         g.RemainingAmount(),
		Progress:          g.Progress(),
		DaysUntilDeadline: g.DaysUntilDeadline(today),
	}
}

func createGoalHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/goals")
		defer span.End()

		var req domain.GoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		goal, err := svc.CreateGoal(ctx, &req, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, goalResponse(goal, time.Now()))
	}
}

func listGoalsHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/goals")
		defer span.End()

		goals, err := svc.ListGoals(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		now := time.Now()
		resp := make([]domain.GoalAPIResponse, 0, len(goals))
		for _, g := range goals {
			resp = append(resp, goalResponse(g, now))
		}
		writeJSON(w, http.StatusOK, map[string]any{"goals": resp})
	}
}

func getGoalHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/goals/{goalId}")
		defer span.End()

		id, err := parseID(chi.URLParam(r, "goalId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		goal, err := svc.GetGoal(ctx, id)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, goalResponse(goal, time.Now()))
	}
}

func updateGoalHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/goals/{goalId}")
		defer span.End()

		id, err := parseID(chi.URLParam(r, "goalId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		var req domain.GoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		goal, err := svc.UpdateGoal(ctx, id, &req, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, goalResponse(goal, time.Now()))
	}
}

func deleteGoalHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/goals/{goalId}")
		defer span.End()

		id, err := parseID(chi.URLParam(r, "goalId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		if err := svc.DeleteGoal(ctx, id); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
