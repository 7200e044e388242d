package handler

import (
	"net/http"

	"github.com/moneymap/moneymap-go/internal/infra/observability"
	"github.com/moneymap/moneymap-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(svc *service.TrackerService, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(svc, logger))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// =============================================
		// Bills
		// =============================================
		r.Post("/bills", createBillHandler(svc, logger))
		r.Get("/bills", listBillsHandler(svc, logger))
		r.Post("/bills/evaluate", evaluateBillsHandler(svc, logger))
		r.Get("/bills/summary", billsSummaryHandler(svc, logger))
		r.Get("/bills/{billId}", getBillHandler(svc, logger))
		r.Put("/bills/{billId}", updateBillHandler(svc, logger))
		r.Delete("/bills/{billId}", deleteBillHandler(svc, logger))
		r.Post("/bills/{billId}/pay", payBillHandler(svc, logger))

		// =============================================
		// Savings Goals
		// =============================================
		r.Post("/goals", createGoalHandler(svc, logger))
		r.Get("/goals", listGoalsHandler(svc, logger))
		r.Get("/goals/{goalId}", getGoalHandler(svc, logger))
		r.Put("/goals/{goalId}", updateGoalHandler(svc, logger))
		r.Delete("/goals/{goalId}", deleteGoalHandler(svc, logger))

		// =============================================
		// Pay Calendar
		// =============================================
		r.Put("/payday", setPaydayConfigHandler(svc, logger))
		r.Get("/payday", getPaydayConfigHandler(svc, logger))
		r.Get("/payday/schedule", paydayScheduleHandler(svc, logger))
		r.Get("/payday/next", nextPaydayHandler(svc, logger))

		// =============================================
		// Savings Distribution
		// =============================================
		r.Post("/savings/distribute", distributeSavingsHandler(svc, logger))

		// =============================================
		// Metrics snapshot
		// =============================================
		r.Get("/metrics/tracker", trackerMetricsHandler(metrics, logger))
	})

	return r
}

// healthzHandler reports liveness plus store reachability.
func healthzHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if svc != nil && !svc.Healthy(r.Context()) {
			status = "degraded"
			code = http.StatusServiceUnavailable
			logger.Warn("health check: store unreachable")
		}
		writeJSON(w, code, map[string]string{"status": status})
	}
}

// readyzHandler reports readiness to serve traffic.
func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// trackerMetricsHandler returns the JSON counter snapshot.
func trackerMetricsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetTrackerSnapshot())
	}
}
