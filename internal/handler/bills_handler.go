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
// Bills
// ============================================================

func createBillHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/bills")
		defer span.End()

		var req domain.BillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		bill, err := svc.CreateBill(ctx, &req, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusCreated, billResponse(bill, time.Now()))
	}
}

func listBillsHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/bills")
		defer span.End()

		now := time.Now()
		bills, err := svc.ListBills(ctx, now)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		// Optional timeframe filter (non-credit-card bills only).
		if due := r.URL.Query().Get("due"); due != "" {
			timeframe := domain.Timeframe(due)
			if !timeframe.Valid() {
				writeError(w, http.StatusBadRequest, "unknown timeframe '"+due+"'")
				return
			}
			bills = domain.Due(bills, timeframe, now)
		} else {
			switch sortKey := r.URL.Query().Get("sort"); sortKey {
			case "", "date":
				domain.SortBills(bills, domain.ByDueDate)
			case "name":
				domain.SortBills(bills, domain.ByName)
			case "balance":
				domain.SortBills(bills, domain.ByBalance)
			case "limit":
				domain.SortBills(bills, domain.ByLimit)
			case "cards":
				domain.SortBills(bills, domain.ByStatusUtilizationDate)
			default:
				writeError(w, http.StatusBadRequest, "unknown sort '"+sortKey+"'")
				return
			}
		}

		resp := make([]domain.BillAPIResponse, 0, len(bills))
		for _, b := range bills {
			resp = append(resp, billResponse(b, now))
		}
		writeJSON(w, http.StatusOK, map[string]any{"bills": resp})
	}
}

func getBillHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/bills/{billId}")
		defer span.End()

		id, err := parseID(chi.URLParam(r, "billId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		bill, err := svc.GetBill(ctx, id, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, billResponse(bill, time.Now()))
	}
}

func updateBillHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/bills/{billId}")
		defer span.End()

		id, err := parseID(chi.URLParam(r, "billId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		var req domain.BillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		bill, err := svc.UpdateBill(ctx, id, &req, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, billResponse(bill, time.Now()))
	}
}

func deleteBillHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/bills/{billId}")
		defer span.End()

		id, err := parseID(chi.URLParam(r, "billId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		if err := svc.DeleteBill(ctx, id); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func payBillHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/bills/{billId}/pay")
		defer span.End()

		id, err := parseID(chi.URLParam(r, "billId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		var req domain.BillPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		bill, err := svc.PayBill(ctx, id, req.Amount, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, billResponse(bill, time.Now()))
	}
}

func evaluateBillsHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/bills/evaluate")
		defer span.End()

		now := time.Now()
		bills, err := svc.EvaluateAllBills(ctx, now)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		resp := make([]domain.BillAPIResponse, 0, len(bills))
		for _, b := range bills {
			resp = append(resp, billResponse(b, now))
		}
		writeJSON(w, http.StatusOK, map[string]any{"bills": resp, "evaluated": len(resp)})
	}
}

func billsSummaryHandler(svc *service.TrackerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/bills/summary")
		defer span.End()

		summary, err := svc.BillsSummary(ctx, time.Now())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
