package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/storetrack/storetrack/internal/report/cache"
	"github.com/storetrack/storetrack/internal/report/usecase/query"
	"github.com/storetrack/storetrack/pkg/apperror"
	"github.com/storetrack/storetrack/pkg/logger"
)

// ReportHandler handles HTTP requests for reports
type ReportHandler struct {
	salesHandler    *query.SalesReportHandler
	lowStockHandler *query.LowStockHandler
	cache           *cache.ReportCache
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	salesHandler *query.SalesReportHandler,
	lowStockHandler *query.LowStockHandler,
	reportCache *cache.ReportCache,
) *ReportHandler {
	return &ReportHandler{
		salesHandler:    salesHandler,
		lowStockHandler: lowStockHandler,
		cache:           reportCache,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SalesReport handles GET /api/reports/sales
func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid startDate"})
		return
	}
	end, err := parseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid endDate"})
		return
	}
	if end != nil {
		endOfDay := end.Add(24*time.Hour - time.Nanosecond)
		end = &endOfDay
	}

	key := cache.Key(r.URL.RawQuery)
	if body, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}

	report, err := h.salesHandler.Handle(r.Context(), query.SalesReportQuery{Start: start, End: end})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build sales report")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(Response{Success: true, Data: report}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal server error"})
		return
	}

	h.cache.Set(r.Context(), key, buf.Bytes())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// LowStock handles GET /api/reports/low-stock
func (h *ReportHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, _ := strconv.Atoi(r.URL.Query().Get("threshold"))

	products, err := h.lowStockHandler.Handle(r.Context(), query.LowStockQuery{Threshold: threshold})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build low stock report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Error fetching low stock products"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/sales", h.SalesReport).Methods("GET")
	router.HandleFunc("/api/reports/low-stock", h.LowStock).Methods("GET")
}

// parseDate accepts RFC 3339 or a YYYY-MM-DD day boundary; empty means
// unbounded.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
