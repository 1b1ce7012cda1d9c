package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/storetrack/storetrack/internal/order/usecase/command"
	"github.com/storetrack/storetrack/internal/order/usecase/query"
	"github.com/storetrack/storetrack/pkg/apperror"
	"github.com/storetrack/storetrack/pkg/logger"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	statusHandler *command.UpdateStatusHandler
	getHandler    *query.GetOrderHandler
	listHandler   *query.ListOrdersHandler
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	statusHandler *command.UpdateStatusHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
) *OrderHandler {
	return &OrderHandler{
		createHandler: createHandler,
		statusHandler: statusHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName string `json:"customerName"`
		Items        []struct {
			ProductID uint `json:"productId"`
			Quantity  int  `json:"quantity"`
		} `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	items := make([]command.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, command.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{
		CustomerName: req.CustomerName,
		Items:        items,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create order")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	order, err := h.statusHandler.Handle(r.Context(), command.UpdateStatusCommand{
		OrderID: id,
		Status:  req.Status,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Failed to update order status")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order id"})
		return
	}

	order, err := h.getHandler.Handle(r.Context(), query.GetOrderQuery{ID: id})
	if err != nil {
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := query.ListOrdersQuery{
		CustomerName: r.URL.Query().Get("customerName"),
		Status:       r.URL.Query().Get("status"),
	}
	var parseErr error
	q.Start, parseErr = parseDate(r.URL.Query().Get("startDate"))
	if parseErr != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid startDate"})
		return
	}
	q.End, parseErr = parseDate(r.URL.Query().Get("endDate"))
	if parseErr != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid endDate"})
		return
	}
	if q.End != nil {
		endOfDay := q.End.Add(24*time.Hour - time.Nanosecond)
		q.End = &endOfDay
	}

	orders, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, apperror.StatusCode(err), Response{Success: false, Error: apperror.UserMessage(err)})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: orders})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/orders", h.CreateOrder).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.GetOrder).Methods("GET")
	router.HandleFunc("/api/orders/{id}/status", h.UpdateStatus).Methods("PATCH", "PUT")
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
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
