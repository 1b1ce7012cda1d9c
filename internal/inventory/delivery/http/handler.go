package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/storetrack/storetrack/internal/inventory/usecase/command"
	"github.com/storetrack/storetrack/internal/inventory/usecase/query"
	"github.com/storetrack/storetrack/pkg/apperror"
	"github.com/storetrack/storetrack/pkg/logger"
)

// InventoryHandler handles HTTP requests for the movement ledger
type InventoryHandler struct {
	applyHandler *command.ApplyMovementHandler
	listHandler  *query.ListMovementsHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	applyHandler *command.ApplyMovementHandler,
	listHandler *query.ListMovementsHandler,
) *InventoryHandler {
	return &InventoryHandler{
		applyHandler: applyHandler,
		listHandler:  listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateMovement handles POST /api/inventory
func (h *InventoryHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint   `json:"productId"`
		Type      string `json:"type"`
		Quantity  int    `json:"quantity"`
		Note      string `json:"note"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.ProductID == 0 || req.Type == "" || req.Quantity == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Missing required fields",
		})
		return
	}

	movement, err := h.applyHandler.Handle(r.Context(), command.ApplyMovementCommand{
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Note:      req.Note,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", req.ProductID).Msg("Failed to create movement")
		respondJSON(w, apperror.StatusCode(err), Response{
			Success: false,
			Error:   apperror.UserMessage(err),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Movement created successfully",
		Data:    movement,
	})
}

// ListMovements handles GET /api/inventory
func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	productID, _ := strconv.ParseUint(r.URL.Query().Get("productId"), 10, 32)

	movements, err := h.listHandler.Handle(r.Context(), query.ListMovementsQuery{
		ProductID: uint(productID),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list movements")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Error fetching movements",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    movements,
	})
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", h.ListMovements).Methods("GET")
	router.HandleFunc("/api/inventory", h.CreateMovement).Methods("POST")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
