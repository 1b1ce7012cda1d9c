package server

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	catalogHTTP "github.com/storetrack/storetrack/internal/catalog/delivery/http"
	inventoryHTTP "github.com/storetrack/storetrack/internal/inventory/delivery/http"
	orderHTTP "github.com/storetrack/storetrack/internal/order/delivery/http"
	reportHTTP "github.com/storetrack/storetrack/internal/report/delivery/http"
	"github.com/storetrack/storetrack/pkg/metrics"
)

// Handlers groups the per-domain HTTP handlers mounted on the router.
type Handlers struct {
	Catalog   *catalogHTTP.CatalogHandler
	Inventory *inventoryHTTP.InventoryHandler
	Order     *orderHTTP.OrderHandler
	Report    *reportHTTP.ReportHandler
}

// NewRouter assembles the API router with metrics, logging and health checks.
func NewRouter(handlers Handlers, db *sql.DB) *mux.Router {
	router := mux.NewRouter()

	router.Use(metrics.Middleware)
	router.Use(LoggingMiddleware)

	handlers.Catalog.RegisterRoutes(router)
	handlers.Inventory.RegisterRoutes(router)
	handlers.Order.RegisterRoutes(router)
	handlers.Report.RegisterRoutes(router)

	registerHealthCheck(router, db)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// registerHealthCheck mounts GET /health, reporting database reachability.
func registerHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		code := http.StatusOK

		if err := db.PingContext(r.Context()); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}).Methods("GET")
}
