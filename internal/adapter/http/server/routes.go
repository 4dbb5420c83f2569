package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dauletm/pickup-share/docs"
)

func setupRoutes(mux *http.ServeMux, h *handlers) {
	// Passengers
	mux.HandleFunc("GET /passengers", h.passenger.List)
	mux.HandleFunc("POST /passengers", h.passenger.Create)
	mux.HandleFunc("DELETE /passengers/{id}", h.passenger.Delete)

	// Transfers
	mux.HandleFunc("POST /share", h.transfer.Share)
	mux.HandleFunc("POST /import", h.transfer.Import)

	// Live roster updates
	mux.HandleFunc("GET /ws/owners/{owner_id}", h.roster.HandleWS)

	// Service
	mux.HandleFunc("GET /health", h.health.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}
