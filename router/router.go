// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/fortune-wheel/cliparse"
	"github.com/danielhkuo/fortune-wheel/handlers"
	"github.com/danielhkuo/fortune-wheel/metrics"
	"github.com/danielhkuo/fortune-wheel/middleware"
	"github.com/danielhkuo/fortune-wheel/wheel"
)

func NewRouter(svc *wheel.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	spinHandler := handlers.NewSpinHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Participant operations (public)
	mux.HandleFunc("POST /spins", middleware.WithLogging(spinHandler.CreateSpin))
	mux.HandleFunc("GET /spins/nationalId/{nationalId}", middleware.WithLogging(spinHandler.GetByNationalID))
	mux.HandleFunc("GET /spins/special-prize", middleware.WithLogging(spinHandler.SpecialPrize))
	mux.HandleFunc("GET /prizes", middleware.WithLogging(spinHandler.ListPrizes))

	// Administration
	mux.HandleFunc("GET /spins", middleware.WithLogging(
		middleware.RequireAdminKey(cfg.AdminKey, spinHandler.ListSpins)))
	mux.HandleFunc("PATCH /spins/{id}/disburse", middleware.WithLogging(
		middleware.RequireAdminKey(cfg.AdminKey, spinHandler.Disburse)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fortune-wheel API v1"))
	})

	return mux
}
