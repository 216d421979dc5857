// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fortune-wheel/middleware"
	"github.com/danielhkuo/fortune-wheel/models"
	"github.com/danielhkuo/fortune-wheel/wheel"
)

type SpinHandler struct {
	svc *wheel.Service
}

func NewSpinHandler(svc *wheel.Service) *SpinHandler {
	return &SpinHandler{svc: svc}
}

// CreateSpin handles POST /spins
func (h *SpinHandler) CreateSpin(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	spin, err := h.svc.Play(r.Context(), req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Error:   http.StatusText(http.StatusBadRequest),
				Message: verr.Error(),
				Fields:  verr.Fields,
			})
		case errors.Is(err, wheel.ErrAlreadyParticipated):
			middleware.ErrorResponse(w, http.StatusConflict, "This national ID has already participated")
		case errors.Is(err, wheel.ErrSpecialPrizeUnavailable):
			middleware.ErrorResponse(w, http.StatusConflict, "The special prize has already been awarded")
		default:
			slog.Error("failed to record spin", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record spin")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, spin)
}

// ListSpins handles GET /spins
func (h *SpinHandler) ListSpins(w http.ResponseWriter, r *http.Request) {
	spins, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list spins", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list spins")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, spins)
}

// GetByNationalID handles GET /spins/nationalId/{nationalId}
func (h *SpinHandler) GetByNationalID(w http.ResponseWriter, r *http.Request) {
	nationalID := r.PathValue("nationalId")

	spin, err := h.svc.GetByNationalID(r.Context(), nationalID)
	if errors.Is(err, wheel.ErrNotFound) {
		middleware.JSONResponse(w, http.StatusNotFound, models.MessageResponse{Message: "Spin not found"})
		return
	}
	if err != nil {
		slog.Error("failed to get spin", "national_id", nationalID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get spin")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, spin)
}

// SpecialPrize handles GET /spins/special-prize
func (h *SpinHandler) SpecialPrize(w http.ResponseWriter, r *http.Request) {
	awarded, err := h.svc.SpecialPrizeAwarded(r.Context())
	if err != nil {
		slog.Error("failed to check special prize", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to check special prize")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SpecialPrizeResponse{Awarded: awarded})
}

// Disburse handles PATCH /spins/{id}/disburse
func (h *SpinHandler) Disburse(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.svc.Disburse(r.Context(), id)
	switch {
	case errors.Is(err, wheel.ErrMissingID):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Spin ID is required")
		return
	case errors.Is(err, wheel.ErrNotFound):
		middleware.JSONResponse(w, http.StatusNotFound, models.MessageResponse{Message: "Spin not found"})
		return
	case err != nil:
		slog.Error("failed to update disbursement", "spin_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update disbursement status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Disbursement status updated successfully",
	})
}

// ListPrizes handles GET /prizes
func (h *SpinHandler) ListPrizes(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.svc.Catalog().Entries())
}
