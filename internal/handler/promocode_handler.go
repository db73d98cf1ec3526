package handler

import (
	"errors"
	"net/http"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/internal/service"
	"github.com/thedrumepic/med/pkg/logger"
)

// PromocodeHandler serves the promocode resource. Validation is public
// so the storefront can price a cart; everything else is admin-gated.
type PromocodeHandler struct {
	promocodeService service.PromocodeServiceInterface
	logger           *logger.Logger
}

func NewPromocodeHandler(promocodeService service.PromocodeServiceInterface, log *logger.Logger) *PromocodeHandler {
	return &PromocodeHandler{
		promocodeService: promocodeService,
		logger:           log.WithComponent("promocode_handler"),
	}
}

// List handles GET /api/promocodes
func (h *PromocodeHandler) List(w http.ResponseWriter, r *http.Request) {
	promocodes, err := h.promocodeService.ListPromocodes(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, promocodes)
}

// Create handles POST /api/promocodes
func (h *PromocodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePromocodeRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for create promocode", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	promocode, err := h.promocodeService.CreatePromocode(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, promocode)
}

// Delete handles DELETE /api/promocodes/{id}
func (h *PromocodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.promocodeService.DeletePromocode(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeErrorResponse(w, h.logger, http.StatusNotFound, "Promocode not found")
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]bool{"success": true})
}

type validatePromocodeRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// Validate handles POST /api/promocodes/validate
func (h *PromocodeHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validatePromocodeRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for validate promocode", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	validation, err := h.promocodeService.ValidatePromocode(r.Context(), req.Code, req.Subtotal)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, validation)
}
