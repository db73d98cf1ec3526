package handler

import (
	"errors"
	"net/http"

	"github.com/thedrumepic/med/internal/auth"
	"github.com/thedrumepic/med/internal/service"
	"github.com/thedrumepic/med/pkg/logger"
)

// AdminHandler serves the liveness root, the explicit login check and
// the one-time catalog seed.
type AdminHandler struct {
	guard       *auth.Guard
	seedService service.SeedServiceInterface
	logger      *logger.Logger
}

func NewAdminHandler(guard *auth.Guard, seedService service.SeedServiceInterface, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		guard:       guard,
		seedService: seedService,
		logger:      log.WithComponent("admin_handler"),
	}
}

// Root handles GET /api/
func (h *AdminHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, h.logger, http.StatusOK, map[string]string{"message": "Ferma Medovik API"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. Unlike the Basic-auth gate on
// resource routes, this returns a boolean success payload for the admin
// UI to act on.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for admin login", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.guard.Verify(req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			h.logger.Warn("Admin login rejected", "username", req.Username)
			writeErrorResponse(w, h.logger, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Admin logged in", "username", req.Username)
	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{"success": true, "message": "Logged in"})
}

// Seed handles POST /api/seed
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seedService.Seed(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, result)
}
