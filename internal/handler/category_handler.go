package handler

import (
	"errors"
	"net/http"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/internal/service"
	"github.com/thedrumepic/med/pkg/logger"
)

// CategoryHandler serves the category resource
type CategoryHandler struct {
	categoryService service.CategoryServiceInterface
	logger          *logger.Logger
}

func NewCategoryHandler(categoryService service.CategoryServiceInterface, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          log.WithComponent("category_handler"),
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, categories)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCategoryRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for create category", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, category)
}

// Update handles PUT /api/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req service.CreateCategoryRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for update category", "category_id", id, "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeErrorResponse(w, h.logger, http.StatusNotFound, "Category not found")
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeErrorResponse(w, h.logger, http.StatusNotFound, "Category not found")
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]bool{"success": true})
}

// Reorder handles POST /api/categories/reorder. The body is the full
// list of category ids in their new display order.
func (h *CategoryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if err := parseRequestBody(r, &ids); err != nil {
		h.logger.Warn("Invalid request body for reorder categories", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.categoryService.ReorderCategories(r.Context(), ids); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeErrorResponse(w, h.logger, http.StatusNotFound, "Category not found")
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]bool{"success": true})
}
