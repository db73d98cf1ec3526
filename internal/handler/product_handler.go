package handler

import (
	"errors"
	"net/http"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/internal/service"
	"github.com/thedrumepic/med/pkg/logger"
)

// ProductHandler serves the product resource
type ProductHandler struct {
	productService service.ProductServiceInterface
	logger         *logger.Logger
}

func NewProductHandler(productService service.ProductServiceInterface, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         log.WithComponent("product_handler"),
	}
}

// List handles GET /api/products with an optional category_id filter
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")

	products, err := h.productService.ListProducts(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, products)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeErrorResponse(w, h.logger, http.StatusNotFound, "Product not found")
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, product)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateProductRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for create product", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, product)
}

// Update handles PUT /api/products/{id} with partial-update semantics
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req service.UpdateProductRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for update product", "product_id", id, "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeErrorResponse(w, h.logger, http.StatusNotFound, "Product not found")
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeErrorResponse(w, h.logger, http.StatusNotFound, "Product not found")
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]bool{"success": true})
}
