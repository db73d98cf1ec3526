// Package router wires the route table and applies the admin Basic-auth
// gate to mutating and administrative endpoints.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/thedrumepic/med/internal/auth"
	"github.com/thedrumepic/med/internal/handler"
	"github.com/thedrumepic/med/pkg/logger"
)

// NewRouter builds the full route table under the /api prefix.
func NewRouter(
	adminHandler *handler.AdminHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	promocodeHandler *handler.PromocodeHandler,
	guard *auth.Guard,
	log *logger.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	admin := requireAdmin(guard, log.WithComponent("router"))

	mux.HandleFunc("GET /api/{$}", adminHandler.Root)
	mux.HandleFunc("POST /api/admin/login", adminHandler.Login)
	mux.HandleFunc("POST /api/seed", adminHandler.Seed)

	mux.HandleFunc("GET /api/categories", categoryHandler.List)
	mux.HandleFunc("POST /api/categories", admin(categoryHandler.Create))
	mux.HandleFunc("POST /api/categories/reorder", admin(categoryHandler.Reorder))
	mux.HandleFunc("PUT /api/categories/{id}", admin(categoryHandler.Update))
	mux.HandleFunc("DELETE /api/categories/{id}", admin(categoryHandler.Delete))

	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/{id}", productHandler.Get)
	mux.HandleFunc("POST /api/products", admin(productHandler.Create))
	mux.HandleFunc("PUT /api/products/{id}", admin(productHandler.Update))
	mux.HandleFunc("DELETE /api/products/{id}", admin(productHandler.Delete))

	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/orders", admin(orderHandler.List))
	mux.HandleFunc("DELETE /api/orders/{id}", admin(orderHandler.Delete))

	mux.HandleFunc("GET /api/promocodes", admin(promocodeHandler.List))
	mux.HandleFunc("POST /api/promocodes", admin(promocodeHandler.Create))
	mux.HandleFunc("DELETE /api/promocodes/{id}", admin(promocodeHandler.Delete))
	mux.HandleFunc("POST /api/promocodes/validate", promocodeHandler.Validate)

	return mux
}

// requireAdmin wraps a handler with the HTTP Basic credential check.
// Failures reveal nothing beyond "incorrect credentials".
func requireAdmin(guard *auth.Guard, log *logger.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || guard.Verify(username, password) != nil {
				log.Warn("Rejected unauthorized request", "method", r.Method, "path", r.URL.Path)
				w.Header().Set("WWW-Authenticate", `Basic realm="medovik-admin"`)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Incorrect credentials"})
				return
			}

			next(w, r)
		}
	}
}
