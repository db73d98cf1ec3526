package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedrumepic/med/internal/auth"
	"github.com/thedrumepic/med/internal/handler"
	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/internal/router"
	"github.com/thedrumepic/med/internal/service"
	"github.com/thedrumepic/med/models"
	"github.com/thedrumepic/med/pkg/logger"
)

const (
	adminUser = "keeper"
	adminPass = "hive-pass"
)

type testEnv struct {
	mux *http.ServeMux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
	guard := auth.NewGuardFromPassword(adminUser, adminPass, "test-salt", log)

	categoryRepo := repositories.NewInMemoryCategoryRepository()
	productRepo := repositories.NewInMemoryProductRepository()
	orderRepo := repositories.NewInMemoryOrderRepository()
	promocodeRepo := repositories.NewInMemoryPromocodeRepository()

	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, promocodeRepo, log)
	promocodeService := service.NewPromocodeService(promocodeRepo, log)
	seedService := service.NewSeedService(categoryRepo, productRepo, log)

	mux := router.NewRouter(
		handler.NewAdminHandler(guard, seedService, log),
		handler.NewCategoryHandler(categoryService, log),
		handler.NewProductHandler(productService, log),
		handler.NewOrderHandler(orderService, log),
		handler.NewPromocodeHandler(promocodeService, log),
		guard,
		log,
	)

	return &testEnv{mux: mux}
}

// do performs a request against the router. body is JSON-encoded when
// non-nil; asAdmin attaches valid Basic credentials.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, asAdmin bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if asAdmin {
		req.SetBasicAuth(adminUser, adminPass)
	}

	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestRootLiveness(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeInto(t, rec, &body)
	assert.Equal(t, "Ferma Medovik API", body["message"])
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/login",
		map[string]string{"username": adminUser, "password": adminPass}, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeInto(t, rec, &body)
	assert.Equal(t, true, body["success"])

	rec = env.do(t, http.MethodPost, "/api/admin/login",
		map[string]string{"username": "wrong", "password": "wrong"}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMutatingEndpointsRequireCredentials(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/api/categories", map[string]string{"name": "x", "slug": "x"}},
		{http.MethodPost, "/api/categories/reorder", []string{"a"}},
		{http.MethodPut, "/api/categories/some-id", map[string]string{"name": "x", "slug": "x"}},
		{http.MethodDelete, "/api/categories/some-id", nil},
		{http.MethodPost, "/api/products", map[string]interface{}{"name": "x", "category_id": "c", "base_price": 1}},
		{http.MethodPut, "/api/products/some-id", map[string]interface{}{"name": "x"}},
		{http.MethodDelete, "/api/products/some-id", nil},
		{http.MethodGet, "/api/orders", nil},
		{http.MethodDelete, "/api/orders/some-id", nil},
		{http.MethodGet, "/api/promocodes", nil},
		{http.MethodPost, "/api/promocodes", map[string]interface{}{"code": "X", "discount_type": "fixed", "discount_value": 1, "max_uses": 1}},
		{http.MethodDelete, "/api/promocodes/some-id", nil},
	}

	for _, tc := range cases {
		rec := env.do(t, tc.method, tc.path, tc.body, false)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s must be admin-gated", tc.method, tc.path)
		assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	}
}

func TestCategoryCRUDAndReorder(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Мёд", "slug": "honey"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var honey models.Category
	decodeInto(t, rec, &honey)
	require.NotEmpty(t, honey.ID)

	rec = env.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Свечи", "slug": "candles"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var candles models.Category
	decodeInto(t, rec, &candles)

	// Identifier is stable across subsequent reads.
	rec = env.do(t, http.MethodGet, "/api/categories", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Category
	decodeInto(t, rec, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, honey.ID, listed[0].ID)

	// Reorder: candles first now.
	rec = env.do(t, http.MethodPost, "/api/categories/reorder", []string{candles.ID, honey.ID}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/categories", nil, false)
	decodeInto(t, rec, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, candles.ID, listed[0].ID)
	assert.Equal(t, honey.ID, listed[1].ID)

	// Full-replace update.
	rec = env.do(t, http.MethodPut, "/api/categories/"+honey.ID, map[string]string{"name": "Мёд и соты", "slug": "honey-comb"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Category
	decodeInto(t, rec, &updated)
	assert.Equal(t, "Мёд и соты", updated.Name)

	rec = env.do(t, http.MethodPut, "/api/categories/missing", map[string]string{"name": "x", "slug": "y"}, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/categories/"+honey.ID, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/categories/"+honey.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductLifecycle(t *testing.T) {
	env := newTestEnv(t)

	create := map[string]interface{}{
		"name":        "Mix",
		"base_price":  1000,
		"category_id": "cat-honey",
		"weight_prices": []map[string]interface{}{
			{"weight": "250g", "price": 1000},
		},
	}
	rec := env.do(t, http.MethodPost, "/api/products", create, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Product
	decodeInto(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, "Mix", created.Name)
	assert.Equal(t, 1000.0, created.BasePrice)
	require.Len(t, created.WeightPrices, 1)
	assert.Equal(t, "250g", created.WeightPrices[0].Weight)

	// Public read.
	rec = env.do(t, http.MethodGet, "/api/products/"+created.ID, nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.Product
	decodeInto(t, rec, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	rec = env.do(t, http.MethodGet, "/api/products/missing", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Partial update leaves everything else untouched.
	rec = env.do(t, http.MethodPut, "/api/products/"+created.ID, map[string]interface{}{"base_price": 1500}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Product
	decodeInto(t, rec, &updated)
	assert.Equal(t, 1500.0, updated.BasePrice)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.CategoryID, updated.CategoryID)
	assert.Equal(t, created.WeightPrices, updated.WeightPrices)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Empty payload is a bad request.
	rec = env.do(t, http.MethodPut, "/api/products/"+created.ID, map[string]interface{}{}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/products/missing", map[string]interface{}{"base_price": 1}, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/products/"+created.ID, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodDelete, "/api/products/"+created.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductCategoryFilter(t *testing.T) {
	env := newTestEnv(t)

	for _, p := range []map[string]interface{}{
		{"name": "Мёд Разнотравье", "category_id": "cat-honey", "base_price": 1201},
		{"name": "Пыльца", "category_id": "cat-bee", "base_price": 1500},
	} {
		rec := env.do(t, http.MethodPost, "/api/products", p, true)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/products?category_id=cat-honey", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var filtered []models.Product
	decodeInto(t, rec, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "cat-honey", filtered[0].CategoryID)
}

func TestOrderFlow(t *testing.T) {
	env := newTestEnv(t)

	// Checkout is public, and totals are not recomputed server-side.
	orderBody := map[string]interface{}{
		"customer_name":  "Тест Покупатель",
		"customer_phone": "+7 (700) 111 22 33",
		"items": []map[string]interface{}{
			{"name": "Мёд Разнотравье", "weight": "250гр", "price": 1201, "quantity": 2},
			{"name": "Пыльца цветочная", "weight": "100гр", "price": 1500, "quantity": 1},
		},
		"subtotal":  3902,
		"discount":  0,
		"total":     9999,
		"promocode": nil,
	}
	rec := env.do(t, http.MethodPost, "/api/orders", orderBody, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	decodeInto(t, rec, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 9999.0, order.Total)
	require.Len(t, order.Items, 2)
	require.NotNil(t, order.Items[0].Weight)
	assert.Equal(t, "250гр", *order.Items[0].Weight)

	rec = env.do(t, http.MethodGet, "/api/orders", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	decodeInto(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2)

	rec = env.do(t, http.MethodDelete, "/api/orders/"+order.ID, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodDelete, "/api/orders/"+order.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderWithExtraFieldsAccepted(t *testing.T) {
	env := newTestEnv(t)

	// Storefront clients may attach keys the server does not know about;
	// checkout must not fail because of them.
	orderBody := map[string]interface{}{
		"customer_name":  "Тест Покупатель",
		"customer_phone": "+7 (700) 111 22 33",
		"items": []map[string]interface{}{
			{"name": "Мёд Разнотравье", "weight": "250гр", "price": 1201, "quantity": 1},
		},
		"subtotal": 1201,
		"discount": 0,
		"total":    1201,
		"source":   "web",
		"utm":      map[string]string{"campaign": "spring"},
	}
	rec := env.do(t, http.MethodPost, "/api/orders", orderBody, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	decodeInto(t, rec, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 1201.0, order.Total)
}

func TestOrderMissingTotalsRejected(t *testing.T) {
	env := newTestEnv(t)

	orderBody := map[string]interface{}{
		"customer_name":  "Тест Покупатель",
		"customer_phone": "+7 (700) 111 22 33",
		"items": []map[string]interface{}{
			{"name": "Мёд", "price": 1201, "quantity": 1},
		},
	}
	rec := env.do(t, http.MethodPost, "/api/orders", orderBody, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromocodeEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/promocodes", map[string]interface{}{
		"code": "HONEY10", "discount_type": "percent", "discount_value": 10, "max_uses": 5,
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var promo models.Promocode
	decodeInto(t, rec, &promo)
	assert.True(t, promo.IsActive)

	// Public validation computes the discount.
	rec = env.do(t, http.MethodPost, "/api/promocodes/validate", map[string]interface{}{
		"code": "HONEY10", "subtotal": 3500,
	}, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var validation service.PromocodeValidation
	decodeInto(t, rec, &validation)
	assert.True(t, validation.Valid)
	assert.Equal(t, 350.0, validation.Discount)

	rec = env.do(t, http.MethodPost, "/api/promocodes/validate", map[string]interface{}{
		"code": "NOPE", "subtotal": 3500,
	}, false)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &validation)
	assert.False(t, validation.Valid)

	rec = env.do(t, http.MethodGet, "/api/promocodes", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var promos []models.Promocode
	decodeInto(t, rec, &promos)
	require.Len(t, promos, 1)

	rec = env.do(t, http.MethodDelete, "/api/promocodes/"+promo.ID, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodDelete, "/api/promocodes/"+promo.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeedIsIdempotentOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/seed", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var first service.SeedResult
	decodeInto(t, rec, &first)
	assert.Equal(t, "Data seeded successfully", first.Message)
	assert.NotZero(t, first.Categories)
	assert.NotZero(t, first.Products)

	rec = env.do(t, http.MethodPost, "/api/seed", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var second service.SeedResult
	decodeInto(t, rec, &second)
	assert.Equal(t, "Data already seeded", second.Message)

	// Counts unchanged after the second run.
	rec = env.do(t, http.MethodGet, "/api/categories", nil, false)
	var categories []models.Category
	decodeInto(t, rec, &categories)
	assert.Len(t, categories, first.Categories)

	rec = env.do(t, http.MethodGet, "/api/products", nil, false)
	var products []models.Product
	decodeInto(t, rec, &products)
	assert.Len(t, products, first.Products)
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
