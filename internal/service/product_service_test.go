package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/models"
	"github.com/thedrumepic/med/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
}

func newProductService() (*ProductService, *repositories.InMemoryProductRepository) {
	repo := repositories.NewInMemoryProductRepository()
	return NewProductService(repo, testLogger()), repo
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateProductAssignsIDAndTimestamp(t *testing.T) {
	svc, _ := newProductService()

	created, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:       "Мёд Липовый",
		CategoryID: "cat-honey",
		BasePrice:  floatPtr(1400),
		WeightPrices: []models.WeightPrice{
			{Weight: "250гр", Price: 1400},
			{Weight: "1кг", Price: 4200},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	_, err = time.Parse(time.RFC3339, created.CreatedAt)
	assert.NoError(t, err, "created_at must be RFC3339")

	// Tier order is preserved as submitted.
	require.Len(t, created.WeightPrices, 2)
	assert.Equal(t, "250гр", created.WeightPrices[0].Weight)
	assert.Equal(t, "1кг", created.WeightPrices[1].Weight)

	second, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "Мёд Акациевый", CategoryID: "cat-honey", BasePrice: floatPtr(1600),
	})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
	assert.NotNil(t, second.WeightPrices, "missing tiers become an empty list, not null")
	assert.Empty(t, second.WeightPrices)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newProductService()

	_, err := svc.CreateProduct(context.Background(), CreateProductRequest{CategoryID: "cat-honey"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateProduct(context.Background(), CreateProductRequest{Name: "x"})
	require.ErrorAs(t, err, &vErr)

	// base_price must be present, not just non-negative.
	_, err = svc.CreateProduct(context.Background(), CreateProductRequest{Name: "x", CategoryID: "c"})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "x", CategoryID: "c", BasePrice: floatPtr(-1),
	})
	require.ErrorAs(t, err, &vErr)
}

func TestUpdateProductPartialSemantics(t *testing.T) {
	svc, _ := newProductService()

	created, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:        "Мёд Разнотравье",
		Description: "Луговой мёд",
		CategoryID:  "cat-honey",
		Image:       "https://example.com/honey.jpg",
		BasePrice:   floatPtr(1201),
		WeightPrices: []models.WeightPrice{
			{Weight: "250гр", Price: 1201},
		},
	})
	require.NoError(t, err)

	newPrice := 1500.0
	updated, err := svc.UpdateProduct(context.Background(), created.ID, UpdateProductRequest{
		BasePrice: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, updated.BasePrice)
	// Every omitted field stays untouched.
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.CategoryID, updated.CategoryID)
	assert.Equal(t, created.Image, updated.Image)
	assert.Equal(t, created.WeightPrices, updated.WeightPrices)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateProductEmptyPayload(t *testing.T) {
	svc, _ := newProductService()

	created, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "Мёд", CategoryID: "cat-honey", BasePrice: floatPtr(1000),
	})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), created.ID, UpdateProductRequest{})
	assert.ErrorIs(t, err, ErrNoUpdateData)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := newProductService()

	name := "x"
	_, err := svc.UpdateProduct(context.Background(), "missing", UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListProductsCategoryFilter(t *testing.T) {
	svc, _ := newProductService()

	_, err := svc.CreateProduct(context.Background(), CreateProductRequest{Name: "a", CategoryID: "cat-honey", BasePrice: floatPtr(1)})
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), CreateProductRequest{Name: "b", CategoryID: "cat-bee", BasePrice: floatPtr(1)})
	require.NoError(t, err)

	all, err := svc.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	honey, err := svc.ListProducts(context.Background(), "cat-honey")
	require.NoError(t, err)
	require.Len(t, honey, 1)
	assert.Equal(t, "a", honey[0].Name)
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newProductService()

	created, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "a", CategoryID: "c", BasePrice: floatPtr(1),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), created.ID), repositories.ErrNotFound)

	_, err = svc.GetProduct(context.Background(), created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
