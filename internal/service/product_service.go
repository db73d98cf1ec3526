package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/models"
	"github.com/thedrumepic/med/pkg/logger"
)

// CreateProductRequest describes a new product. BasePrice is a pointer
// so an absent field is distinguishable from an explicit zero and can be
// rejected as missing.
type CreateProductRequest struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	CategoryID   string               `json:"category_id"`
	Image        string               `json:"image"`
	BasePrice    *float64             `json:"base_price"`
	WeightPrices []models.WeightPrice `json:"weight_prices"`
}

// UpdateProductRequest carries partial-update semantics: only non-nil
// fields are applied, omitted fields are never nulled out.
type UpdateProductRequest struct {
	Name         *string               `json:"name"`
	Description  *string               `json:"description"`
	CategoryID   *string               `json:"category_id"`
	Image        *string               `json:"image"`
	BasePrice    *float64              `json:"base_price"`
	WeightPrices *[]models.WeightPrice `json:"weight_prices"`
}

type ProductServiceInterface interface {
	ListProducts(ctx context.Context, categoryID string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductService struct {
	productRepo repositories.ProductRepositoryInterface
	logger      *logger.Logger
}

func NewProductService(productRepo repositories.ProductRepositoryInterface, log *logger.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      log.WithComponent("product_service"),
	}
}

// ListProducts returns products, optionally filtered by exact category ID
func (s *ProductService) ListProducts(ctx context.Context, categoryID string) ([]models.Product, error) {
	products, err := s.productRepo.GetAll(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to list products", "error", err)
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a single product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct creates a new product with a generated identifier and
// creation timestamp
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	if err := validateCreateProductRequest(req); err != nil {
		s.logger.Warn("Create failed: invalid product data", "error", err)
		return nil, err
	}

	product := models.Product{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		Image:        req.Image,
		BasePrice:    *req.BasePrice,
		WeightPrices: normalizeWeightPrices(req.WeightPrices),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", "error", err)
		return nil, err
	}

	s.logger.Info("Product created", "product_id", product.ID, "name", product.Name)
	return &product, nil
}

// UpdateProduct applies a partial update and returns the post-update
// record. A payload with no applicable field fails with ErrNoUpdateData.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*models.Product, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.BasePrice != nil {
		fields["base_price"] = *req.BasePrice
	}
	if req.WeightPrices != nil {
		fields["weight_prices"] = normalizeWeightPrices(*req.WeightPrices)
	}

	if len(fields) == 0 {
		s.logger.Warn("Update failed: empty payload", "product_id", id)
		return nil, ErrNoUpdateData
	}

	if err := s.productRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", "product_id", id, "fields", len(fields))
	return updated, nil
}

// DeleteProduct removes a product by ID
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Product deleted", "product_id", id)
	return nil
}

func validateCreateProductRequest(req CreateProductRequest) error {
	if req.Name == "" {
		return validationErrorf("name is required")
	}
	if req.CategoryID == "" {
		return validationErrorf("category_id is required")
	}
	if req.BasePrice == nil {
		return validationErrorf("base_price is required")
	}
	if *req.BasePrice < 0 {
		return validationErrorf("base_price must be non-negative")
	}
	for i, wp := range req.WeightPrices {
		if wp.Weight == "" {
			return validationErrorf("weight_prices[%d]: weight is required", i)
		}
		if wp.Price < 0 {
			return validationErrorf("weight_prices[%d]: price must be non-negative", i)
		}
	}
	return nil
}

// normalizeWeightPrices rebuilds the tiers as plain {weight, price}
// entries, preserving the submitted order. A missing list becomes an
// empty one so stored documents never carry null tiers.
func normalizeWeightPrices(tiers []models.WeightPrice) []models.WeightPrice {
	normalized := make([]models.WeightPrice, 0, len(tiers))
	for _, tier := range tiers {
		normalized = append(normalized, models.WeightPrice{
			Weight: tier.Weight,
			Price:  tier.Price,
		})
	}
	return normalized
}
