package repositories

import (
	"context"
	"fmt"

	"github.com/thedrumepic/med/models"
	"github.com/thedrumepic/med/pkg/database"
	"github.com/thedrumepic/med/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listProductsLimit caps GET /products results.
const listProductsLimit = 1000

type ProductRepositoryInterface interface {
	GetAll(ctx context.Context, categoryID string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product models.Product) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	InsertMany(ctx context.Context, products []models.Product) error
}

type ProductRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

func NewProductRepository(log *logger.Logger, db *database.DB) *ProductRepository {
	return &ProductRepository{
		logger:     log.WithComponent("product_repository"),
		collection: db.Collection("products"),
	}
}

// GetAll - retrieves products, optionally filtered by exact category ID
func (r *ProductRepository) GetAll(ctx context.Context, categoryID string) ([]models.Product, error) {
	r.logger.Debug("Retrieving products", "category_id", categoryID)

	filter := bson.M{}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(listProductsLimit))
	if err != nil {
		r.logger.Error("Failed to query products", "error", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error("Failed to decode products", "error", err)
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// GetByID - retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product := &models.Product{}

	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			r.logger.Warn("Product not found", "product_id", id)
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to retrieve product", "error", err, "product_id", id)
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	return product, nil
}

// Create - inserts a new product
func (r *ProductRepository) Create(ctx context.Context, product models.Product) error {
	r.logger.Debug("Adding new product", "product_id", product.ID, "name", product.Name)

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		r.logger.Error("Failed to insert product", "error", err, "product_id", product.ID)
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Info("Added new product", "product_id", product.ID, "name", product.Name)
	return nil
}

// Update - applies a partial update. Only the supplied fields change;
// callers are responsible for never passing an empty map.
func (r *ProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		r.logger.Error("Failed to update product", "error", err, "product_id", id)
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		r.logger.Warn("Attempted to update non-existent product", "product_id", id)
		return ErrNotFound
	}

	r.logger.Info("Updated product", "product_id", id, "fields", len(fields))
	return nil
}

// Delete - removes a product by ID
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Error("Failed to delete product", "error", err, "product_id", id)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		r.logger.Warn("Attempted to delete non-existent product", "product_id", id)
		return ErrNotFound
	}

	r.logger.Info("Deleted product", "product_id", id)
	return nil
}

// InsertMany - bulk-inserts seed products in one pass
func (r *ProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	docs := make([]interface{}, 0, len(products))
	for _, product := range products {
		docs = append(docs, product)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		r.logger.Error("Failed to bulk-insert products", "error", err)
		return fmt.Errorf("failed to bulk-insert products: %w", err)
	}

	r.logger.Info("Bulk-inserted products", "count", len(products))
	return nil
}
