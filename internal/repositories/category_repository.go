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

// listCategoriesLimit caps GET /categories results.
const listCategoriesLimit = 100

type CategoryRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, category models.Category) error
	Update(ctx context.Context, id string, category models.Category) error
	UpdateOrder(ctx context.Context, id string, order int) error
	Delete(ctx context.Context, id string) error
	InsertMany(ctx context.Context, categories []models.Category) error
}

type CategoryRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

func NewCategoryRepository(log *logger.Logger, db *database.DB) *CategoryRepository {
	return &CategoryRepository{
		logger:     log.WithComponent("category_repository"),
		collection: db.Collection("categories"),
	}
}

// GetAll - retrieves all categories sorted by display order
func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	r.logger.Debug("Retrieving all categories")

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(listCategoriesLimit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("Failed to query categories", "error", err)
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		r.logger.Error("Failed to decode categories", "error", err)
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}

// GetByID - retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category := &models.Category{}

	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			r.logger.Warn("Category not found", "category_id", id)
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to retrieve category", "error", err, "category_id", id)
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	return category, nil
}

// Count - counts categories, used by the seed idempotency guard
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to count categories", "error", err)
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// Create - inserts a new category
func (r *CategoryRepository) Create(ctx context.Context, category models.Category) error {
	r.logger.Debug("Adding new category", "category_id", category.ID, "name", category.Name)

	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		r.logger.Error("Failed to insert category", "error", err, "category_id", category.ID)
		return fmt.Errorf("failed to insert category: %w", err)
	}

	r.logger.Info("Added new category", "category_id", category.ID, "name", category.Name)
	return nil
}

// Update - replaces the base fields of a category. The display order is
// left untouched; it only changes through UpdateOrder.
func (r *CategoryRepository) Update(ctx context.Context, id string, category models.Category) error {
	update := bson.M{"$set": bson.M{
		"name": category.Name,
		"slug": category.Slug,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		r.logger.Error("Failed to update category", "error", err, "category_id", id)
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.MatchedCount == 0 {
		r.logger.Warn("Attempted to update non-existent category", "category_id", id)
		return ErrNotFound
	}

	r.logger.Info("Updated category", "category_id", id, "name", category.Name)
	return nil
}

// UpdateOrder - persists a single category's display position
func (r *CategoryRepository) UpdateOrder(ctx context.Context, id string, order int) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"order": order}})
	if err != nil {
		r.logger.Error("Failed to update category order", "error", err, "category_id", id)
		return fmt.Errorf("failed to update category order: %w", err)
	}
	if result.MatchedCount == 0 {
		r.logger.Warn("Attempted to reorder non-existent category", "category_id", id)
		return ErrNotFound
	}
	return nil
}

// Delete - removes a category by ID. Products referencing it are left
// alone; there is no cascade.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Error("Failed to delete category", "error", err, "category_id", id)
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		r.logger.Warn("Attempted to delete non-existent category", "category_id", id)
		return ErrNotFound
	}

	r.logger.Info("Deleted category", "category_id", id)
	return nil
}

// InsertMany - bulk-inserts seed categories in one pass
func (r *CategoryRepository) InsertMany(ctx context.Context, categories []models.Category) error {
	docs := make([]interface{}, 0, len(categories))
	for _, category := range categories {
		docs = append(docs, category)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		r.logger.Error("Failed to bulk-insert categories", "error", err)
		return fmt.Errorf("failed to bulk-insert categories: %w", err)
	}

	r.logger.Info("Bulk-inserted categories", "count", len(categories))
	return nil
}
