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

// listPromocodesLimit caps GET /promocodes results.
const listPromocodesLimit = 100

type PromocodeRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Promocode, error)
	GetByCode(ctx context.Context, code string) (*models.Promocode, error)
	Create(ctx context.Context, promocode models.Promocode) error
	Delete(ctx context.Context, id string) error
	IncrementUsage(ctx context.Context, code string) error
}

type PromocodeRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

func NewPromocodeRepository(log *logger.Logger, db *database.DB) *PromocodeRepository {
	return &PromocodeRepository{
		logger:     log.WithComponent("promocode_repository"),
		collection: db.Collection("promocodes"),
	}
}

// GetAll - retrieves all promocodes
func (r *PromocodeRepository) GetAll(ctx context.Context) ([]models.Promocode, error) {
	r.logger.Debug("Retrieving all promocodes")

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(listPromocodesLimit))
	if err != nil {
		r.logger.Error("Failed to query promocodes", "error", err)
		return nil, fmt.Errorf("failed to query promocodes: %w", err)
	}

	promocodes := []models.Promocode{}
	if err := cursor.All(ctx, &promocodes); err != nil {
		r.logger.Error("Failed to decode promocodes", "error", err)
		return nil, fmt.Errorf("failed to decode promocodes: %w", err)
	}

	return promocodes, nil
}

// GetByCode - retrieves a promocode by its customer-facing code
func (r *PromocodeRepository) GetByCode(ctx context.Context, code string) (*models.Promocode, error) {
	promocode := &models.Promocode{}

	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(promocode)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to retrieve promocode", "error", err, "code", code)
		return nil, fmt.Errorf("failed to retrieve promocode: %w", err)
	}

	return promocode, nil
}

// Create - inserts a new promocode
func (r *PromocodeRepository) Create(ctx context.Context, promocode models.Promocode) error {
	r.logger.Debug("Adding new promocode", "promocode_id", promocode.ID, "code", promocode.Code)

	if _, err := r.collection.InsertOne(ctx, promocode); err != nil {
		r.logger.Error("Failed to insert promocode", "error", err, "promocode_id", promocode.ID)
		return fmt.Errorf("failed to insert promocode: %w", err)
	}

	r.logger.Info("Added new promocode", "promocode_id", promocode.ID, "code", promocode.Code)
	return nil
}

// Delete - removes a promocode by ID
func (r *PromocodeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Error("Failed to delete promocode", "error", err, "promocode_id", id)
		return fmt.Errorf("failed to delete promocode: %w", err)
	}
	if result.DeletedCount == 0 {
		r.logger.Warn("Attempted to delete non-existent promocode", "promocode_id", id)
		return ErrNotFound
	}

	r.logger.Info("Deleted promocode", "promocode_id", id)
	return nil
}

// IncrementUsage - counts one use of an active code. Returns ErrNotFound
// when no active promocode with the given code exists; callers on the
// order path treat that as a no-op.
func (r *PromocodeRepository) IncrementUsage(ctx context.Context, code string) error {
	filter := bson.M{"code": code, "is_active": true}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"current_uses": 1}})
	if err != nil {
		r.logger.Error("Failed to increment promocode usage", "error", err, "code", code)
		return fmt.Errorf("failed to increment promocode usage: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	r.logger.Info("Counted promocode use", "code", code)
	return nil
}
