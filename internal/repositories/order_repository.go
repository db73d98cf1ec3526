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

// listOrdersLimit caps GET /orders results.
const listOrdersLimit = 1000

type OrderRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, order models.Order) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

func NewOrderRepository(log *logger.Logger, db *database.DB) *OrderRepository {
	return &OrderRepository{
		logger:     log.WithComponent("order_repository"),
		collection: db.Collection("orders"),
	}
}

// GetAll - retrieves all orders with their embedded item lists
func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	r.logger.Debug("Retrieving all orders")

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(listOrdersLimit))
	if err != nil {
		r.logger.Error("Failed to query orders", "error", err)
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error("Failed to decode orders", "error", err)
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

// Create - inserts a new order. Orders are never updated afterwards.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) error {
	r.logger.Debug("Adding new order", "order_id", order.ID, "customer", order.CustomerName)

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		r.logger.Error("Failed to insert order", "error", err, "order_id", order.ID)
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Info("Added new order", "order_id", order.ID, "total", order.Total)
	return nil
}

// Delete - removes an order by ID
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Error("Failed to delete order", "error", err, "order_id", id)
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if result.DeletedCount == 0 {
		r.logger.Warn("Attempted to delete non-existent order", "order_id", id)
		return ErrNotFound
	}

	r.logger.Info("Deleted order", "order_id", id)
	return nil
}
