package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/models"
	"github.com/thedrumepic/med/pkg/logger"
)

// CreateOrderRequest describes a checkout submission. Subtotal and Total
// are pointers so an absent field is distinguishable from an explicit
// zero and can be rejected as missing; Discount defaults to zero.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []models.OrderItem `json:"items"`
	Subtotal      *float64           `json:"subtotal"`
	Discount      float64            `json:"discount"`
	Total         *float64           `json:"total"`
	Promocode     *string            `json:"promocode"`
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	promoRepo repositories.PromocodeRepositoryInterface
	logger    *logger.Logger
}

func NewOrderService(orderRepo repositories.OrderRepositoryInterface, promoRepo repositories.PromocodeRepositoryInterface, log *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		promoRepo: promoRepo,
		logger:    log.WithComponent("order_service"),
	}
}

// CreateOrder captures a checkout. Subtotal, discount and total are
// stored exactly as submitted: the storefront computed them and the
// server does not second-guess the arithmetic. A promocode string that
// matches a known active code gets its usage counted; anything else
// passes through untouched.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if err := validateCreateOrderRequest(req); err != nil {
		s.logger.Warn("Create failed: invalid order data", "error", err)
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	items = append(items, req.Items...)

	order := models.Order{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		Subtotal:      *req.Subtotal,
		Discount:      req.Discount,
		Total:         *req.Total,
		Promocode:     req.Promocode,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", "error", err)
		return nil, err
	}

	if req.Promocode != nil && *req.Promocode != "" {
		// Best effort: promo bookkeeping must never fail a captured order.
		if err := s.promoRepo.IncrementUsage(ctx, *req.Promocode); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				s.logger.Debug("Order carried unknown promocode", "order_id", order.ID, "promocode", *req.Promocode)
			} else {
				s.logger.Warn("Failed to count promocode use", "order_id", order.ID, "promocode", *req.Promocode, "error", err)
			}
		}
	}

	s.logger.Info("Order created", "order_id", order.ID, "items", len(order.Items), "total", order.Total)
	return &order, nil
}

// ListOrders returns all captured orders with their item lists intact
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", "error", err)
		return nil, err
	}
	return orders, nil
}

// DeleteOrder removes an order by ID
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Order deleted", "order_id", id)
	return nil
}

func validateCreateOrderRequest(req CreateOrderRequest) error {
	if req.CustomerName == "" {
		return validationErrorf("customer_name is required")
	}
	if req.CustomerPhone == "" {
		return validationErrorf("customer_phone is required")
	}
	if req.Items == nil {
		return validationErrorf("items is required")
	}
	if req.Subtotal == nil {
		return validationErrorf("subtotal is required")
	}
	if req.Total == nil {
		return validationErrorf("total is required")
	}
	for i, item := range req.Items {
		if item.Name == "" {
			return validationErrorf("items[%d]: name is required", i)
		}
		if item.Quantity <= 0 {
			return validationErrorf("items[%d]: quantity must be positive", i)
		}
	}
	return nil
}
