package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/models"
	"github.com/thedrumepic/med/pkg/logger"
)

type CreatePromocodeRequest struct {
	Code          string              `json:"code"`
	DiscountType  models.DiscountType `json:"discount_type"`
	DiscountValue float64             `json:"discount_value"`
	MaxUses       int                 `json:"max_uses"`
}

// PromocodeValidation is the outcome of checking a code against the
// promocodes collection for a given subtotal.
type PromocodeValidation struct {
	Valid         bool                `json:"valid"`
	Message       string              `json:"message,omitempty"`
	Code          string              `json:"code,omitempty"`
	DiscountType  models.DiscountType `json:"discount_type,omitempty"`
	DiscountValue float64             `json:"discount_value,omitempty"`
	Discount      float64             `json:"discount"`
}

type PromocodeServiceInterface interface {
	ListPromocodes(ctx context.Context) ([]models.Promocode, error)
	CreatePromocode(ctx context.Context, req CreatePromocodeRequest) (*models.Promocode, error)
	DeletePromocode(ctx context.Context, id string) error
	ValidatePromocode(ctx context.Context, code string, subtotal float64) (*PromocodeValidation, error)
}

type PromocodeService struct {
	promoRepo repositories.PromocodeRepositoryInterface
	logger    *logger.Logger
}

func NewPromocodeService(promoRepo repositories.PromocodeRepositoryInterface, log *logger.Logger) *PromocodeService {
	return &PromocodeService{
		promoRepo: promoRepo,
		logger:    log.WithComponent("promocode_service"),
	}
}

// ListPromocodes returns all promocodes with their usage counters
func (s *PromocodeService) ListPromocodes(ctx context.Context) ([]models.Promocode, error) {
	promocodes, err := s.promoRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list promocodes", "error", err)
		return nil, err
	}
	return promocodes, nil
}

// CreatePromocode creates a new active promocode with zero uses
func (s *PromocodeService) CreatePromocode(ctx context.Context, req CreatePromocodeRequest) (*models.Promocode, error) {
	if err := validateCreatePromocodeRequest(req); err != nil {
		s.logger.Warn("Create failed: invalid promocode data", "error", err)
		return nil, err
	}

	promocode := models.Promocode{
		ID:            uuid.NewString(),
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MaxUses:       req.MaxUses,
		CurrentUses:   0,
		IsActive:      true,
	}

	if err := s.promoRepo.Create(ctx, promocode); err != nil {
		s.logger.Error("Failed to create promocode", "error", err)
		return nil, err
	}

	s.logger.Info("Promocode created", "promocode_id", promocode.ID, "code", promocode.Code)
	return &promocode, nil
}

// DeletePromocode removes a promocode by ID
func (s *PromocodeService) DeletePromocode(ctx context.Context, id string) error {
	if err := s.promoRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Promocode deleted", "promocode_id", id)
	return nil
}

// ValidatePromocode checks a code and computes the discount it would
// grant on the given subtotal. An unknown, inactive or exhausted code is
// reported as invalid, not as an error.
func (s *PromocodeService) ValidatePromocode(ctx context.Context, code string, subtotal float64) (*PromocodeValidation, error) {
	if code == "" {
		return nil, validationErrorf("code is required")
	}

	promocode, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &PromocodeValidation{Valid: false, Message: "Promocode not found"}, nil
		}
		return nil, err
	}

	if !promocode.IsActive {
		return &PromocodeValidation{Valid: false, Message: "Promocode is not active"}, nil
	}
	if promocode.MaxUses > 0 && promocode.CurrentUses >= promocode.MaxUses {
		return &PromocodeValidation{Valid: false, Message: "Promocode usage limit reached"}, nil
	}

	var discount float64
	switch promocode.DiscountType {
	case models.DiscountPercent:
		discount = subtotal * promocode.DiscountValue / 100
	case models.DiscountFixed:
		discount = promocode.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}

	return &PromocodeValidation{
		Valid:         true,
		Code:          promocode.Code,
		DiscountType:  promocode.DiscountType,
		DiscountValue: promocode.DiscountValue,
		Discount:      discount,
	}, nil
}

func validateCreatePromocodeRequest(req CreatePromocodeRequest) error {
	if req.Code == "" {
		return validationErrorf("code is required")
	}
	if req.DiscountType != models.DiscountPercent && req.DiscountType != models.DiscountFixed {
		return validationErrorf("discount_type must be %q or %q", models.DiscountPercent, models.DiscountFixed)
	}
	if req.DiscountValue <= 0 {
		return validationErrorf("discount_value must be positive")
	}
	if req.MaxUses < 0 {
		return validationErrorf("max_uses must be non-negative")
	}
	return nil
}
