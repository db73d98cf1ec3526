package service

import (
	"context"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/pkg/logger"
)

// SeedResult reports what the seed operation did. Counts are omitted
// when the catalog was already populated.
type SeedResult struct {
	Message    string `json:"message"`
	Categories int    `json:"categories,omitempty"`
	Products   int    `json:"products,omitempty"`
}

type SeedServiceInterface interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type SeedService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	productRepo  repositories.ProductRepositoryInterface
	logger       *logger.Logger
}

func NewSeedService(categoryRepo repositories.CategoryRepositoryInterface, productRepo repositories.ProductRepositoryInterface, log *logger.Logger) *SeedService {
	return &SeedService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       log.WithComponent("seed_service"),
	}
}

// Seed bulk-inserts the fixed catalog once. Any existing category makes
// the whole operation a no-op. The existence check and the insert are
// not atomic; concurrent seeding is a known acceptable risk for a
// single-operator tool.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to check for existing catalog", "error", err)
		return nil, err
	}
	if count > 0 {
		s.logger.Info("Seed skipped: catalog already populated", "categories", count)
		return &SeedResult{Message: "Data already seeded"}, nil
	}

	categories := seedCategories()
	if err := s.categoryRepo.InsertMany(ctx, categories); err != nil {
		s.logger.Error("Failed to seed categories", "error", err)
		return nil, err
	}

	products := seedProducts()
	if err := s.productRepo.InsertMany(ctx, products); err != nil {
		s.logger.Error("Failed to seed products", "error", err)
		return nil, err
	}

	s.logger.Info("Catalog seeded", "categories", len(categories), "products", len(products))
	return &SeedResult{
		Message:    "Data seeded successfully",
		Categories: len(categories),
		Products:   len(products),
	}, nil
}
