package repositories

// In-memory repository implementations. They satisfy the same interfaces
// as the MongoDB-backed repositories and follow the same contracts
// (sorting, caps, not-found mapping), which makes handlers and services
// testable without a running database.

import (
	"context"
	"sort"
	"sync"

	"github.com/thedrumepic/med/models"
)

type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]models.Category
	insertion  []string
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{categories: map[string]models.Category{}}
}

func (r *InMemoryCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Category, 0, len(r.categories))
	for _, id := range r.insertion {
		all = append(all, r.categories[id])
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Order < all[j].Order })

	if len(all) > listCategoriesLimit {
		all = all[:listCategoriesLimit]
	}
	return all, nil
}

func (r *InMemoryCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (r *InMemoryCategoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.categories)), nil
}

func (r *InMemoryCategoryRepository) Create(ctx context.Context, category models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[category.ID] = category
	r.insertion = append(r.insertion, category.ID)
	return nil
}

func (r *InMemoryCategoryRepository) Update(ctx context.Context, id string, category models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.categories[id]
	if !ok {
		return ErrNotFound
	}
	existing.Name = category.Name
	existing.Slug = category.Slug
	r.categories[id] = existing
	return nil
}

func (r *InMemoryCategoryRepository) UpdateOrder(ctx context.Context, id string, order int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.categories[id]
	if !ok {
		return ErrNotFound
	}
	existing.Order = order
	r.categories[id] = existing
	return nil
}

func (r *InMemoryCategoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.categories, id)
	for i, existing := range r.insertion {
		if existing == id {
			r.insertion = append(r.insertion[:i], r.insertion[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryCategoryRepository) InsertMany(ctx context.Context, categories []models.Category) error {
	for _, category := range categories {
		if err := r.Create(ctx, category); err != nil {
			return err
		}
	}
	return nil
}

type InMemoryProductRepository struct {
	mu        sync.RWMutex
	products  map[string]models.Product
	insertion []string
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: map[string]models.Product{}}
}

func (r *InMemoryProductRepository) GetAll(ctx context.Context, categoryID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Product, 0, len(r.products))
	for _, id := range r.insertion {
		product := r.products[id]
		if categoryID != "" && product.CategoryID != categoryID {
			continue
		}
		all = append(all, product)
		if len(all) == listProductsLimit {
			break
		}
	}
	return all, nil
}

func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (r *InMemoryProductRepository) Create(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = product
	r.insertion = append(r.insertion, product.ID)
	return nil
}

func (r *InMemoryProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return ErrNotFound
	}

	for field, value := range fields {
		switch field {
		case "name":
			product.Name = value.(string)
		case "description":
			product.Description = value.(string)
		case "category_id":
			product.CategoryID = value.(string)
		case "image":
			product.Image = value.(string)
		case "base_price":
			product.BasePrice = value.(float64)
		case "weight_prices":
			product.WeightPrices = value.([]models.WeightPrice)
		}
	}

	r.products[id] = product
	return nil
}

func (r *InMemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	for i, existing := range r.insertion {
		if existing == id {
			r.insertion = append(r.insertion[:i], r.insertion[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	for _, product := range products {
		if err := r.Create(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

type InMemoryOrderRepository struct {
	mu        sync.RWMutex
	orders    map[string]models.Order
	insertion []string
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: map[string]models.Order{}}
}

func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Order, 0, len(r.orders))
	for _, id := range r.insertion {
		all = append(all, r.orders[id])
		if len(all) == listOrdersLimit {
			break
		}
	}
	return all, nil
}

func (r *InMemoryOrderRepository) Create(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = order
	r.insertion = append(r.insertion, order.ID)
	return nil
}

func (r *InMemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	for i, existing := range r.insertion {
		if existing == id {
			r.insertion = append(r.insertion[:i], r.insertion[i+1:]...)
			break
		}
	}
	return nil
}

type InMemoryPromocodeRepository struct {
	mu         sync.RWMutex
	promocodes map[string]models.Promocode
	insertion  []string
}

func NewInMemoryPromocodeRepository() *InMemoryPromocodeRepository {
	return &InMemoryPromocodeRepository{promocodes: map[string]models.Promocode{}}
}

func (r *InMemoryPromocodeRepository) GetAll(ctx context.Context) ([]models.Promocode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Promocode, 0, len(r.promocodes))
	for _, id := range r.insertion {
		all = append(all, r.promocodes[id])
		if len(all) == listPromocodesLimit {
			break
		}
	}
	return all, nil
}

func (r *InMemoryPromocodeRepository) GetByCode(ctx context.Context, code string) (*models.Promocode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, promocode := range r.promocodes {
		if promocode.Code == code {
			return &promocode, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryPromocodeRepository) Create(ctx context.Context, promocode models.Promocode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.promocodes[promocode.ID] = promocode
	r.insertion = append(r.insertion, promocode.ID)
	return nil
}

func (r *InMemoryPromocodeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.promocodes[id]; !ok {
		return ErrNotFound
	}
	delete(r.promocodes, id)
	for i, existing := range r.insertion {
		if existing == id {
			r.insertion = append(r.insertion[:i], r.insertion[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryPromocodeRepository) IncrementUsage(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, promocode := range r.promocodes {
		if promocode.Code == code && promocode.IsActive {
			promocode.CurrentUses++
			r.promocodes[id] = promocode
			return nil
		}
	}
	return ErrNotFound
}
