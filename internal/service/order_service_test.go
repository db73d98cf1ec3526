package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/models"
)

func newOrderService() (*OrderService, *repositories.InMemoryOrderRepository, *repositories.InMemoryPromocodeRepository) {
	orderRepo := repositories.NewInMemoryOrderRepository()
	promoRepo := repositories.NewInMemoryPromocodeRepository()
	return NewOrderService(orderRepo, promoRepo, testLogger()), orderRepo, promoRepo
}

func strPtr(s string) *string { return &s }

func TestCreateOrderPersistsTotalsVerbatim(t *testing.T) {
	svc, _, _ := newOrderService()

	// Total deliberately inconsistent with subtotal-discount: the server
	// must not recompute.
	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName:  "Тест Покупатель",
		CustomerPhone: "+7 (700) 111 22 33",
		Items: []models.OrderItem{
			{Name: "Мёд Разнотравье", Weight: strPtr("250гр"), Price: 1201, Quantity: 2},
			{Name: "Пыльца цветочная", Weight: strPtr("100гр"), Price: 1500, Quantity: 1},
		},
		Subtotal: floatPtr(3902),
		Discount: 0,
		Total:    floatPtr(9999),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.CreatedAt)
	assert.Equal(t, 3902.0, order.Subtotal)
	assert.Equal(t, 9999.0, order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Мёд Разнотравье", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Nil(t, order.Promocode)
}

func TestCreateOrderCountsKnownPromocode(t *testing.T) {
	svc, _, promoRepo := newOrderService()

	require.NoError(t, promoRepo.Create(context.Background(), models.Promocode{
		ID: "promo-1", Code: "HONEY10", DiscountType: models.DiscountPercent,
		DiscountValue: 10, MaxUses: 100, IsActive: true,
	}))

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName:  "Промо Покупатель",
		CustomerPhone: "+7 (700) 222 33 44",
		Items:         []models.OrderItem{{Name: "Мёд Гречишный", Price: 3500, Quantity: 1}},
		Subtotal:      floatPtr(3500),
		Discount:      350,
		Total:         floatPtr(3150),
		Promocode:     strPtr("HONEY10"),
	})
	require.NoError(t, err)
	require.NotNil(t, order.Promocode)
	assert.Equal(t, "HONEY10", *order.Promocode)
	assert.Equal(t, 350.0, order.Discount)

	promo, err := promoRepo.GetByCode(context.Background(), "HONEY10")
	require.NoError(t, err)
	assert.Equal(t, 1, promo.CurrentUses)
}

func TestCreateOrderIgnoresUnknownPromocode(t *testing.T) {
	svc, orderRepo, _ := newOrderService()

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName:  "Покупатель",
		CustomerPhone: "+7 (700) 000 00 00",
		Items:         []models.OrderItem{{Name: "Мёд", Price: 1000, Quantity: 1}},
		Subtotal:      floatPtr(1000),
		Discount:      100,
		Total:         floatPtr(900),
		Promocode:     strPtr("TESTPROMO"),
	})
	require.NoError(t, err, "unknown promocode must not fail the order")
	require.NotNil(t, order.Promocode)
	assert.Equal(t, "TESTPROMO", *order.Promocode)

	orders, err := orderRepo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, _ := newOrderService()
	var vErr *ValidationError

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{CustomerPhone: "+7"})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateOrder(context.Background(), CreateOrderRequest{CustomerName: "x"})
	require.ErrorAs(t, err, &vErr)

	// items, subtotal and total must all be present.
	_, err = svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName: "x", CustomerPhone: "+7",
		Subtotal: floatPtr(1), Total: floatPtr(1),
	})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName: "x", CustomerPhone: "+7",
		Items: []models.OrderItem{{Name: "Мёд", Price: 1, Quantity: 1}},
		Total: floatPtr(1),
	})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName: "x", CustomerPhone: "+7",
		Items:    []models.OrderItem{{Name: "Мёд", Price: 1, Quantity: 1}},
		Subtotal: floatPtr(1),
	})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName: "x", CustomerPhone: "+7",
		Items:    []models.OrderItem{{Name: "Мёд", Price: 1, Quantity: 0}},
		Subtotal: floatPtr(1), Total: floatPtr(1),
	})
	require.ErrorAs(t, err, &vErr)
}

func TestListAndDeleteOrders(t *testing.T) {
	svc, _, _ := newOrderService()

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName: "x", CustomerPhone: "+7",
		Items:    []models.OrderItem{{Name: "Мёд", Price: 1, Quantity: 1}},
		Subtotal: floatPtr(1), Total: floatPtr(1),
	})
	require.NoError(t, err)

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))
	assert.ErrorIs(t, svc.DeleteOrder(context.Background(), order.ID), repositories.ErrNotFound)
}
