package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/testhelpers"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

func TestPlaceOrderPricesFromCatalog(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	orders := service.NewOrderService(db)
	products := service.NewProductService(db)
	ctx := context.Background()

	buyer := createUser(t, db, "buyer@example.com", models.RoleUser)
	rice := createProduct(t, db, "Red Rice 1kg", 450, 10)
	flour := createProduct(t, db, "Kurakkan Flour", 380.5, 3)

	order, err := orders.PlaceOrder(ctx, buyer.ID, types.CreateOrderRequest{
		OrderItems: []types.OrderItemRequest{
			{Product: rice.ID.String(), Quantity: 2},
			{Product: flour.ID.String(), Quantity: 1},
		},
		ShippingAddress: models.ShippingAddress{Address: "12 Galle Rd", City: "Colombo", Country: "Sri Lanka"},
		PaymentMethod:   "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, 1280.5, order.ItemsPrice)
	assert.Equal(t, float64(service.DefaultShippingPrice), order.ShippingPrice)
	assert.Equal(t, 1480.5, order.TotalPrice)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, "Red Rice 1kg", order.OrderItems[0].Name)
	assert.Equal(t, 450.0, order.OrderItems[0].Price)
	assert.False(t, order.IsPaid)

	stock, err := products.Get(ctx, rice.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stock.CountInStock)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	orders := service.NewOrderService(db)
	products := service.NewProductService(db)
	ctx := context.Background()

	buyer := createUser(t, db, "buyer@example.com", models.RoleUser)
	rice := createProduct(t, db, "Red Rice 1kg", 450, 10)
	flour := createProduct(t, db, "Kurakkan Flour", 380, 1)

	_, err := orders.PlaceOrder(ctx, buyer.ID, types.CreateOrderRequest{
		OrderItems: []types.OrderItemRequest{
			{Product: rice.ID.String(), Quantity: 2},
			{Product: flour.ID.String(), Quantity: 5},
		},
		PaymentMethod: "cash",
	})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "orderItems.quantity", verr.Field)

	stock, err := products.Get(ctx, rice.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stock.CountInStock)

	mine, err := orders.ListForUser(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	orders := service.NewOrderService(db)

	_, err := orders.PlaceOrder(context.Background(), uuid.New(), types.CreateOrderRequest{
		OrderItems:    []types.OrderItemRequest{{Product: uuid.NewString(), Quantity: 1}},
		PaymentMethod: "cash",
	})
	assert.True(t, service.IsValidation(err))
}

func TestOrderAccess(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	orders := service.NewOrderService(db)
	ctx := context.Background()

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	stranger := createUser(t, db, "stranger@example.com", models.RoleUser)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	product := createProduct(t, db, "Tea", 650, 5)

	order, err := orders.PlaceOrder(ctx, owner.ID, types.CreateOrderRequest{
		OrderItems:    []types.OrderItemRequest{{Product: product.ID.String(), Quantity: 1}},
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	_, err = orders.GetForActor(ctx, order.ID, owner)
	assert.NoError(t, err)
	_, err = orders.GetForActor(ctx, order.ID, admin)
	assert.NoError(t, err)
	_, err = orders.GetForActor(ctx, order.ID, stranger)
	assert.ErrorIs(t, err, service.ErrForbidden)

	all, err := orders.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOrderStatusIsMonotonic(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	orders := service.NewOrderService(db)
	ctx := context.Background()

	owner := createUser(t, db, "owner@example.com", models.RoleUser)
	product := createProduct(t, db, "Tea", 650, 5)
	order, err := orders.PlaceOrder(ctx, owner.ID, types.CreateOrderRequest{
		OrderItems:    []types.OrderItemRequest{{Product: product.ID.String(), Quantity: 1}},
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	yes, no := true, false

	paid, err := orders.UpdateStatus(ctx, order.ID, types.UpdateOrderStatusRequest{IsPaid: &yes})
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)
	assert.False(t, paid.IsDelivered)
	assert.Nil(t, paid.DeliveredAt)

	// Marking paid again keeps the original timestamp.
	again, err := orders.UpdateStatus(ctx, order.ID, types.UpdateOrderStatusRequest{IsPaid: &yes, IsDelivered: &yes})
	require.NoError(t, err)
	assert.True(t, again.PaidAt.Equal(*paid.PaidAt))
	assert.True(t, again.IsDelivered)
	assert.NotNil(t, again.DeliveredAt)

	_, err = orders.UpdateStatus(ctx, order.ID, types.UpdateOrderStatusRequest{IsPaid: &no})
	assert.True(t, service.IsValidation(err))

	_, err = orders.UpdateStatus(ctx, order.ID, types.UpdateOrderStatusRequest{})
	assert.True(t, service.IsValidation(err))
}
