// Copyright (C) 2025 ShopGrid Contributors
// Tests for the query/mutation facade

package facade

import (
	"errors"
	"testing"

	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
	"github.com/shopgrid/shopgrid/services/storefront/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Helpers
// =============================================================================

func newTestFacade(t *testing.T) *Facade {
	t.Helper()
	return New(store.NewUserStore(), store.NewProductStore(), store.NewOrderStore())
}

func address() datatypes.ShippingAddress {
	return datatypes.ShippingAddress{
		Street: "1 Pier Rd", City: "Seattle", State: "WA", ZipCode: "98101",
	}
}

// =============================================================================
// Total Derivation
// =============================================================================

func TestOrderTotal(t *testing.T) {
	items := []datatypes.OrderItem{
		{ProductID: "a", Quantity: 2, Price: 10},
		{ProductID: "b", Quantity: 3, Price: 1.5},
	}
	assert.InDelta(t, 24.5, OrderTotal(items), 1e-9)
	assert.Zero(t, OrderTotal(nil))
}

func TestCreateOrder_DerivesTotalFromItems(t *testing.T) {
	f := newTestFacade(t)

	detail := f.CreateOrder(datatypes.CreateOrderInput{
		UserID: "u1",
		Items: []datatypes.OrderItemInput{
			{ProductID: "p1", Quantity: 2, Price: 10},
			{ProductID: "p2", Quantity: 1, Price: 5.5},
		},
		ShippingAddress: address(),
	})

	assert.InDelta(t, 25.5, detail.Total, 1e-9)
	assert.Equal(t, "pending", detail.Status)
}

func TestUpdateOrder_WithItemsRecomputesTotal(t *testing.T) {
	f := newTestFacade(t)
	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u1",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 2, Price: 10}},
		ShippingAddress: address(),
	})

	updated, err := f.UpdateOrder(created.ID, datatypes.UpdateOrderInput{
		Items: []datatypes.OrderItemInput{{ProductID: "p2", Quantity: 4, Price: 2}},
	})
	require.NoError(t, err)

	assert.InDelta(t, 8, updated.Total, 1e-9)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "p2", updated.Items[0].ProductID)
}

// An empty (but present) item list recomputes the total to zero. Only a
// truly absent list skips recomputation.
func TestUpdateOrder_WithEmptyItemsZeroesTotal(t *testing.T) {
	f := newTestFacade(t)
	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u1",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 2, Price: 10}},
		ShippingAddress: address(),
	})

	updated, err := f.UpdateOrder(created.ID, datatypes.UpdateOrderInput{
		Items: []datatypes.OrderItemInput{},
	})
	require.NoError(t, err)

	assert.Zero(t, updated.Total)
	assert.Empty(t, updated.Items)
}

// An update that omits items leaves the stored total exactly as it was,
// even when it no longer matches the items. This pass-through is the
// documented contract, so the test pins it down rather than fixing it.
func TestUpdateOrder_WithoutItemsLeavesStaleTotal(t *testing.T) {
	f := newTestFacade(t)
	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u1",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 2, Price: 10}},
		ShippingAddress: address(),
	})

	// First drive the items and total apart via an items update...
	zeroed, err := f.UpdateOrder(created.ID, datatypes.UpdateOrderInput{
		Items: []datatypes.OrderItemInput{},
	})
	require.NoError(t, err)
	require.Zero(t, zeroed.Total)

	// ...then confirm a status-only update does not touch the total.
	status := "processing"
	updated, err := f.UpdateOrder(created.ID, datatypes.UpdateOrderInput{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "processing", updated.Status)
	assert.Zero(t, updated.Total)
	assert.Empty(t, updated.Items)
}

func TestAddOrderItem_RecomputesOverFullList(t *testing.T) {
	f := newTestFacade(t)
	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u1",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 2, Price: 10}},
		ShippingAddress: address(),
	})

	updated, err := f.AddOrderItem(created.ID, datatypes.OrderItemInput{
		ProductID: "p2", Quantity: 3, Price: 2,
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.InDelta(t, 26, updated.Total, 1e-9)
}

// Same product twice means two lines; the total still covers both.
func TestAddOrderItem_DuplicateProductAddsSecondLine(t *testing.T) {
	f := newTestFacade(t)
	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u1",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 10}},
		ShippingAddress: address(),
	})

	updated, err := f.AddOrderItem(created.ID, datatypes.OrderItemInput{
		ProductID: "p1", Quantity: 1, Price: 10,
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.InDelta(t, 20, updated.Total, 1e-9)
}

func TestAddOrderItem_MissingOrder(t *testing.T) {
	f := newTestFacade(t)
	_, err := f.AddOrderItem("missing", datatypes.OrderItemInput{ProductID: "p1", Quantity: 1, Price: 1})
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

// =============================================================================
// Weak Reference Resolution
// =============================================================================

func TestGetOrder_ResolvesUserAndProducts(t *testing.T) {
	users := store.NewUserStore()
	products := store.NewProductStore()
	orders := store.NewOrderStore()
	f := New(users, products, orders)

	u := f.CreateUser(datatypes.CreateUserInput{Name: "A", Email: "a@example.com"})
	p := f.CreateProduct(datatypes.CreateProductInput{Name: "Widget", Price: 10, Category: "Tools", Stock: 5})

	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          u.ID,
		Items:           []datatypes.OrderItemInput{{ProductID: p.ID, Quantity: 2, Price: 10}},
		ShippingAddress: address(),
	})

	detail, err := f.GetOrder(created.ID)
	require.NoError(t, err)

	assert.InDelta(t, 20, detail.Total, 1e-9)
	require.NotNil(t, detail.User)
	assert.Equal(t, "A", detail.User.Name)
	require.Len(t, detail.Items, 1)
	require.NotNil(t, detail.Items[0].Product)
	assert.Equal(t, "Widget", detail.Items[0].Product.Name)
}

// Creating an order for an unknown user succeeds; the reference is weak.
func TestCreateOrder_UnknownUserIsAccepted(t *testing.T) {
	f := newTestFacade(t)

	detail := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "nobody",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 1}},
		ShippingAddress: address(),
	})

	assert.Equal(t, "nobody", detail.UserID)
	assert.Nil(t, detail.User)
}

// Deleting the user leaves the order orphaned: userId stays, user resolves nil.
func TestDeleteUser_OrphansTheirOrders(t *testing.T) {
	f := newTestFacade(t)

	u := f.CreateUser(datatypes.CreateUserInput{Name: "A", Email: "a@example.com"})
	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          u.ID,
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 1}},
		ShippingAddress: address(),
	})

	_, err := f.DeleteUser(u.ID)
	require.NoError(t, err)

	detail, err := f.GetOrder(created.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, detail.UserID)
	assert.Nil(t, detail.User)
}

// Deleting a product keeps the line's price snapshot; only resolution nils.
func TestDeleteProduct_LinesKeepTheirSnapshot(t *testing.T) {
	f := newTestFacade(t)

	p := f.CreateProduct(datatypes.CreateProductInput{Name: "Widget", Price: 10, Category: "Tools"})
	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u1",
		Items:           []datatypes.OrderItemInput{{ProductID: p.ID, Quantity: 2, Price: 10}},
		ShippingAddress: address(),
	})

	_, err := f.DeleteProduct(p.ID)
	require.NoError(t, err)

	detail, err := f.GetOrder(created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, p.ID, detail.Items[0].ProductID)
	assert.Equal(t, 10.0, detail.Items[0].Price)
	assert.Nil(t, detail.Items[0].Product)
	assert.InDelta(t, 20, detail.Total, 1e-9)
}

func TestGetUser_IncludesTheirOrders(t *testing.T) {
	f := newTestFacade(t)

	u := f.CreateUser(datatypes.CreateUserInput{Name: "A", Email: "a@example.com"})
	f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          u.ID,
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 1}},
		ShippingAddress: address(),
	})
	f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "someone-else",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 1}},
		ShippingAddress: address(),
	})

	detail, err := f.GetUser(u.ID)
	require.NoError(t, err)
	require.Len(t, detail.Orders, 1)
	assert.Equal(t, u.ID, detail.Orders[0].UserID)
}

func TestGetUser_WithoutOrdersGetsEmptyList(t *testing.T) {
	f := newTestFacade(t)
	u := f.CreateUser(datatypes.CreateUserInput{Name: "A", Email: "a@example.com"})

	detail, err := f.GetUser(u.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Orders)
	assert.Empty(t, detail.Orders)
}

// =============================================================================
// Not Found Propagation
// =============================================================================

func TestFacade_NotFoundErrors(t *testing.T) {
	f := newTestFacade(t)

	_, err := f.GetUser("missing")
	assert.True(t, errors.Is(err, store.ErrNotFound))

	_, err = f.GetProduct("missing")
	assert.True(t, errors.Is(err, store.ErrNotFound))

	_, err = f.GetOrder("missing")
	assert.True(t, errors.Is(err, store.ErrNotFound))

	_, err = f.DeleteOrder("missing")
	assert.True(t, errors.Is(err, store.ErrNotFound))

	_, err = f.SetOrderStatus("missing", "shipped")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestDeleteOrder_ThenGetFails(t *testing.T) {
	f := newTestFacade(t)
	created := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u1",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 1}},
		ShippingAddress: address(),
	})

	removed, err := f.DeleteOrder(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = f.GetOrder(created.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

// =============================================================================
// Filtered Queries
// =============================================================================

func TestOrdersByUserAndStatus(t *testing.T) {
	f := newTestFacade(t)

	a := f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u1",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 1}},
		ShippingAddress: address(),
	})
	f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          "u2",
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 1}},
		Status:          "completed",
		ShippingAddress: address(),
	})

	byUser := f.OrdersByUser("u1")
	require.Len(t, byUser, 1)
	assert.Equal(t, a.ID, byUser[0].ID)

	byStatus := f.OrdersByStatus("completed")
	require.Len(t, byStatus, 1)
	assert.Equal(t, "u2", byStatus[0].UserID)

	assert.Empty(t, f.OrdersByUser("unknown"))
	assert.Empty(t, f.OrdersByStatus("unknown"))
}

// =============================================================================
// Store Sizes
// =============================================================================

// The count accessors go straight to the store Len(), skipping reference
// resolution. They must still agree with the resolved list lengths.
func TestCounts_TrackCreatesAndDeletes(t *testing.T) {
	f := newTestFacade(t)
	assert.Zero(t, f.UserCount())
	assert.Zero(t, f.ProductCount())
	assert.Zero(t, f.OrderCount())

	u := f.CreateUser(datatypes.CreateUserInput{Name: "A", Email: "a@example.com"})
	f.CreateProduct(datatypes.CreateProductInput{Name: "Mug", Price: 4, Category: "kitchen"})
	f.CreateOrder(datatypes.CreateOrderInput{
		UserID:          u.ID,
		Items:           []datatypes.OrderItemInput{{ProductID: "p1", Quantity: 1, Price: 1}},
		ShippingAddress: address(),
	})

	assert.Equal(t, 1, f.UserCount())
	assert.Equal(t, 1, f.ProductCount())
	assert.Equal(t, 1, f.OrderCount())
	assert.Equal(t, len(f.ListOrders()), f.OrderCount())

	_, err := f.DeleteUser(u.ID)
	require.NoError(t, err)
	assert.Zero(t, f.UserCount())
}
