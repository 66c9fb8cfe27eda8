// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package facade is the operation surface between transport and stores.
//
// It maps external requests onto repository operations, derives order
// totals, and resolves weak references (order→user, order item→product,
// user→orders) at read time. Resolution is recomputed on every call and
// never cached; a dangling reference resolves to nil, not an error.
//
// Store-level ErrNotFound passes through untranslated; the transport layer
// maps it to its own error envelope.
package facade

import (
	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
	"github.com/shopgrid/shopgrid/services/storefront/store"
)

// Facade exposes the query/mutation surface over the three repositories.
// Repositories are injected explicitly; the façade owns no state of its own.
type Facade struct {
	users    *store.UserStore
	products *store.ProductStore
	orders   *store.OrderStore
}

// New creates a façade over the given repositories.
func New(users *store.UserStore, products *store.ProductStore, orders *store.OrderStore) *Facade {
	return &Facade{users: users, products: products, orders: orders}
}

// =============================================================================
// User Operations
// =============================================================================

// ListUsers returns all users in insertion order.
func (f *Facade) ListUsers() []datatypes.User {
	return f.users.GetAll()
}

// GetUser returns a user with their orders resolved.
func (f *Facade) GetUser(id string) (datatypes.UserDetail, error) {
	u, ok := f.users.GetByID(id)
	if !ok {
		return datatypes.UserDetail{}, notFound("user", id)
	}
	return datatypes.UserDetail{User: u, Orders: f.orders.GetByUserID(id)}, nil
}

// CreateUser creates a user.
func (f *Facade) CreateUser(in datatypes.CreateUserInput) datatypes.User {
	return f.users.Create(in)
}

// UpdateUser applies a partial update to a user.
func (f *Facade) UpdateUser(id string, in datatypes.UpdateUserInput) (datatypes.User, error) {
	return f.users.Update(id, in)
}

// DeleteUser removes a user and returns the removed record. Orders that
// reference the user are not cascaded; their userId goes dangling.
func (f *Facade) DeleteUser(id string) (datatypes.User, error) {
	return f.users.Delete(id)
}

// =============================================================================
// Product Operations
// =============================================================================

// ListProducts returns all products in insertion order.
func (f *Facade) ListProducts() []datatypes.Product {
	return f.products.GetAll()
}

// GetProduct returns a single product.
func (f *Facade) GetProduct(id string) (datatypes.Product, error) {
	p, ok := f.products.GetByID(id)
	if !ok {
		return datatypes.Product{}, notFound("product", id)
	}
	return p, nil
}

// ProductsByCategory returns the products in a category (exact match).
func (f *Facade) ProductsByCategory(category string) []datatypes.Product {
	return f.products.GetByCategory(category)
}

// CreateProduct creates a product.
func (f *Facade) CreateProduct(in datatypes.CreateProductInput) datatypes.Product {
	return f.products.Create(in)
}

// UpdateProduct applies a partial update to a product.
func (f *Facade) UpdateProduct(id string, in datatypes.UpdateProductInput) (datatypes.Product, error) {
	return f.products.Update(id, in)
}

// DeleteProduct removes a product and returns the removed record. Order
// lines referencing it keep their price snapshot; their product resolves
// to nil from then on.
func (f *Facade) DeleteProduct(id string) (datatypes.Product, error) {
	return f.products.Delete(id)
}

// AdjustProductStock adds a signed delta to a product's stock.
func (f *Facade) AdjustProductStock(id string, delta int) (datatypes.Product, error) {
	return f.products.AdjustStock(id, delta)
}

// =============================================================================
// Order Operations
// =============================================================================

// ListOrders returns all orders with their references resolved.
func (f *Facade) ListOrders() []datatypes.OrderDetail {
	return f.resolveAll(f.orders.GetAll())
}

// GetOrder returns a single order with its references resolved.
func (f *Facade) GetOrder(id string) (datatypes.OrderDetail, error) {
	o, ok := f.orders.GetByID(id)
	if !ok {
		return datatypes.OrderDetail{}, notFound("order", id)
	}
	return f.resolveOrder(o), nil
}

// OrdersByUser returns the orders placed by a user. An unknown userId
// yields an empty list: the reference is weak, so absence is not an error.
func (f *Facade) OrdersByUser(userID string) []datatypes.OrderDetail {
	return f.resolveAll(f.orders.GetByUserID(userID))
}

// OrdersByStatus returns the orders in the given status (exact match).
func (f *Facade) OrdersByStatus(status string) []datatypes.OrderDetail {
	return f.resolveAll(f.orders.GetByStatus(status))
}

// CreateOrder creates an order. The total is always derived from the input
// items; any total in the payload is ignored by construction (the input
// type has no total field). UserID is stored unchecked.
func (f *Facade) CreateOrder(in datatypes.CreateOrderInput) datatypes.OrderDetail {
	o := f.orders.Create(in, itemTotal(in.Items))
	return f.resolveOrder(o)
}

// UpdateOrder applies a partial update to an order.
//
// When the payload includes items, the total is recomputed over the new
// item list before the merge. When items are omitted the stored total is
// left exactly as it was, even if it has drifted — this mirrors the
// reference behavior and is asserted by tests rather than silently fixed.
func (f *Facade) UpdateOrder(id string, in datatypes.UpdateOrderInput) (datatypes.OrderDetail, error) {
	if in.Items != nil {
		total := itemTotal(in.Items)
		in.Total = &total
	}
	o, err := f.orders.Update(id, in)
	if err != nil {
		return datatypes.OrderDetail{}, err
	}
	return f.resolveOrder(o), nil
}

// DeleteOrder removes an order and returns the removed record.
func (f *Facade) DeleteOrder(id string) (datatypes.Order, error) {
	return f.orders.Delete(id)
}

// SetOrderStatus sets an order's status. Status is free-form; there is no
// transition check.
func (f *Facade) SetOrderStatus(id, status string) (datatypes.OrderDetail, error) {
	o, err := f.orders.UpdateStatus(id, status)
	if err != nil {
		return datatypes.OrderDetail{}, err
	}
	return f.resolveOrder(o), nil
}

// AddOrderItem appends one line to an order. The store recomputes the
// total over the full post-append list under its lock. Repeated productIds
// produce repeated lines.
func (f *Facade) AddOrderItem(id string, in datatypes.OrderItemInput) (datatypes.OrderDetail, error) {
	updated, err := f.orders.AddItem(id, in.Item())
	if err != nil {
		return datatypes.OrderDetail{}, err
	}
	return f.resolveOrder(updated), nil
}

// =============================================================================
// Store Sizes
// =============================================================================

// UserCount returns the number of stored users.
func (f *Facade) UserCount() int { return f.users.Len() }

// ProductCount returns the number of stored products.
func (f *Facade) ProductCount() int { return f.products.Len() }

// OrderCount returns the number of stored orders.
func (f *Facade) OrderCount() int { return f.orders.Len() }
