// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package client

import "sync"

// =============================================================================
// Operation Names
// =============================================================================

// Tracked operation names. Tracking is keyed by these stable names,
// independent of call arguments: two concurrent calls to the same named
// operation share one tracked status.
const (
	OpFetchUsers = "users/fetchUsers"
	OpFetchUser  = "users/fetchUser"
	OpCreateUser = "users/createUser"
	OpUpdateUser = "users/updateUser"
	OpDeleteUser = "users/deleteUser"

	OpFetchProducts           = "products/fetchProducts"
	OpFetchProduct            = "products/fetchProduct"
	OpFetchProductsByCategory = "products/fetchProductsByCategory"
	OpCreateProduct           = "products/createProduct"
	OpUpdateProduct           = "products/updateProduct"
	OpDeleteProduct           = "products/deleteProduct"
	OpUpdateProductStock      = "products/updateProductStock"

	OpFetchOrders         = "orders/fetchOrders"
	OpFetchOrder          = "orders/fetchOrder"
	OpFetchOrdersByUser   = "orders/fetchOrdersByUser"
	OpFetchOrdersByStatus = "orders/fetchOrdersByStatus"
	OpCreateOrder         = "orders/createOrder"
	OpUpdateOrder         = "orders/updateOrder"
	OpDeleteOrder         = "orders/deleteOrder"
	OpUpdateOrderStatus   = "orders/updateOrderStatus"
	OpAddItemToOrder      = "orders/addItemToOrder"
)

// =============================================================================
// Tracker
// =============================================================================

// OperationStatus is the tracked state of one named operation.
//
// Loading means an invocation is in flight. Error holds the failure
// message from the most recent rejected invocation, cleared when a new
// invocation starts or a later one succeeds.
type OperationStatus struct {
	Loading bool
	Error   string
}

// Tracker records per-operation request lifecycle state.
//
// Every client call walks three phases: Begin (loading set, prior error
// cleared), then either Succeed (loading and error cleared) or Fail
// (loading cleared, error set). The tracker answers "is an invocation of
// this operation in flight", not per-argument status.
//
// Safe for concurrent use.
type Tracker struct {
	mu  sync.RWMutex
	ops map[string]OperationStatus
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{ops: make(map[string]OperationStatus)}
}

// Begin marks the operation as in flight and clears any prior error.
func (t *Tracker) Begin(op string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops[op] = OperationStatus{Loading: true}
}

// Succeed marks the operation as settled without error.
func (t *Tracker) Succeed(op string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops[op] = OperationStatus{}
}

// Fail marks the operation as settled with the given error message.
func (t *Tracker) Fail(op, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops[op] = OperationStatus{Error: message}
}

// Status returns the tracked status of an operation. Unknown operations
// report the zero status: not loading, no error.
func (t *Tracker) Status(op string) OperationStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ops[op]
}

// IsLoading reports whether an invocation of the operation is in flight.
func (t *Tracker) IsLoading(op string) bool {
	return t.Status(op).Loading
}

// Err returns the last failure message for the operation, or "".
func (t *Tracker) Err(op string) string {
	return t.Status(op).Error
}
