// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import "time"

// =============================================================================
// Order Aggregate
// =============================================================================

// ShippingAddress is an embedded value object. Partial updates replace it
// wholesale; there is no field-by-field merge inside the address.
type ShippingAddress struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required,zipcode"`
}

// OrderItem is one line of an order. Price is a unit-price snapshot taken
// when the line was added; it does not track later product price changes.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is the order aggregate.
//
// # Invariants
//
// Total equals the sum of Price*Quantity over Items after every
// items-mutating operation (create, update-with-items, add-item). An update
// that omits items leaves Total untouched; see the façade for the full rule.
//
// UserID is a weak reference: no existence check is performed at write time,
// and deleting a user leaves their orders orphaned. Status is a free-form
// string with no enumerated state machine.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// =============================================================================
// Read Models
// =============================================================================

// OrderItemDetail is an order line with its product resolved by lookup.
// Product is nil when the referenced product no longer exists.
type OrderItemDetail struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Product   *Product `json:"product,omitempty"`
}

// OrderDetail is the read model for an order: the raw record with its weak
// references resolved. User is nil for orphaned orders. Resolution happens
// per request and is never cached.
type OrderDetail struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	User            *User             `json:"user,omitempty"`
	Items           []OrderItemDetail `json:"items"`
	Total           float64           `json:"total"`
	Status          string            `json:"status"`
	ShippingAddress ShippingAddress   `json:"shippingAddress"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// =============================================================================
// Inputs
// =============================================================================

// OrderItemInput carries one order line. Quantity must be at least 1 and
// the unit price non-negative. Repeated productIds are not merged: adding
// the same product twice yields two lines.
type OrderItemInput struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// Item converts the input to a stored order line.
func (in OrderItemInput) Item() OrderItem {
	return OrderItem{ProductID: in.ProductID, Quantity: in.Quantity, Price: in.Price}
}

// Validate checks the input against its validation tags.
func (in OrderItemInput) Validate() error {
	return inputValidate.Struct(in)
}

// CreateOrderInput carries the fields for creating an order. The total is
// never accepted from callers; the façade derives it from Items.
type CreateOrderInput struct {
	UserID          string           `json:"userId" validate:"required"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Status          string           `json:"status"`
	ShippingAddress ShippingAddress  `json:"shippingAddress" validate:"required"`
}

// Validate checks the input against its validation tags.
func (in CreateOrderInput) Validate() error {
	return inputValidate.Struct(in)
}

// UpdateOrderInput is a partial update for an order.
//
// Items uses nil-vs-empty to distinguish "not supplied" (nil: items and
// total are left alone) from "supplied" (non-nil: items are replaced and
// the façade recomputes the total). The tag deliberately has no omitempty:
// a non-nil empty list must reach the wire as [] so "replace items with
// nothing" survives the round trip, while nil marshals as null and binds
// back to nil. Total is façade-internal and never bound from request
// bodies.
type UpdateOrderInput struct {
	UserID          *string          `json:"userId,omitempty"`
	Items           []OrderItemInput `json:"items" validate:"omitempty,dive"`
	Status          *string          `json:"status,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`

	// Total is set by the façade after recomputation. It is deliberately
	// excluded from the JSON contract: totals are derived, never trusted.
	Total *float64 `json:"-"`
}

// Validate checks the input against its validation tags.
func (in UpdateOrderInput) Validate() error {
	return inputValidate.Struct(in)
}

// UpdateOrderStatusInput carries a bare status change.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// Validate checks the input against its validation tags.
func (in UpdateOrderStatusInput) Validate() error {
	return inputValidate.Struct(in)
}
