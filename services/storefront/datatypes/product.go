// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import "time"

// Product is a catalog entry.
//
// Stock is a plain counter with no floor: stock adjustments may drive it
// negative (oversell is visible, not prevented). Category matching is
// case-sensitive exact match.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProductInput carries the fields for creating a product.
// Price must be non-negative; stock may be any integer.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock"`
}

// Validate checks the input against its validation tags.
func (in CreateProductInput) Validate() error {
	return inputValidate.Struct(in)
}

// UpdateProductInput is a partial update: nil fields are preserved.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

// Validate checks the input against its validation tags.
func (in UpdateProductInput) Validate() error {
	return inputValidate.Struct(in)
}

// AdjustStockInput carries a signed stock delta. Negative deltas are
// allowed and may take the stored stock below zero.
type AdjustStockInput struct {
	Quantity int `json:"quantity"`
}
