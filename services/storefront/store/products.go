// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
)

// ProductStore holds the product catalog.
type ProductStore struct {
	mu       sync.RWMutex
	products []datatypes.Product
	byID     map[string]int

	now func() time.Time
}

// NewProductStore creates an empty product repository.
func NewProductStore() *ProductStore {
	return &ProductStore{
		byID: make(map[string]int),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// GetAll returns all products in insertion order.
func (s *ProductStore) GetAll() []datatypes.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]datatypes.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID returns the product with the given id, or false if absent.
func (s *ProductStore) GetByID(id string) (datatypes.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Product{}, false
	}
	return s.products[i], true
}

// GetByCategory returns the products whose category equals the argument.
// Matching is case-sensitive exact equality; there is no index, just a
// predicate scan over the full collection.
func (s *ProductStore) GetByCategory(category string) []datatypes.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]datatypes.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Create assigns a fresh id, stamps timestamps, and appends the record.
func (s *ProductStore) Create(in datatypes.CreateProductInput) datatypes.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p := datatypes.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.byID[p.ID] = len(s.products)
	s.products = append(s.products, p)
	return p
}

// Update merges non-nil input fields over the stored record and re-stamps
// UpdatedAt. Returns ErrNotFound if id is absent.
func (s *ProductStore) Update(id string, in datatypes.UpdateProductInput) (datatypes.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	p := &s.products[i]
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	p.UpdatedAt = s.now()
	return *p, nil
}

// Delete removes and returns the record. Returns ErrNotFound if id is absent.
func (s *ProductStore) Delete(id string) (datatypes.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	p := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	delete(s.byID, id)
	for j := i; j < len(s.products); j++ {
		s.byID[s.products[j].ID] = j
	}
	return p, nil
}

// AdjustStock adds delta to the stored stock and re-stamps UpdatedAt.
// There is no floor: a large negative delta takes stock below zero.
// Returns ErrNotFound if id is absent.
func (s *ProductStore) AdjustStock(id string, delta int) (datatypes.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	p := &s.products[i]
	p.Stock += delta
	p.UpdatedAt = s.now()
	return *p, nil
}

// Len returns the number of stored products.
func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// put inserts a record with its id preserved. Used by seeding.
func (s *ProductStore) put(p datatypes.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = len(s.products)
	s.products = append(s.products, p)
}
