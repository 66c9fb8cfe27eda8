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

// OrderStore holds the order collection.
//
// For create and update the store persists whatever total the façade hands
// it, keeping the pass-through semantics of itemless updates in one place.
// AddItem is the exception: it recomputes the total itself, under the
// lock, because the new total depends on the items already stored.
type OrderStore struct {
	mu     sync.RWMutex
	orders []datatypes.Order
	byID   map[string]int

	now func() time.Time
}

// NewOrderStore creates an empty order repository.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		byID: make(map[string]int),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// GetAll returns all orders in insertion order.
func (s *OrderStore) GetAll() []datatypes.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]datatypes.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// GetByID returns the order with the given id, or false if absent.
func (s *OrderStore) GetByID(id string) (datatypes.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Order{}, false
	}
	return s.orders[i], true
}

// GetByUserID returns the orders placed by the given user, in insertion
// order. An unknown userId yields an empty slice, never an error.
func (s *OrderStore) GetByUserID(userID string) []datatypes.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]datatypes.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// GetByStatus returns the orders whose status equals the argument exactly.
func (s *OrderStore) GetByStatus(status string) []datatypes.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]datatypes.Order, 0)
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Create assigns a fresh id, stamps timestamps, and appends the record.
// The total is supplied by the caller (the façade derives it from items).
func (s *OrderStore) Create(in datatypes.CreateOrderInput, total float64) datatypes.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	items := make([]datatypes.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, it.Item())
	}
	status := in.Status
	if status == "" {
		status = "pending"
	}
	o := datatypes.Order{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		Items:           items,
		Total:           total,
		Status:          status,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.byID[o.ID] = len(s.orders)
	s.orders = append(s.orders, o)
	return o
}

// Update merges the supplied fields over the stored record and re-stamps
// UpdatedAt. Nil Items means "items not supplied": both items and total
// are left untouched unless in.Total is set. ShippingAddress is replaced
// wholesale, not deep-merged. Returns ErrNotFound if id is absent.
func (s *OrderStore) Update(id string, in datatypes.UpdateOrderInput) (datatypes.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	o := &s.orders[i]
	if in.UserID != nil {
		o.UserID = *in.UserID
	}
	if in.Items != nil {
		items := make([]datatypes.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, it.Item())
		}
		o.Items = items
	}
	if in.Total != nil {
		o.Total = *in.Total
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	if in.ShippingAddress != nil {
		o.ShippingAddress = *in.ShippingAddress
	}
	o.UpdatedAt = s.now()
	return *o, nil
}

// UpdateStatus sets the status and re-stamps UpdatedAt. Any string is a
// valid status. Returns ErrNotFound if id is absent.
func (s *OrderStore) UpdateStatus(id, status string) (datatypes.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	o := &s.orders[i]
	o.Status = status
	o.UpdatedAt = s.now()
	return *o, nil
}

// AddItem appends one line to the order's item list and recomputes the
// total over the full post-append list. The recomputation happens under
// the lock so concurrent appends to one order cannot persist a total that
// misses a line. Repeated productIds are not merged; each call adds a new
// line. Returns ErrNotFound if id is absent.
func (s *OrderStore) AddItem(id string, item datatypes.OrderItem) (datatypes.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	o := &s.orders[i]
	o.Items = append(o.Items, item)
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	o.Total = total
	o.UpdatedAt = s.now()
	return *o, nil
}

// Delete removes and returns the record. Returns ErrNotFound if id is absent.
func (s *OrderStore) Delete(id string) (datatypes.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	o := s.orders[i]
	s.orders = append(s.orders[:i], s.orders[i+1:]...)
	delete(s.byID, id)
	for j := i; j < len(s.orders); j++ {
		s.byID[s.orders[j].ID] = j
	}
	return o, nil
}

// Len returns the number of stored orders.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// put inserts a record with its id preserved. Used by seeding.
func (s *OrderStore) put(o datatypes.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[o.ID] = len(s.orders)
	s.orders = append(s.orders, o)
}
