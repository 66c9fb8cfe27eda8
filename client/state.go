// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package client

import (
	"sync"

	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
)

// UsersState is a snapshot of the locally cached users.
type UsersState struct {
	Users    []datatypes.User
	Selected *datatypes.User
}

// ProductsState is a snapshot of the locally cached products.
type ProductsState struct {
	Products []datatypes.Product
	Selected *datatypes.Product
}

// OrdersState is a snapshot of the locally cached orders.
type OrdersState struct {
	Orders   []datatypes.OrderDetail
	Selected *datatypes.OrderDetail
}

// State is the client-side cache, updated on every fulfilled call.
//
// Merge rules per operation kind:
//   - list fetch replaces the whole cached list
//   - single fetch replaces the selected slot
//   - create appends the returned record to the list
//   - update-style calls replace the matching record by id, and refresh
//     the selected slot when it holds that id
//   - delete removes the record by id, and clears the selected slot when
//     it held that id
//
// Failures never touch cached data. Nothing serializes concurrent calls:
// the last response to arrive wins, regardless of send order.
type State struct {
	mu       sync.RWMutex
	users    UsersState
	products ProductsState
	orders   OrdersState
}

// NewState creates an empty cache.
func NewState() *State {
	return &State{}
}

// Users returns a copy of the cached users state.
func (s *State) Users() UsersState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := UsersState{Users: append([]datatypes.User(nil), s.users.Users...)}
	if s.users.Selected != nil {
		sel := *s.users.Selected
		out.Selected = &sel
	}
	return out
}

// Products returns a copy of the cached products state.
func (s *State) Products() ProductsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := ProductsState{Products: append([]datatypes.Product(nil), s.products.Products...)}
	if s.products.Selected != nil {
		sel := *s.products.Selected
		out.Selected = &sel
	}
	return out
}

// Orders returns a copy of the cached orders state.
func (s *State) Orders() OrdersState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := OrdersState{Orders: append([]datatypes.OrderDetail(nil), s.orders.Orders...)}
	if s.orders.Selected != nil {
		sel := *s.orders.Selected
		out.Selected = &sel
	}
	return out
}

// --- users ---

func (s *State) setUsers(list []datatypes.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.Users = list
}

func (s *State) selectUser(u datatypes.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.Selected = &u
}

func (s *State) appendUser(u datatypes.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.Users = append(s.users.Users, u)
}

func (s *State) replaceUser(u datatypes.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users.Users {
		if s.users.Users[i].ID == u.ID {
			s.users.Users[i] = u
			break
		}
	}
	if s.users.Selected != nil && s.users.Selected.ID == u.ID {
		s.users.Selected = &u
	}
}

func (s *State) removeUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users.Users[:0]
	for _, u := range s.users.Users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users.Users = kept
	if s.users.Selected != nil && s.users.Selected.ID == id {
		s.users.Selected = nil
	}
}

// --- products ---

func (s *State) setProducts(list []datatypes.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.Products = list
}

func (s *State) selectProduct(p datatypes.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.Selected = &p
}

func (s *State) appendProduct(p datatypes.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.Products = append(s.products.Products, p)
}

func (s *State) replaceProduct(p datatypes.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products.Products {
		if s.products.Products[i].ID == p.ID {
			s.products.Products[i] = p
			break
		}
	}
	if s.products.Selected != nil && s.products.Selected.ID == p.ID {
		s.products.Selected = &p
	}
}

func (s *State) removeProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products.Products[:0]
	for _, p := range s.products.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products.Products = kept
	if s.products.Selected != nil && s.products.Selected.ID == id {
		s.products.Selected = nil
	}
}

// --- orders ---

func (s *State) setOrders(list []datatypes.OrderDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.Orders = list
}

func (s *State) selectOrder(o datatypes.OrderDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.Selected = &o
}

func (s *State) replaceOrder(o datatypes.OrderDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders.Orders {
		if s.orders.Orders[i].ID == o.ID {
			s.orders.Orders[i] = o
			break
		}
	}
	if s.orders.Selected != nil && s.orders.Selected.ID == o.ID {
		s.orders.Selected = &o
	}
}

func (s *State) appendOrder(o datatypes.OrderDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.Orders = append(s.orders.Orders, o)
}

func (s *State) removeOrder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.orders.Orders[:0]
	for _, o := range s.orders.Orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders.Orders = kept
	if s.orders.Selected != nil && s.orders.Selected.ID == id {
		s.orders.Selected = nil
	}
}
