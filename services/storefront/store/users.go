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

// UserStore holds the user collection.
//
// Records are kept in insertion order; byID maps id to the record's slice
// position and is repaired after deletes. The zero value is not usable;
// construct with NewUserStore.
type UserStore struct {
	mu    sync.RWMutex
	users []datatypes.User
	byID  map[string]int

	// now is the timestamp source, replaceable in tests.
	now func() time.Time
}

// NewUserStore creates an empty user repository.
func NewUserStore() *UserStore {
	return &UserStore{
		byID: make(map[string]int),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// GetAll returns all users in insertion order. The returned slice is a
// copy; callers may not mutate stored records through it.
func (s *UserStore) GetAll() []datatypes.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]datatypes.User, len(s.users))
	copy(out, s.users)
	return out
}

// GetByID returns the user with the given id, or false if absent.
func (s *UserStore) GetByID(id string) (datatypes.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.User{}, false
	}
	return s.users[i], true
}

// Create assigns a fresh id, stamps both timestamps, appends the record,
// and returns it.
func (s *UserStore) Create(in datatypes.CreateUserInput) datatypes.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	u := datatypes.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Age:       in.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byID[u.ID] = len(s.users)
	s.users = append(s.users, u)
	return u
}

// Update merges the non-nil input fields over the stored record and
// re-stamps UpdatedAt. Returns ErrNotFound if id is absent.
func (s *UserStore) Update(id string, in datatypes.UpdateUserInput) (datatypes.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	u := &s.users[i]
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Age != nil {
		u.Age = in.Age
	}
	u.UpdatedAt = s.now()
	return *u, nil
}

// Delete removes and returns the record. Returns ErrNotFound if id is
// absent. Orders referencing the user are left orphaned on purpose.
func (s *UserStore) Delete(id string) (datatypes.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return datatypes.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	u := s.users[i]
	s.users = append(s.users[:i], s.users[i+1:]...)
	delete(s.byID, id)
	for j := i; j < len(s.users); j++ {
		s.byID[s.users[j].ID] = j
	}
	return u, nil
}

// Len returns the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// put inserts a record with its id preserved. Used by seeding.
func (s *UserStore) put(u datatypes.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[u.ID] = len(s.users)
	s.users = append(s.users, u)
}
