// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import "time"

// User is a registered customer account.
//
// ID is server-generated (UUID v4). Age is optional and omitted from the
// wire format when unset. Timestamps are stamped by the store on create
// and re-stamped on every mutation.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserDetail is the read model for a single user: the user record plus
// their orders, resolved by userId match at read time. Orders is never
// nil in responses; an orderless user gets an empty list.
type UserDetail struct {
	User
	Orders []Order `json:"orders"`
}

// CreateUserInput carries the fields for creating a user.
type CreateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks the input against its validation tags.
func (in CreateUserInput) Validate() error {
	return inputValidate.Struct(in)
}

// UpdateUserInput is a partial update: nil fields are left untouched,
// non-nil fields overwrite the stored value.
type UpdateUserInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Age   *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks the input against its validation tags.
func (in UpdateUserInput) Validate() error {
	return inputValidate.Struct(in)
}
