// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package client

import (
	"context"
	"net/http"

	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
)

// FetchUsers lists all users and replaces the cached user list.
func (c *Client) FetchUsers(ctx context.Context) ([]datatypes.User, error) {
	c.tracker.Begin(OpFetchUsers)
	var list []datatypes.User
	if err := c.do(ctx, http.MethodGet, "/v1/users", nil, nil, &list); err != nil {
		c.tracker.Fail(OpFetchUsers, err.Error())
		return nil, err
	}
	c.state.setUsers(list)
	c.tracker.Succeed(OpFetchUsers)
	return list, nil
}

// FetchUser fetches one user (with resolved orders) into the selected slot.
func (c *Client) FetchUser(ctx context.Context, id string) (datatypes.UserDetail, error) {
	c.tracker.Begin(OpFetchUser)
	var detail datatypes.UserDetail
	if err := c.do(ctx, http.MethodGet, "/v1/users/"+id, nil, nil, &detail); err != nil {
		c.tracker.Fail(OpFetchUser, err.Error())
		return datatypes.UserDetail{}, err
	}
	c.state.selectUser(detail.User)
	c.tracker.Succeed(OpFetchUser)
	return detail, nil
}

// CreateUser creates a user and appends it to the cached list.
func (c *Client) CreateUser(ctx context.Context, in datatypes.CreateUserInput) (datatypes.User, error) {
	c.tracker.Begin(OpCreateUser)
	var u datatypes.User
	if err := c.do(ctx, http.MethodPost, "/v1/users", nil, in, &u); err != nil {
		c.tracker.Fail(OpCreateUser, err.Error())
		return datatypes.User{}, err
	}
	c.state.appendUser(u)
	c.tracker.Succeed(OpCreateUser)
	return u, nil
}

// UpdateUser applies a partial update and replaces the record in the cache.
func (c *Client) UpdateUser(ctx context.Context, id string, in datatypes.UpdateUserInput) (datatypes.User, error) {
	c.tracker.Begin(OpUpdateUser)
	var u datatypes.User
	if err := c.do(ctx, http.MethodPut, "/v1/users/"+id, nil, in, &u); err != nil {
		c.tracker.Fail(OpUpdateUser, err.Error())
		return datatypes.User{}, err
	}
	c.state.replaceUser(u)
	c.tracker.Succeed(OpUpdateUser)
	return u, nil
}

// DeleteUser deletes a user and removes it from the cache.
func (c *Client) DeleteUser(ctx context.Context, id string) (datatypes.User, error) {
	c.tracker.Begin(OpDeleteUser)
	var u datatypes.User
	if err := c.do(ctx, http.MethodDelete, "/v1/users/"+id, nil, nil, &u); err != nil {
		c.tracker.Fail(OpDeleteUser, err.Error())
		return datatypes.User{}, err
	}
	c.state.removeUser(u.ID)
	c.tracker.Succeed(OpDeleteUser)
	return u, nil
}
