// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
	"github.com/shopgrid/shopgrid/services/storefront/facade"
)

// ListUsers handles GET /v1/users.
func ListUsers(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, f.ListUsers())
	}
}

// GetUser handles GET /v1/users/:id. The response embeds the user's
// orders, resolved at read time.
func GetUser(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := f.GetUser(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// CreateUser handles POST /v1/users.
func CreateUser(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.CreateUserInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		u := f.CreateUser(in)
		slog.Info("user created", "user_id", u.ID)
		recordMutation("users", "create", f.UserCount())
		c.JSON(http.StatusCreated, u)
	}
}

// UpdateUser handles PUT /v1/users/:id. Fields absent from the body are
// preserved.
func UpdateUser(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.UpdateUserInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		u, err := f.UpdateUser(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		recordMutation("users", "update", f.UserCount())
		c.JSON(http.StatusOK, u)
	}
}

// DeleteUser handles DELETE /v1/users/:id and returns the removed record.
func DeleteUser(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := f.DeleteUser(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		slog.Info("user deleted", "user_id", u.ID)
		recordMutation("users", "delete", f.UserCount())
		c.JSON(http.StatusOK, u)
	}
}
