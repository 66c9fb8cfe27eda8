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

// ListOrders handles GET /v1/orders. Optional ?userId= and ?status= query
// parameters filter the collection; userId wins when both are given.
// Responses carry resolved user and product references.
func ListOrders(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := c.GetQuery("userId"); ok {
			c.JSON(http.StatusOK, f.OrdersByUser(userID))
			return
		}
		if status, ok := c.GetQuery("status"); ok {
			c.JSON(http.StatusOK, f.OrdersByStatus(status))
			return
		}
		c.JSON(http.StatusOK, f.ListOrders())
	}
}

// GetOrder handles GET /v1/orders/:id.
func GetOrder(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := f.GetOrder(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// CreateOrder handles POST /v1/orders. The total is derived server-side
// from the items; client-supplied totals are not part of the contract.
func CreateOrder(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.CreateOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		detail := f.CreateOrder(in)
		slog.Info("order created",
			"order_id", detail.ID,
			"user_id", detail.UserID,
			"items", len(detail.Items),
			"total", detail.Total,
		)
		recordMutation("orders", "create", f.OrderCount())
		c.JSON(http.StatusCreated, detail)
	}
}

// UpdateOrder handles PUT /v1/orders/:id. When the body includes items the
// total is recomputed; when it omits them the stored total is untouched.
func UpdateOrder(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.UpdateOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		detail, err := f.UpdateOrder(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		recordMutation("orders", "update", f.OrderCount())
		c.JSON(http.StatusOK, detail)
	}
}

// DeleteOrder handles DELETE /v1/orders/:id.
func DeleteOrder(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := f.DeleteOrder(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		slog.Info("order deleted", "order_id", o.ID)
		recordMutation("orders", "delete", f.OrderCount())
		c.JSON(http.StatusOK, o)
	}
}

// UpdateOrderStatus handles PUT /v1/orders/:id/status. Status strings are
// free-form; no transition rules are enforced.
func UpdateOrderStatus(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		detail, err := f.SetOrderStatus(c.Param("id"), in.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		slog.Info("order status changed", "order_id", detail.ID, "status", detail.Status)
		recordMutation("orders", "status", f.OrderCount())
		c.JSON(http.StatusOK, detail)
	}
}

// AddOrderItem handles POST /v1/orders/:id/items. The new line is appended
// as-is (no merge with existing lines for the same product) and the total
// is recomputed over the full list.
func AddOrderItem(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.OrderItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		detail, err := f.AddOrderItem(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		recordMutation("orders", "add_item", f.OrderCount())
		c.JSON(http.StatusOK, detail)
	}
}
