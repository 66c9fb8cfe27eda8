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

// ListProducts handles GET /v1/products. An optional ?category= query
// narrows the list to one category (case-sensitive exact match).
func ListProducts(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if category, ok := c.GetQuery("category"); ok {
			c.JSON(http.StatusOK, f.ProductsByCategory(category))
			return
		}
		c.JSON(http.StatusOK, f.ListProducts())
	}
}

// GetProduct handles GET /v1/products/:id.
func GetProduct(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := f.GetProduct(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// CreateProduct handles POST /v1/products.
func CreateProduct(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.CreateProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p := f.CreateProduct(in)
		slog.Info("product created", "product_id", p.ID, "category", p.Category)
		recordMutation("products", "create", f.ProductCount())
		c.JSON(http.StatusCreated, p)
	}
}

// UpdateProduct handles PUT /v1/products/:id.
func UpdateProduct(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.UpdateProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := f.UpdateProduct(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		recordMutation("products", "update", f.ProductCount())
		c.JSON(http.StatusOK, p)
	}
}

// DeleteProduct handles DELETE /v1/products/:id.
func DeleteProduct(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := f.DeleteProduct(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		slog.Info("product deleted", "product_id", p.ID)
		recordMutation("products", "delete", f.ProductCount())
		c.JSON(http.StatusOK, p)
	}
}

// AdjustProductStock handles POST /v1/products/:id/stock. The body carries
// a signed quantity delta; stock may go negative.
func AdjustProductStock(f *facade.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in datatypes.AdjustStockInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		p, err := f.AdjustProductStock(c.Param("id"), in.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		recordMutation("products", "adjust_stock", f.ProductCount())
		c.JSON(http.StatusOK, p)
	}
}
