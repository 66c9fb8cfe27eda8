// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopgrid/shopgrid/services/storefront/facade"
	"github.com/shopgrid/shopgrid/services/storefront/handlers"
)

// SetupRoutes registers the full storefront API on the router.
func SetupRoutes(router *gin.Engine, f *facade.Facade) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group
	v1 := router.Group("/v1")
	{
		users := v1.Group("/users")
		{
			users.GET("", handlers.ListUsers(f))
			users.POST("", handlers.CreateUser(f))
			users.GET("/:id", handlers.GetUser(f))
			users.PUT("/:id", handlers.UpdateUser(f))
			users.DELETE("/:id", handlers.DeleteUser(f))
		}

		products := v1.Group("/products")
		{
			products.GET("", handlers.ListProducts(f))
			products.POST("", handlers.CreateProduct(f))
			products.GET("/:id", handlers.GetProduct(f))
			products.PUT("/:id", handlers.UpdateProduct(f))
			products.DELETE("/:id", handlers.DeleteProduct(f))
			products.POST("/:id/stock", handlers.AdjustProductStock(f))
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", handlers.ListOrders(f))
			orders.POST("", handlers.CreateOrder(f))
			orders.GET("/:id", handlers.GetOrder(f))
			orders.PUT("/:id", handlers.UpdateOrder(f))
			orders.DELETE("/:id", handlers.DeleteOrder(f))
			orders.PUT("/:id/status", handlers.UpdateOrderStatus(f))
			orders.POST("/:id/items", handlers.AddOrderItem(f))
		}
	}
}
