// Copyright (C) 2025 ShopGrid Contributors
// Shared test harness for the handler suite

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopgrid/shopgrid/services/storefront/facade"
	"github.com/shopgrid/shopgrid/services/storefront/store"
	"github.com/stretchr/testify/require"
)

// createTestRouter wires every handler onto a bare engine. The route table
// mirrors the one the routes package installs in production; registering
// directly keeps this package free of an import cycle.
func createTestRouter(f *facade.Facade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/health", HealthCheck)

	v1 := router.Group("/v1")
	{
		v1.GET("/users", ListUsers(f))
		v1.POST("/users", CreateUser(f))
		v1.GET("/users/:id", GetUser(f))
		v1.PUT("/users/:id", UpdateUser(f))
		v1.DELETE("/users/:id", DeleteUser(f))

		v1.GET("/products", ListProducts(f))
		v1.POST("/products", CreateProduct(f))
		v1.GET("/products/:id", GetProduct(f))
		v1.PUT("/products/:id", UpdateProduct(f))
		v1.DELETE("/products/:id", DeleteProduct(f))
		v1.POST("/products/:id/stock", AdjustProductStock(f))

		v1.GET("/orders", ListOrders(f))
		v1.POST("/orders", CreateOrder(f))
		v1.GET("/orders/:id", GetOrder(f))
		v1.PUT("/orders/:id", UpdateOrder(f))
		v1.DELETE("/orders/:id", DeleteOrder(f))
		v1.PUT("/orders/:id/status", UpdateOrderStatus(f))
		v1.POST("/orders/:id/items", AddOrderItem(f))
	}

	return router
}

// newSeededRouter returns a router over stores loaded with the demo
// fixtures (users "1"-"2", products "1"-"3", orders "1"-"2").
func newSeededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	users := store.NewUserStore()
	products := store.NewProductStore()
	orders := store.NewOrderStore()
	store.Seed(users, products, orders)
	return createTestRouter(facade.New(users, products, orders))
}

// performRequest issues one request against the router, marshaling a
// non-nil body to JSON.
func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBytes)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals the recorded response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
