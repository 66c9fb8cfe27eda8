// Copyright (C) 2025 ShopGrid Contributors
// Tests for route registration

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopgrid/shopgrid/services/storefront/facade"
	"github.com/shopgrid/shopgrid/services/storefront/store"
	"github.com/stretchr/testify/assert"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	users := store.NewUserStore()
	products := store.NewProductStore()
	orders := store.NewOrderStore()
	store.Seed(users, products, orders)

	router := gin.New()
	SetupRoutes(router, facade.New(users, products, orders))
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

// Every GET surface must be mounted and answer from the seeded stores.
func TestSetupRoutes_GetEndpointsMounted(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{
		"/health",
		"/v1/users",
		"/v1/users/1",
		"/v1/products",
		"/v1/products/1",
		"/v1/orders",
		"/v1/orders/1",
	} {
		w := get(router, path)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}

func TestSetupRoutes_MetricsEndpointMounted(t *testing.T) {
	router := newRouter(t)

	w := get(router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestSetupRoutes_UnknownRouteIs404(t *testing.T) {
	router := newRouter(t)

	w := get(router, "/v1/nothing-here")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
