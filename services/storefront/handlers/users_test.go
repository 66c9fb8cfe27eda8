// Copyright (C) 2025 ShopGrid Contributors
// Tests for the user handlers

package handlers

import (
	"net/http"
	"testing"

	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// User Handler Tests
// =============================================================================

func TestListUsers_ReturnsSeededUsers(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodGet, "/v1/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []datatypes.User
	decodeBody(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "John Doe", list[0].Name)
	assert.Equal(t, "Jane Smith", list[1].Name)
}

func TestGetUser_IncludesOrders(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodGet, "/v1/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var detail datatypes.UserDetail
	decodeBody(t, w, &detail)
	assert.Equal(t, "John Doe", detail.Name)
	require.Len(t, detail.Orders, 1)
	assert.Equal(t, "1", detail.Orders[0].UserID)
}

func TestGetUser_Missing(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodGet, "/v1/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	decodeBody(t, w, &response)
	assert.Contains(t, response["error"], "999")
}

func TestCreateUser_Returns201(t *testing.T) {
	router := newSeededRouter(t)

	age := 36
	w := performRequest(t, router, http.MethodPost, "/v1/users", datatypes.CreateUserInput{
		Name: "Ada", Email: "ada@example.com", Age: &age,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var u datatypes.User
	decodeBody(t, w, &u)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ada", u.Name)
	require.NotNil(t, u.Age)
	assert.Equal(t, 36, *u.Age)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodPost, "/v1/users", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_InvalidEmailRejected(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodPost, "/v1/users", datatypes.CreateUserInput{
		Name: "Ada", Email: "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	decodeBody(t, w, &response)
	assert.NotEmpty(t, response["error"])
}

func TestCreateUser_MissingNameRejected(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodPost, "/v1/users", map[string]string{
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUser_PartialMerge(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodPut, "/v1/users/1", map[string]string{
		"email": "john@newdomain.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var u datatypes.User
	decodeBody(t, w, &u)
	assert.Equal(t, "John Doe", u.Name)
	assert.Equal(t, "john@newdomain.com", u.Email)
}

func TestUpdateUser_Missing(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodPut, "/v1/users/999", map[string]string{
		"name": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser_ReturnsRemovedRecord(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodDelete, "/v1/users/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var u datatypes.User
	decodeBody(t, w, &u)
	assert.Equal(t, "2", u.ID)
	assert.Equal(t, "Jane Smith", u.Name)

	again := performRequest(t, router, http.MethodGet, "/v1/users/2", nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestDeleteUser_Missing(t *testing.T) {
	router := newSeededRouter(t)

	w := performRequest(t, router, http.MethodDelete, "/v1/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
