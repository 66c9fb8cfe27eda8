// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers implements the HTTP handlers for the storefront API.
//
// Handlers are thin: bind and validate the request, call the façade, map
// the result or error onto a JSON envelope. Store-level ErrNotFound maps
// to 404, bind/validation failures to 400, everything else to 500. Error
// bodies are always gin.H{"error": "..."}.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopgrid/shopgrid/services/storefront/observability"
	"github.com/shopgrid/shopgrid/services/storefront/store"
)

// HealthCheck reports liveness. Mirrors the shape the demo client polls:
// status plus a timestamp.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// errorStatus maps a façade error to an HTTP status code.
func errorStatus(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError writes the standard error envelope for a façade error.
func respondError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

// recordMutation feeds the mutation counter and entity-size gauge when
// metrics are initialized. Tests run with metrics disabled.
func recordMutation(entity, operation string, size int) {
	if m := observability.DefaultMetrics; m != nil {
		m.RecordMutation(entity, operation)
		m.SetEntityCount(entity, size)
	}
}
