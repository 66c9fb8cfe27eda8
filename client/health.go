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
)

// HealthStatus is the server's liveness report.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health pings the server's liveness endpoint. This is a plain probe, not
// a tracked operation: it touches neither the tracker nor the state cache.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var hs HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &hs); err != nil {
		return HealthStatus{}, err
	}
	return hs, nil
}
