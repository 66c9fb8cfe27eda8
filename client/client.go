// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package client is the Go SDK for the storefront API.
//
// Every call is a tracked operation: the client records pending, fulfilled,
// and rejected phases in a Tracker keyed by operation name, and merges
// fulfilled responses into a local State cache. Failures are converted to
// tracked error strings and returned as plain errors; the client never
// panics into caller code.
//
// # Usage
//
//	cli := client.New("http://localhost:4000")
//	users, err := cli.FetchUsers(ctx)
//	if err != nil {
//	    // cli.Tracker().Err(client.OpFetchUsers) carries the same message
//	}
//
// There is no cancellation beyond the supplied context and no timeout
// enforced by this layer; configure the underlying http.Client for that.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client calls the storefront API and maintains tracked request state.
// Safe for concurrent use; concurrent identical requests race, last
// response wins in the cache.
type Client struct {
	baseURL string
	httpc   *http.Client
	tracker *Tracker
	state   *State
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to set a
// transport-level timeout.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a client for the API at baseURL (scheme and host, no
// trailing slash required).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
		tracker: NewTracker(),
		state:   NewState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tracker exposes the per-operation request status.
func (c *Client) Tracker() *Tracker {
	return c.tracker
}

// State exposes the local cache of fetched entities.
func (c *Client) State() *State {
	return c.state
}

// apiError is the server's error envelope.
type apiError struct {
	Error string `json:"error"`
}

// do issues one JSON request. Non-2xx responses become errors carrying the
// server's error message when one is present, or a generic failure
// message otherwise; callers do not get to distinguish causes beyond that.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, envelope.Error)
		}
		return fmt.Errorf("%s %s: server returned %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
