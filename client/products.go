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
	"net/url"

	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
)

// FetchProducts lists all products and replaces the cached product list.
func (c *Client) FetchProducts(ctx context.Context) ([]datatypes.Product, error) {
	c.tracker.Begin(OpFetchProducts)
	var list []datatypes.Product
	if err := c.do(ctx, http.MethodGet, "/v1/products", nil, nil, &list); err != nil {
		c.tracker.Fail(OpFetchProducts, err.Error())
		return nil, err
	}
	c.state.setProducts(list)
	c.tracker.Succeed(OpFetchProducts)
	return list, nil
}

// FetchProduct fetches one product into the selected slot.
func (c *Client) FetchProduct(ctx context.Context, id string) (datatypes.Product, error) {
	c.tracker.Begin(OpFetchProduct)
	var p datatypes.Product
	if err := c.do(ctx, http.MethodGet, "/v1/products/"+id, nil, nil, &p); err != nil {
		c.tracker.Fail(OpFetchProduct, err.Error())
		return datatypes.Product{}, err
	}
	c.state.selectProduct(p)
	c.tracker.Succeed(OpFetchProduct)
	return p, nil
}

// FetchProductsByCategory lists one category (case-sensitive exact match)
// and replaces the cached product list with the result.
func (c *Client) FetchProductsByCategory(ctx context.Context, category string) ([]datatypes.Product, error) {
	c.tracker.Begin(OpFetchProductsByCategory)
	var list []datatypes.Product
	query := url.Values{"category": []string{category}}
	if err := c.do(ctx, http.MethodGet, "/v1/products", query, nil, &list); err != nil {
		c.tracker.Fail(OpFetchProductsByCategory, err.Error())
		return nil, err
	}
	c.state.setProducts(list)
	c.tracker.Succeed(OpFetchProductsByCategory)
	return list, nil
}

// CreateProduct creates a product and appends it to the cached list.
func (c *Client) CreateProduct(ctx context.Context, in datatypes.CreateProductInput) (datatypes.Product, error) {
	c.tracker.Begin(OpCreateProduct)
	var p datatypes.Product
	if err := c.do(ctx, http.MethodPost, "/v1/products", nil, in, &p); err != nil {
		c.tracker.Fail(OpCreateProduct, err.Error())
		return datatypes.Product{}, err
	}
	c.state.appendProduct(p)
	c.tracker.Succeed(OpCreateProduct)
	return p, nil
}

// UpdateProduct applies a partial update and replaces the record in the cache.
func (c *Client) UpdateProduct(ctx context.Context, id string, in datatypes.UpdateProductInput) (datatypes.Product, error) {
	c.tracker.Begin(OpUpdateProduct)
	var p datatypes.Product
	if err := c.do(ctx, http.MethodPut, "/v1/products/"+id, nil, in, &p); err != nil {
		c.tracker.Fail(OpUpdateProduct, err.Error())
		return datatypes.Product{}, err
	}
	c.state.replaceProduct(p)
	c.tracker.Succeed(OpUpdateProduct)
	return p, nil
}

// DeleteProduct deletes a product and removes it from the cache.
func (c *Client) DeleteProduct(ctx context.Context, id string) (datatypes.Product, error) {
	c.tracker.Begin(OpDeleteProduct)
	var p datatypes.Product
	if err := c.do(ctx, http.MethodDelete, "/v1/products/"+id, nil, nil, &p); err != nil {
		c.tracker.Fail(OpDeleteProduct, err.Error())
		return datatypes.Product{}, err
	}
	c.state.removeProduct(p.ID)
	c.tracker.Succeed(OpDeleteProduct)
	return p, nil
}

// UpdateProductStock adjusts a product's stock by a signed delta and
// replaces the record in the cache. The server enforces no floor; the
// returned stock may be negative.
func (c *Client) UpdateProductStock(ctx context.Context, id string, delta int) (datatypes.Product, error) {
	c.tracker.Begin(OpUpdateProductStock)
	var p datatypes.Product
	in := datatypes.AdjustStockInput{Quantity: delta}
	if err := c.do(ctx, http.MethodPost, "/v1/products/"+id+"/stock", nil, in, &p); err != nil {
		c.tracker.Fail(OpUpdateProductStock, err.Error())
		return datatypes.Product{}, err
	}
	c.state.replaceProduct(p)
	c.tracker.Succeed(OpUpdateProductStock)
	return p, nil
}
