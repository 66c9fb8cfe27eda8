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

// FetchOrders lists all orders and replaces the cached order list.
func (c *Client) FetchOrders(ctx context.Context) ([]datatypes.OrderDetail, error) {
	c.tracker.Begin(OpFetchOrders)
	var list []datatypes.OrderDetail
	if err := c.do(ctx, http.MethodGet, "/v1/orders", nil, nil, &list); err != nil {
		c.tracker.Fail(OpFetchOrders, err.Error())
		return nil, err
	}
	c.state.setOrders(list)
	c.tracker.Succeed(OpFetchOrders)
	return list, nil
}

// FetchOrder fetches one order into the selected slot.
func (c *Client) FetchOrder(ctx context.Context, id string) (datatypes.OrderDetail, error) {
	c.tracker.Begin(OpFetchOrder)
	var detail datatypes.OrderDetail
	if err := c.do(ctx, http.MethodGet, "/v1/orders/"+id, nil, nil, &detail); err != nil {
		c.tracker.Fail(OpFetchOrder, err.Error())
		return datatypes.OrderDetail{}, err
	}
	c.state.selectOrder(detail)
	c.tracker.Succeed(OpFetchOrder)
	return detail, nil
}

// FetchOrdersByUser lists one user's orders and replaces the cached list.
func (c *Client) FetchOrdersByUser(ctx context.Context, userID string) ([]datatypes.OrderDetail, error) {
	c.tracker.Begin(OpFetchOrdersByUser)
	var list []datatypes.OrderDetail
	query := url.Values{"userId": []string{userID}}
	if err := c.do(ctx, http.MethodGet, "/v1/orders", query, nil, &list); err != nil {
		c.tracker.Fail(OpFetchOrdersByUser, err.Error())
		return nil, err
	}
	c.state.setOrders(list)
	c.tracker.Succeed(OpFetchOrdersByUser)
	return list, nil
}

// FetchOrdersByStatus lists orders in one status and replaces the cached list.
func (c *Client) FetchOrdersByStatus(ctx context.Context, status string) ([]datatypes.OrderDetail, error) {
	c.tracker.Begin(OpFetchOrdersByStatus)
	var list []datatypes.OrderDetail
	query := url.Values{"status": []string{status}}
	if err := c.do(ctx, http.MethodGet, "/v1/orders", query, nil, &list); err != nil {
		c.tracker.Fail(OpFetchOrdersByStatus, err.Error())
		return nil, err
	}
	c.state.setOrders(list)
	c.tracker.Succeed(OpFetchOrdersByStatus)
	return list, nil
}

// CreateOrder creates an order and appends it to the cached list. The
// server derives the total from the items.
func (c *Client) CreateOrder(ctx context.Context, in datatypes.CreateOrderInput) (datatypes.OrderDetail, error) {
	c.tracker.Begin(OpCreateOrder)
	var detail datatypes.OrderDetail
	if err := c.do(ctx, http.MethodPost, "/v1/orders", nil, in, &detail); err != nil {
		c.tracker.Fail(OpCreateOrder, err.Error())
		return datatypes.OrderDetail{}, err
	}
	c.state.appendOrder(detail)
	c.tracker.Succeed(OpCreateOrder)
	return detail, nil
}

// UpdateOrder applies a partial update and replaces the record in the cache.
func (c *Client) UpdateOrder(ctx context.Context, id string, in datatypes.UpdateOrderInput) (datatypes.OrderDetail, error) {
	c.tracker.Begin(OpUpdateOrder)
	var detail datatypes.OrderDetail
	if err := c.do(ctx, http.MethodPut, "/v1/orders/"+id, nil, in, &detail); err != nil {
		c.tracker.Fail(OpUpdateOrder, err.Error())
		return datatypes.OrderDetail{}, err
	}
	c.state.replaceOrder(detail)
	c.tracker.Succeed(OpUpdateOrder)
	return detail, nil
}

// DeleteOrder deletes an order and removes it from the cache.
func (c *Client) DeleteOrder(ctx context.Context, id string) (datatypes.Order, error) {
	c.tracker.Begin(OpDeleteOrder)
	var o datatypes.Order
	if err := c.do(ctx, http.MethodDelete, "/v1/orders/"+id, nil, nil, &o); err != nil {
		c.tracker.Fail(OpDeleteOrder, err.Error())
		return datatypes.Order{}, err
	}
	c.state.removeOrder(o.ID)
	c.tracker.Succeed(OpDeleteOrder)
	return o, nil
}

// UpdateOrderStatus sets an order's status and replaces the record in the
// cache.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (datatypes.OrderDetail, error) {
	c.tracker.Begin(OpUpdateOrderStatus)
	var detail datatypes.OrderDetail
	in := datatypes.UpdateOrderStatusInput{Status: status}
	if err := c.do(ctx, http.MethodPut, "/v1/orders/"+id+"/status", nil, in, &detail); err != nil {
		c.tracker.Fail(OpUpdateOrderStatus, err.Error())
		return datatypes.OrderDetail{}, err
	}
	c.state.replaceOrder(detail)
	c.tracker.Succeed(OpUpdateOrderStatus)
	return detail, nil
}

// AddItemToOrder appends one line to an order and replaces the record in
// the cache. The server recomputes the total over the full item list.
func (c *Client) AddItemToOrder(ctx context.Context, id string, in datatypes.OrderItemInput) (datatypes.OrderDetail, error) {
	c.tracker.Begin(OpAddItemToOrder)
	var detail datatypes.OrderDetail
	if err := c.do(ctx, http.MethodPost, "/v1/orders/"+id+"/items", nil, in, &detail); err != nil {
		c.tracker.Fail(OpAddItemToOrder, err.Error())
		return datatypes.OrderDetail{}, err
	}
	c.state.replaceOrder(detail)
	c.tracker.Succeed(OpAddItemToOrder)
	return detail, nil
}
