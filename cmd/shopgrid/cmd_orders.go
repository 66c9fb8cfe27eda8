// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	orderUserID string   // --user for list filter and create
	orderStatus string   // --status for list filter and create
	orderItems  []string // --item productId:quantity:price, repeatable
	addrStreet  string   // --street
	addrCity    string   // --city
	addrState   string   // --state
	addrZip     string   // --zip
)

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

// ordersCmd groups the order subcommands.
//
// # Description
//
// Manages orders through the storefront API. Items are given as
// repeatable --item flags in productId:quantity:price form; the server
// derives the order total, so no total is ever supplied here.
//
// # Examples
//
//	shopgrid orders list
//	shopgrid orders list --user 1
//	shopgrid orders list --status pending
//	shopgrid orders create --user 1 --item 2:3:12.99 \
//	    --street "1 Pier Rd" --city Seattle --state WA --zip 98101
//	shopgrid orders status <id> shipped
//	shopgrid orders add-item <id> 3:1:79.99
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, optionally filtered by user or status",
	Run:   runOrdersList,
}

var ordersGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch one order with its user and products resolved",
	Args:  cobra.ExactArgs(1),
	Run:   runOrdersGet,
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order (total derived server-side)",
	Run:   runOrdersCreate,
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Set an order's status (free-form string)",
	Args:  cobra.ExactArgs(2),
	Run:   runOrdersStatus,
}

var ordersAddItemCmd = &cobra.Command{
	Use:   "add-item [id] [productId:quantity:price]",
	Short: "Append one line to an order and recompute its total",
	Args:  cobra.ExactArgs(2),
	Run:   runOrdersAddItem,
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	Run:   runOrdersDelete,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	ordersListCmd.Flags().StringVar(&orderUserID, "user", "",
		"Filter to one user's orders")
	ordersListCmd.Flags().StringVar(&orderStatus, "status", "",
		"Filter to one status (ignored when --user is set)")

	ordersCreateCmd.Flags().StringVar(&orderUserID, "user", "",
		"User placing the order")
	ordersCreateCmd.Flags().StringVar(&orderStatus, "status", "",
		"Initial status (default pending)")
	ordersCreateCmd.Flags().StringArrayVar(&orderItems, "item", nil,
		"Order line as productId:quantity:price (repeatable)")
	ordersCreateCmd.Flags().StringVar(&addrStreet, "street", "", "Shipping street")
	ordersCreateCmd.Flags().StringVar(&addrCity, "city", "", "Shipping city")
	ordersCreateCmd.Flags().StringVar(&addrState, "state", "", "Shipping state")
	ordersCreateCmd.Flags().StringVar(&addrZip, "zip", "", "Shipping zip code")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersGetCmd)
	ordersCmd.AddCommand(ordersCreateCmd)
	ordersCmd.AddCommand(ordersStatusCmd)
	ordersCmd.AddCommand(ordersAddItemCmd)
	ordersCmd.AddCommand(ordersDeleteCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// parseItemSpec converts "productId:quantity:price" to an order line input.
func parseItemSpec(spec string) (datatypes.OrderItemInput, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return datatypes.OrderItemInput{},
			fmt.Errorf("item %q: want productId:quantity:price", spec)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return datatypes.OrderItemInput{}, fmt.Errorf("item %q: bad quantity: %w", spec, err)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return datatypes.OrderItemInput{}, fmt.Errorf("item %q: bad price: %w", spec, err)
	}
	return datatypes.OrderItemInput{ProductID: parts[0], Quantity: qty, Price: price}, nil
}

func runOrdersList(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	cli := newClient()
	var (
		list []datatypes.OrderDetail
		err  error
	)
	switch {
	case orderUserID != "":
		list, err = cli.FetchOrdersByUser(ctx, orderUserID)
	case orderStatus != "":
		list, err = cli.FetchOrdersByStatus(ctx, orderStatus)
	default:
		list, err = cli.FetchOrders(ctx)
	}
	if err != nil {
		fail("orders list", err)
	}
	printJSON(list)
}

func runOrdersGet(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	detail, err := newClient().FetchOrder(ctx, args[0])
	if err != nil {
		fail("orders get", err)
	}
	printJSON(detail)
}

func runOrdersCreate(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	items := make([]datatypes.OrderItemInput, 0, len(orderItems))
	for _, spec := range orderItems {
		item, err := parseItemSpec(spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		items = append(items, item)
	}

	in := datatypes.CreateOrderInput{
		UserID: orderUserID,
		Items:  items,
		Status: orderStatus,
		ShippingAddress: datatypes.ShippingAddress{
			Street:  addrStreet,
			City:    addrCity,
			State:   addrState,
			ZipCode: addrZip,
		},
	}
	detail, err := newClient().CreateOrder(ctx, in)
	if err != nil {
		fail("orders create", err)
	}
	logger.Info("order created", "order_id", detail.ID, "total", detail.Total)
	printJSON(detail)
}

func runOrdersStatus(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	detail, err := newClient().UpdateOrderStatus(ctx, args[0], args[1])
	if err != nil {
		fail("orders status", err)
	}
	logger.Info("order status updated", "order_id", detail.ID, "status", detail.Status)
	printJSON(detail)
}

func runOrdersAddItem(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	item, err := parseItemSpec(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	detail, err := newClient().AddItemToOrder(ctx, args[0], item)
	if err != nil {
		fail("orders add-item", err)
	}
	logger.Info("order item added", "order_id", detail.ID, "total", detail.Total)
	printJSON(detail)
}

func runOrdersDelete(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	o, err := newClient().DeleteOrder(ctx, args[0])
	if err != nil {
		fail("orders delete", err)
	}
	logger.Info("order deleted", "order_id", o.ID)
	printJSON(o)
}
