// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	productName        string  // --name for create/update
	productDescription string  // --description for create/update
	productPrice       float64 // --price for create/update
	productCategory    string  // --category for create/update and list filter
	productStock       int     // --stock for create/update
	stockDelta         int     // --by for the stock subcommand, signed
)

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

// productsCmd groups the product subcommands.
//
// # Description
//
// Manages the product catalog. Category filtering is a case-sensitive
// exact match. Stock adjustments are signed deltas with no floor, so
// "stock --by -10" can take a product negative.
//
// # Examples
//
//	shopgrid products list
//	shopgrid products list --category Electronics
//	shopgrid products create --name Laptop --price 1299.99 --category Electronics --stock 10
//	shopgrid products stock 2 --by -3
//	shopgrid products delete 2
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally filtered by exact category",
	Run:   runProductsList,
}

var productsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch one product",
	Args:  cobra.ExactArgs(1),
	Run:   runProductsGet,
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	Run:   runProductsCreate,
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a product (only the supplied flags change)",
	Args:  cobra.ExactArgs(1),
	Run:   runProductsUpdate,
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a product (existing order lines keep their snapshot)",
	Args:  cobra.ExactArgs(1),
	Run:   runProductsDelete,
}

var productsStockCmd = &cobra.Command{
	Use:   "stock [id]",
	Short: "Adjust a product's stock by a signed delta",
	Args:  cobra.ExactArgs(1),
	Run:   runProductsStock,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	productsListCmd.Flags().StringVar(&productCategory, "category", "",
		"Filter to one category (exact match)")

	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().StringVar(&productDescription, "description", "", "Product description")
		c.Flags().Float64Var(&productPrice, "price", 0, "Unit price")
		c.Flags().StringVar(&productCategory, "category", "", "Product category")
		c.Flags().IntVar(&productStock, "stock", 0, "Stock on hand")
	}

	productsStockCmd.Flags().IntVar(&stockDelta, "by", 0,
		"Signed stock delta (negative allowed)")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	productsCmd.AddCommand(productsStockCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runProductsList(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	cli := newClient()
	var (
		list []datatypes.Product
		err  error
	)
	if productCategory != "" {
		list, err = cli.FetchProductsByCategory(ctx, productCategory)
	} else {
		list, err = cli.FetchProducts(ctx)
	}
	if err != nil {
		fail("products list", err)
	}
	printJSON(list)
}

func runProductsGet(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	p, err := newClient().FetchProduct(ctx, args[0])
	if err != nil {
		fail("products get", err)
	}
	printJSON(p)
}

func runProductsCreate(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	in := datatypes.CreateProductInput{
		Name:        productName,
		Description: productDescription,
		Price:       productPrice,
		Category:    productCategory,
		Stock:       productStock,
	}
	p, err := newClient().CreateProduct(ctx, in)
	if err != nil {
		fail("products create", err)
	}
	logger.Info("product created", "product_id", p.ID)
	printJSON(p)
}

func runProductsUpdate(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	var in datatypes.UpdateProductInput
	if cmd.Flags().Changed("name") {
		in.Name = &productName
	}
	if cmd.Flags().Changed("description") {
		in.Description = &productDescription
	}
	if cmd.Flags().Changed("price") {
		in.Price = &productPrice
	}
	if cmd.Flags().Changed("category") {
		in.Category = &productCategory
	}
	if cmd.Flags().Changed("stock") {
		in.Stock = &productStock
	}
	p, err := newClient().UpdateProduct(ctx, args[0], in)
	if err != nil {
		fail("products update", err)
	}
	printJSON(p)
}

func runProductsDelete(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	p, err := newClient().DeleteProduct(ctx, args[0])
	if err != nil {
		fail("products delete", err)
	}
	logger.Info("product deleted", "product_id", p.ID)
	printJSON(p)
}

func runProductsStock(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	p, err := newClient().UpdateProductStock(ctx, args[0], stockDelta)
	if err != nil {
		fail("products stock", err)
	}
	logger.Info("stock adjusted", "product_id", p.ID, "delta", stockDelta, "stock", p.Stock)
	printJSON(p)
}
