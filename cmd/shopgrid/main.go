// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// shopgrid is the command-line client for the storefront API.
//
// It drives the client SDK: every subcommand issues a tracked request and
// prints the JSON result to stdout. Configuration lives in
// ~/.shopgrid/shopgrid.yaml and can be overridden with --server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopgrid/shopgrid/client"
	"github.com/shopgrid/shopgrid/cmd/shopgrid/config"
	"github.com/shopgrid/shopgrid/pkg/logging"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

var (
	serverURL  string // Override for the configured server URL
	logVerbose bool   // Enable debug logging
)

var logger *logging.Logger

// =============================================================================
// ROOT COMMAND
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "shopgrid",
	Short: "Command-line client for the ShopGrid storefront API",
	Long: `shopgrid talks to a running storefront server.

Examples:
  shopgrid users list
  shopgrid products list --category Electronics
  shopgrid orders create --user 1 --item 2:3:12.99 --street "1 Pier Rd" --city Seattle --state WA --zip 98101
  shopgrid orders status <id> shipped`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		level := config.Global.Logging.Level
		if logVerbose {
			level = "debug"
		}
		logger = logging.New(logging.Config{
			Level:   level,
			Service: "cli",
			JSON:    config.Global.Logging.JSON,
		})
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "",
		"Storefront server URL (overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&logVerbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(healthCmd)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// newClient builds an SDK client from config and flags.
func newClient() *client.Client {
	base := config.Global.Server.URL
	if serverURL != "" {
		base = serverURL
	}
	return client.New(base)
}

// commandContext returns a context bounded by the configured timeout.
func commandContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(config.Global.Server.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// printJSON writes the value to stdout, indented.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

// fail logs the error and exits non-zero.
func fail(op string, err error) {
	logger.Error("request failed", "operation", op, "error", err.Error())
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
