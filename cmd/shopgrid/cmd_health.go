// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// healthCmd pings the server's liveness endpoint.
//
// # Description
//
// Issues a plain GET /health against the configured server and prints
// the status payload. Exits non-zero when the server is unreachable,
// which makes it usable from scripts and readiness checks.
//
// # Examples
//
//	shopgrid health
//	shopgrid health --server http://staging:4000
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the storefront server is up",
	Run:   runHealth,
}

func runHealth(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	hs, err := newClient().Health(ctx)
	if err != nil {
		fail("health", err)
	}
	printJSON(hs)
}
