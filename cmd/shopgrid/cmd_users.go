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
	userName  string // --name for create/update
	userEmail string // --email for create/update
	userAge   int    // --age for create/update; -1 means not supplied
)

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

// usersCmd groups the user subcommands.
//
// # Description
//
// Manages user accounts through the storefront API. "get" includes the
// user's orders; "delete" prints the removed record.
//
// # Examples
//
//	shopgrid users list
//	shopgrid users get 1
//	shopgrid users create --name "Ada" --email ada@example.com --age 36
//	shopgrid users update 1 --email ada@newdomain.com
//	shopgrid users delete 1
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run:   runUsersList,
}

var usersGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch one user with their orders",
	Args:  cobra.ExactArgs(1),
	Run:   runUsersGet,
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Run:   runUsersCreate,
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a user (only the supplied flags change)",
	Args:  cobra.ExactArgs(1),
	Run:   runUsersUpdate,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a user (their orders are left in place)",
	Args:  cobra.ExactArgs(1),
	Run:   runUsersDelete,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	for _, c := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		c.Flags().StringVar(&userName, "name", "", "User display name")
		c.Flags().StringVar(&userEmail, "email", "", "User email address")
		c.Flags().IntVar(&userAge, "age", -1, "User age (optional)")
	}

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runUsersList(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	list, err := newClient().FetchUsers(ctx)
	if err != nil {
		fail("users list", err)
	}
	printJSON(list)
}

func runUsersGet(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	detail, err := newClient().FetchUser(ctx, args[0])
	if err != nil {
		fail("users get", err)
	}
	printJSON(detail)
}

func runUsersCreate(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	in := datatypes.CreateUserInput{Name: userName, Email: userEmail}
	if cmd.Flags().Changed("age") {
		in.Age = &userAge
	}
	u, err := newClient().CreateUser(ctx, in)
	if err != nil {
		fail("users create", err)
	}
	logger.Info("user created", "user_id", u.ID)
	printJSON(u)
}

func runUsersUpdate(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	var in datatypes.UpdateUserInput
	if cmd.Flags().Changed("name") {
		in.Name = &userName
	}
	if cmd.Flags().Changed("email") {
		in.Email = &userEmail
	}
	if cmd.Flags().Changed("age") {
		in.Age = &userAge
	}
	u, err := newClient().UpdateUser(ctx, args[0], in)
	if err != nil {
		fail("users update", err)
	}
	printJSON(u)
}

func runUsersDelete(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	u, err := newClient().DeleteUser(ctx, args[0])
	if err != nil {
		fail("users delete", err)
	}
	logger.Info("user deleted", "user_id", u.ID)
	printJSON(u)
}
