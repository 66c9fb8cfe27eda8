// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes provides data structures for the storefront service.
//
// This file holds the shared validator instance used by all input types.
// Entity and input types live in user.go, product.go, and order.go.
package datatypes

import (
	"github.com/go-playground/validator/v10"
)

// =============================================================================
// Shared Validator Instance
// =============================================================================

// inputValidate is the validator instance for storefront input types.
// Initialized in init() with custom validators.
var inputValidate *validator.Validate

func init() {
	inputValidate = validator.New()

	// Zip codes in shipping addresses are free-form but bounded, to keep
	// obviously broken payloads out of the store.
	_ = inputValidate.RegisterValidation("zipcode", validateZipCode)
}

// validateZipCode validates that a zip code field is 3-10 characters.
//
// The reference data uses US 5-digit codes, but the contract is deliberately
// loose: the field is a value object, not a postal routing key.
//
// # Inputs
//
//   - fl: Validator field level containing the string to validate
//
// # Outputs
//
//   - bool: true if the field length is within bounds
func validateZipCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return len(code) >= 3 && len(code) <= 10
}
