// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package facade

import "github.com/shopgrid/shopgrid/services/storefront/datatypes"

// OrderTotal derives an order's total from its line items.
//
// Pure function: sum of Price*Quantity over the items. The façade applies
// it on order creation (always) and on update when the payload includes
// items; the store applies the same rule on add-item under its lock. An
// update that omits items skips recomputation and the stored total rides
// along unchanged.
func OrderTotal(items []datatypes.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// itemTotal is OrderTotal over input lines, used before they are stored.
func itemTotal(items []datatypes.OrderItemInput) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
