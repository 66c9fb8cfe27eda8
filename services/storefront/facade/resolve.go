// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package facade

import (
	"fmt"

	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
	"github.com/shopgrid/shopgrid/services/storefront/store"
)

// notFound wraps store.ErrNotFound with the entity kind and id.
func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, store.ErrNotFound)
}

// resolveOrder builds the read model for one order: the user looked up by
// userId and each line's product looked up by productId. Dangling
// references resolve to nil. Lookups happen on every call; nothing is
// cached between requests.
func (f *Facade) resolveOrder(o datatypes.Order) datatypes.OrderDetail {
	d := datatypes.OrderDetail{
		ID:              o.ID,
		UserID:          o.UserID,
		Total:           o.Total,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           make([]datatypes.OrderItemDetail, 0, len(o.Items)),
	}
	if u, ok := f.users.GetByID(o.UserID); ok {
		d.User = &u
	}
	for _, it := range o.Items {
		line := datatypes.OrderItemDetail{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		if p, ok := f.products.GetByID(it.ProductID); ok {
			line.Product = &p
		}
		d.Items = append(d.Items, line)
	}
	return d
}

func (f *Facade) resolveAll(orders []datatypes.Order) []datatypes.OrderDetail {
	out := make([]datatypes.OrderDetail, 0, len(orders))
	for _, o := range orders {
		out = append(out, f.resolveOrder(o))
	}
	return out
}
