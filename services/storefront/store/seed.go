// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"time"

	"github.com/shopgrid/shopgrid/services/storefront/datatypes"
)

// Seed loads the demo fixtures: two users, three products, and two orders
// wired together by fixed ids ("1".."3"). Intended for fresh stores at
// startup; calling it twice duplicates positions behind the same ids, so
// don't.
func Seed(users *UserStore, products *ProductStore, orders *OrderStore) {
	now := time.Now().UTC()

	age30, age25 := 30, 25
	users.put(datatypes.User{
		ID: "1", Name: "John Doe", Email: "john@example.com", Age: &age30,
		CreatedAt: now, UpdatedAt: now,
	})
	users.put(datatypes.User{
		ID: "2", Name: "Jane Smith", Email: "jane@example.com", Age: &age25,
		CreatedAt: now, UpdatedAt: now,
	})

	products.put(datatypes.Product{
		ID: "1", Name: "Laptop",
		Description: "High-performance laptop for professionals",
		Price:       1299.99, Category: "Electronics", Stock: 50,
		CreatedAt: now, UpdatedAt: now,
	})
	products.put(datatypes.Product{
		ID: "2", Name: "Coffee Mug",
		Description: "Ceramic coffee mug with handle",
		Price:       12.99, Category: "Kitchen", Stock: 200,
		CreatedAt: now, UpdatedAt: now,
	})
	products.put(datatypes.Product{
		ID: "3", Name: "Running Shoes",
		Description: "Comfortable running shoes for athletes",
		Price:       89.99, Category: "Sports", Stock: 75,
		CreatedAt: now, UpdatedAt: now,
	})

	orders.put(datatypes.Order{
		ID: "1", UserID: "1",
		Items: []datatypes.OrderItem{
			{ProductID: "1", Quantity: 1, Price: 1299.99},
			{ProductID: "2", Quantity: 2, Price: 12.99},
		},
		Total: 1325.97, Status: "pending",
		ShippingAddress: datatypes.ShippingAddress{
			Street: "123 Main St", City: "New York", State: "NY", ZipCode: "10001",
		},
		CreatedAt: now, UpdatedAt: now,
	})
	orders.put(datatypes.Order{
		ID: "2", UserID: "2",
		Items: []datatypes.OrderItem{
			{ProductID: "3", Quantity: 1, Price: 89.99},
		},
		Total: 89.99, Status: "completed",
		ShippingAddress: datatypes.ShippingAddress{
			Street: "456 Oak Ave", City: "Los Angeles", State: "CA", ZipCode: "90210",
		},
		CreatedAt: now, UpdatedAt: now,
	})
}
