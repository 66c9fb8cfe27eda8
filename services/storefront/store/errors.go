// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package store provides in-memory repositories for storefront entities.
//
// Each repository exclusively owns its collection. Records are held in
// insertion order with an id index for O(1) lookup. All state lives in
// process memory; nothing is persisted across restarts.
//
// # Concurrency
//
// Every repository is guarded by a RWMutex, so individual operations are
// atomic. There is no transaction boundary across operations and no
// optimistic-concurrency token: two interleaved writes to the same record
// resolve as last write wins.
package store

import "errors"

// ErrNotFound is returned when an operation targets an id that is absent
// from its repository. Callers should test with errors.Is.
var ErrNotFound = errors.New("not found")
