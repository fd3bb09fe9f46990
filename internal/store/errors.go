// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ParkChat

package store

import "errors"

// Sentinel errors returned by the table-store gateway. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyResult is returned by Insert when the store reports success
	// but returns zero rows.
	ErrEmptyResult = errors.New("store returned no rows for insert")
)
