// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ParkChat

package http

// Client-facing error messages for authentication failures. These exact
// strings are part of the API contract and must not drift.
const (
	msgNoToken      = "No token provided"
	msgInvalidToken = "Invalid token"
	msgNotFound     = "Not found"
)

// ValidationError reports a request whose parameters fail validation
// before any collaborator is called. It maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// errFieldMissing builds the 400 error for a required query parameter or
// body field that the request did not supply.
func errFieldMissing(field string) *ValidationError {
	return &ValidationError{Message: field + " missing"}
}
