// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ParkChat

package auth

import "errors"

// Sentinel errors returned by the credential verifier. The HTTP layer maps
// them to status codes with [errors.Is]: ErrNoToken to 401, ErrInvalidToken
// to 403.
var (
	// ErrNoToken is returned when no bearer token could be extracted from
	// the request: the Authorization header is absent, has no second
	// space-separated part, or the token value is empty.
	ErrNoToken = errors.New("no token provided")

	// ErrInvalidToken is returned when the identity provider rejects the
	// token, or the verification call itself fails (transport fault,
	// timeout). The two cases are deliberately indistinguishable to the
	// client.
	ErrInvalidToken = errors.New("invalid token")
)
