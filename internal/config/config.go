// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ParkChat

package config

import (
	"time"
)

// Default values applied after all sources are merged, so that an explicit
// env variable or flag always wins.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 15 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// parkchat-api application. It aggregates all sub-configurations and is
// populated by merging values from environment variables and command-line
// flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Supabase holds the endpoints and credential for the external table
	// store and identity provider. Both services live behind the same
	// Supabase project URL.
	Supabase Supabase `envPrefix:"SUPABASE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`
}

// Supabase holds connection settings for the hosted Supabase project.
type Supabase struct {
	// URL is the project base URL (e.g. "https://abc.supabase.co").
	// The table store is reached under /rest/v1 and the identity
	// provider under /auth/v1.
	// Env: SUPABASE_URL
	URL string `env:"URL"`

	// AnonKey is the project API key sent as the "apikey" header on
	// every outbound call. Must be kept confidential.
	// Env: SUPABASE_ANON_KEY
	AnonKey string `env:"ANON_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound call to the identity provider
	// and the table store (e.g. "15s", "1m"). An expired call surfaces
	// to the client as the corresponding auth or store error.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		build()
}
