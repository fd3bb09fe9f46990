// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ParkChat

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The Supabase URL and API key have no sane defaults: without them every
// request would fail against the external services, so a missing value
// aborts startup instead.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Supabase.URL == "" {
		return ErrMissingSupabaseURL
	}

	if cfg.Supabase.AnonKey == "" {
		return ErrMissingSupabaseKey
	}

	return nil
}
