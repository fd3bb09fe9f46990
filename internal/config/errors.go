package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing. Both abort startup with a clear
// diagnostic rather than letting the first request fail.
var (
	// ErrMissingSupabaseURL indicates that neither the SUPABASE_URL
	// environment variable nor the -supabase-url flag was provided.
	ErrMissingSupabaseURL = errors.New("missing Supabase URL (set SUPABASE_URL or -supabase-url)")
	// ErrMissingSupabaseKey indicates that neither the SUPABASE_ANON_KEY
	// environment variable nor the -supabase-key flag was provided.
	ErrMissingSupabaseKey = errors.New("missing Supabase API key (set SUPABASE_ANON_KEY or -supabase-key)")
)
