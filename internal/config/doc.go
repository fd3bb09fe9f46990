// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// The main entry point is [GetStructuredConfig]. Loading fails fast at
// startup when the table-store URL or API key is absent, so a misconfigured
// process never reaches its first request.
package config
