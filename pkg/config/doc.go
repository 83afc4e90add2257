// Package config loads typed configuration from environment variables,
// with optional .env file support and per-type caching.
//
// Declare a struct with `env` tags, then Load (or MustLoad) it anywhere;
// the expensive parse happens once per type for the process lifetime. Use
// Reset in tests that mutate the environment between cases.
package config
