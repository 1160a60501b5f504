// Package config loads, normalizes, and validates the TOML configuration for
// subweave. Path values support ~ expansion; every field has a repository
// default so a minimal file only needs the Groq API key.
package config
