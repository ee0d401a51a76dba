// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. Every setting has a
// default suitable for local development, so the server starts with no
// configuration at all.
package config
