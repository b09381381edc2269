// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file and environment variables. It
// provides type-safe access to the settings the server and CLI need.
package config
