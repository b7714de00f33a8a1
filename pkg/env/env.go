// Package env reads raw environment variables for the few spots that run
// before envconfig has loaded (logger output format, bootstrap).
package env

import "os"

// Get returns the variable's value, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
