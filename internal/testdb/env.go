//go:build integration

package testdb

import "os"

// URLEnvVars are checked in order for an existing test database.
var URLEnvVars = []string{"NEWS_TEST_DATABASE_URL", "DATABASE_URL"}

// DatabaseURL returns the first configured test database URL, or "".
func DatabaseURL() string {
	for _, name := range URLEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
