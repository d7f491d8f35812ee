/* utils.go
 * Utility functions used across the application
 */

package main

import (
	"fmt"
	"os"
	"strings"
)

// convertStrToBool converts a string of true or false into a boolean
// Preconditions: receives string containing either true or false (case
// insensitive, surrounding whitespace ignored)
// Postconditions: returns the boolean value, or an error for anything else
func convertStrToBool(str string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// getEnv reads an environment variable, falling back to a default when it is
// unset or blank
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
