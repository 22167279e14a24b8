package repository

import "os"

// tableNameFromEnv resolves a DynamoDB table name from the environment,
// falling back to the compiled-in default when the variable is unset or
// blank. Repositories read it once at construction time.
func tableNameFromEnv(envKey, fallback string) string {
	if name := os.Getenv(envKey); name != "" {
		return name
	}
	return fallback
}
