package config

import (
	"os"
	"strconv"
)

// Env holds process-level settings for the CLI, taken from environment
// variables with flag overrides layered on top by the caller.
type Env struct {
	// VaultDir is the vault root directory.
	VaultDir string
	// ConfigFile is the path of the engine config file.
	ConfigFile string
	// Debug enables debug logging.
	Debug bool
}

// FromEnv creates an Env from environment variables.
func FromEnv() *Env {
	return &Env{
		VaultDir:   getEnv("KIN_VAULT", "."),
		ConfigFile: getEnv("KIN_CONFIG", "kin.yaml"),
		Debug:      getEnvBool("KIN_DEBUG", false),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
