package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultConfig returns a Config with sensible default values. The LLM
// API key is left empty and expected to come from the environment.
func DefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			HomeDir: DefaultHomeDir(),
			Timeout: 2 * time.Minute,
			Debug:   false,
		},
		Neo4j: Neo4jConfig{
			URI:                   "bolt://localhost:7687",
			Username:              "neo4j",
			Password:              "${NEO4J_PASSWORD}",
			Database:              "neo4j",
			MaxConnectionPoolSize: 50,
			ConnectionTimeout:     30 * time.Second,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
			APIKey:   "${OPENAI_API_KEY}",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultHomeDir returns the default application home directory,
// ~/.msme or a temporary directory if the user home cannot be determined.
func DefaultHomeDir() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".msme")
	}
	return filepath.Join(userHome, ".msme")
}

// DefaultConfigPath returns the default config file path for a given home
// directory.
func DefaultConfigPath(homeDir string) string {
	return filepath.Join(homeDir, "config.yaml")
}
