package config

import (
	"time"

	"github.com/manoharask/msme/internal/graph"
	"github.com/manoharask/msme/internal/llm"
)

// Config is the root configuration for the matching service.
type Config struct {
	Core    CoreConfig    `mapstructure:"core" yaml:"core"`
	Neo4j   Neo4jConfig   `mapstructure:"neo4j" yaml:"neo4j" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" yaml:"llm" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CoreConfig contains core application settings.
type CoreConfig struct {
	HomeDir string        `mapstructure:"home_dir" yaml:"home_dir"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"omitempty,min=1s"`
	Debug   bool          `mapstructure:"debug" yaml:"debug"`
}

// Neo4jConfig contains graph database connection settings. Credentials may
// use ${VAR_NAME} syntax to read from the environment.
type Neo4jConfig struct {
	URI                   string        `mapstructure:"uri" yaml:"uri" validate:"required"`
	Username              string        `mapstructure:"username" yaml:"username"`
	Password              string        `mapstructure:"password" yaml:"password"`
	Database              string        `mapstructure:"database" yaml:"database"`
	MaxConnectionPoolSize int           `mapstructure:"max_connection_pool_size" yaml:"max_connection_pool_size" validate:"min=0,max=1000"`
	ConnectionTimeout     time.Duration `mapstructure:"connection_timeout" yaml:"connection_timeout"`
}

// LLMConfig contains text-generation provider settings.
type LLMConfig struct {
	Provider string `mapstructure:"provider" yaml:"provider" validate:"required,oneof=openai google ollama mock"`
	Model    string `mapstructure:"model" yaml:"model" validate:"required"`
	APIKey   string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	BaseURL  string `mapstructure:"base_url" yaml:"base_url,omitempty"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=json text"`
}

// GraphClientConfig converts the Neo4j section into the graph layer's
// client configuration.
func (c *Config) GraphClientConfig() graph.GraphClientConfig {
	cfg := graph.DefaultConfig()
	cfg.URI = c.Neo4j.URI
	cfg.Username = c.Neo4j.Username
	cfg.Password = c.Neo4j.Password
	cfg.Database = c.Neo4j.Database
	if c.Neo4j.MaxConnectionPoolSize > 0 {
		cfg.MaxConnectionPoolSize = c.Neo4j.MaxConnectionPoolSize
	}
	if c.Neo4j.ConnectionTimeout > 0 {
		cfg.ConnectionTimeout = c.Neo4j.ConnectionTimeout
	}
	return cfg
}

// ProviderConfig converts the LLM section into the provider factory's
// configuration.
func (c *Config) ProviderConfig() llm.ProviderConfig {
	return llm.ProviderConfig{
		Type:         llm.ProviderType(c.LLM.Provider),
		APIKey:       c.LLM.APIKey,
		BaseURL:      c.LLM.BaseURL,
		DefaultModel: c.LLM.Model,
	}
}
