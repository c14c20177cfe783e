package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/manoharask/msme/internal/types"
)

// ConfigLoader handles loading configuration from files.
type ConfigLoader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator) ConfigLoader {
	return &viperConfigLoader{
		validator: validator,
	}
}

// Load loads configuration from the specified file path. String values may
// reference environment variables with ${VAR_NAME} syntax; unset variables
// resolve to the empty string.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED,
			"failed to read config file", err)
	}

	// Interpolate on the raw settings map so every section gets the same
	// ${VAR} treatment, then decode the interpolated map.
	raw := interpolateEnvVars(v.AllSettings())

	merged := viper.New()
	if m, ok := raw.(map[string]interface{}); ok {
		if err := merged.MergeConfigMap(m); err != nil {
			return nil, types.WrapError(types.CONFIG_PARSE_FAILED,
				"failed to merge config settings", err)
		}
	}

	var cfg Config
	if err := merged.Unmarshal(&cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED,
			"failed to unmarshal config", err)
	}

	if err := l.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration from the specified file path.
// If the file doesn't exist, returns the default configuration with
// environment references resolved.
func (l *viperConfigLoader) LoadWithDefaults(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		interpolateConfig(cfg)
		if err := l.validator.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return l.Load(path)
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// interpolateEnvVars recursively interpolates environment variables in the
// raw config map.
func interpolateEnvVars(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			result[key] = interpolateEnvVars(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, value := range v {
			result[i] = interpolateEnvVars(value)
		}
		return result
	case string:
		return interpolateString(v)
	default:
		return v
	}
}

// interpolateString replaces ${VAR_NAME} with environment variable values.
func interpolateString(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(name)
	})
}

// interpolateConfig resolves environment references on an in-memory config,
// used for the default configuration which never passes through a file.
func interpolateConfig(cfg *Config) {
	cfg.Neo4j.URI = interpolateString(cfg.Neo4j.URI)
	cfg.Neo4j.Username = interpolateString(cfg.Neo4j.Username)
	cfg.Neo4j.Password = interpolateString(cfg.Neo4j.Password)
	cfg.Neo4j.Database = interpolateString(cfg.Neo4j.Database)
	cfg.LLM.APIKey = interpolateString(cfg.LLM.APIKey)
	cfg.LLM.BaseURL = interpolateString(cfg.LLM.BaseURL)
}
