package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manoharask/msme/internal/llm"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.Core.HomeDir)
	assert.Contains(t, cfg.Core.HomeDir, ".msme")
	assert.Equal(t, 2*time.Minute, cfg.Core.Timeout)
	assert.False(t, cfg.Core.Debug)

	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Username)
	assert.Equal(t, 50, cfg.Neo4j.MaxConnectionPoolSize)
	assert.Equal(t, 30*time.Second, cfg.Neo4j.ConnectionTimeout)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
core:
  timeout: 90s
  debug: true
neo4j:
  uri: bolt://graph.internal:7687
  username: neo4j
  password: secret
  database: msme
  max_connection_pool_size: 25
llm:
  provider: ollama
  model: llama3
  base_url: http://localhost:11434
logging:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	loader := NewConfigLoader(NewValidator())
	cfg, err := loader.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Core.Timeout)
	assert.True(t, cfg.Core.Debug)
	assert.Equal(t, "bolt://graph.internal:7687", cfg.Neo4j.URI)
	assert.Equal(t, "msme", cfg.Neo4j.Database)
	assert.Equal(t, 25, cfg.Neo4j.MaxConnectionPoolSize)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInterpolatesEnvVars(t *testing.T) {
	t.Setenv("TEST_NEO4J_PASSWORD", "s3cr3t")
	t.Setenv("TEST_LLM_KEY", "sk-test")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
neo4j:
  uri: bolt://localhost:7687
  username: neo4j
  password: ${TEST_NEO4J_PASSWORD}
llm:
  provider: openai
  model: gpt-4o-mini
  api_key: ${TEST_LLM_KEY}
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	loader := NewConfigLoader(NewValidator())
	cfg, err := loader.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", cfg.Neo4j.Password)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
}

func TestLoadUnsetEnvVarResolvesEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
neo4j:
  uri: bolt://localhost:7687
  password: ${DEFINITELY_NOT_SET_VAR_12345}
llm:
  provider: mock
  model: mock-model
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	loader := NewConfigLoader(NewValidator())
	cfg, err := loader.Load(configPath)
	require.NoError(t, err)

	assert.Empty(t, cfg.Neo4j.Password)
}

func TestLoadMissingFileFails(t *testing.T) {
	loader := NewConfigLoader(NewValidator())
	_, err := loader.Load("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoadWithDefaultsMissingFile(t *testing.T) {
	loader := NewConfigLoader(NewValidator())
	cfg, err := loader.LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	// Env references in the defaults resolve rather than leak through.
	assert.NotContains(t, cfg.Neo4j.Password, "${")
	assert.NotContains(t, cfg.LLM.APIKey, "${")
}

func TestValidateRejectsBadProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Provider = "anthropic"

	err := NewValidator().Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.provider")
}

func TestValidateOllamaRequiresBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Provider = "ollama"
	cfg.LLM.BaseURL = ""

	err := NewValidator().Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestValidateMissingURI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Neo4j.URI = ""

	err := NewValidator().Validate(cfg)
	require.Error(t, err)
}

func TestGraphClientConfigConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Neo4j.URI = "neo4j://cluster:7687"
	cfg.Neo4j.Database = "msme"
	cfg.Neo4j.MaxConnectionPoolSize = 10

	gc := cfg.GraphClientConfig()
	assert.Equal(t, "neo4j://cluster:7687", gc.URI)
	assert.Equal(t, "msme", gc.Database)
	assert.Equal(t, 10, gc.MaxConnectionPoolSize)
}

func TestProviderConfigConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Provider = "google"
	cfg.LLM.Model = "gemini-1.5-flash"
	cfg.LLM.APIKey = "key"

	pc := cfg.ProviderConfig()
	assert.Equal(t, llm.ProviderGoogle, pc.Type)
	assert.Equal(t, "gemini-1.5-flash", pc.DefaultModel)
	assert.Equal(t, "key", pc.APIKey)
}
