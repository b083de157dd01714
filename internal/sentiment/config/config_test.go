package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.API.Port)
	assert.Equal(t, "https://serpapi.com/search.json", cfg.SerpAPI.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.SerpAPI.Timeout)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, 90*time.Second, cfg.OpenAI.Timeout)
}

func TestLoad_LegacySecretVariables(t *testing.T) {
	t.Setenv("SEARCH_KEY", "serp-secret")
	t.Setenv("OPENAI_KEY", "openai-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "serp-secret", cfg.SerpAPI.APIKey)
	assert.Equal(t, "openai-secret", cfg.OpenAI.APIKey)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  port: 8080
ai:
  provider: gemini
serpapi:
  timeout: 3s
gemini:
  model: gemini-1.5-pro
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 3*time.Second, cfg.SerpAPI.Timeout)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
}
