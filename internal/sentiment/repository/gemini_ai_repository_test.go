package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-stock-sentiment/internal/sentiment/config"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newGeminiClient(t *testing.T, baseURL string) *genai.Client {
	t.Helper()
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "gemini-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	require.NoError(t, err)
	return client
}

func TestGeminiAIRepository_Complete(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-test:generateContent"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "Neutral, no catalyst."}]}}]}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Gemini: config.Gemini{Model: "gemini-test"}}
	repo, err := NewGeminiAIRepository(cfg, logger.NewNop(), newGeminiClient(t, srv.URL))
	require.NoError(t, err)

	text, err := repo.Complete(context.Background(), ChatRequest{
		SystemPrompt: "system",
		UserPrompt:   "user",
		Temperature:  0.3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Neutral, no catalyst.", text)
	assert.Equal(t, "gemini-test", repo.Model())

	assert.Contains(t, captured, "systemInstruction")
	genCfg, ok := captured["generationConfig"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 0.3, genCfg["temperature"], 1e-6)
}

func TestGeminiAIRepository_CompleteNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Gemini: config.Gemini{Model: "gemini-test"}}
	repo, err := NewGeminiAIRepository(cfg, logger.NewNop(), newGeminiClient(t, srv.URL))
	require.NoError(t, err)

	_, err = repo.Complete(context.Background(), ChatRequest{SystemPrompt: "s", UserPrompt: "u", Temperature: 0.3})
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestNewGeminiAIRepository_RequiresClient(t *testing.T) {
	_, err := NewGeminiAIRepository(&config.Config{}, logger.NewNop(), nil)
	assert.Error(t, err)
}
