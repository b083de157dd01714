package config

import (
	"time"

	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/config"
)

// SerpAPI holds the configuration for the web search provider.
type SerpAPI struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AI holds configuration for AI providers.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// OpenAI holds the configuration for the OpenAI API.
type OpenAI struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Config holds the full configuration for the sentiment service.
type Config struct {
	App     config.App    `mapstructure:"app"`
	Logger  config.Logger `mapstructure:"logger"`
	API     config.API    `mapstructure:"api"`
	SerpAPI SerpAPI       `mapstructure:"serpapi"`
	AI      AI            `mapstructure:"ai"`
	OpenAI  OpenAI        `mapstructure:"openai"`
	Gemini  Gemini        `mapstructure:"gemini"`
}

// DefaultSearchBaseURL is the SerpAPI search endpoint.
const DefaultSearchBaseURL = "https://serpapi.com/search.json"

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":            "sentiment-service",
		"app.env":             "development",
		"app.version":         "1.0.0",
		"logger.level":        "info",
		"logger.encoding":     "json",
		"api.host":            "0.0.0.0",
		"api.port":            5000,
		"serpapi.base_url":    DefaultSearchBaseURL,
		"serpapi.api_key":     "",
		"serpapi.timeout":     10 * time.Second,
		"ai.provider":         common.AIProviderOpenAI,
		"openai.api_key":      "",
		"openai.base_url":     "",
		"openai.model":        "gpt-4o",
		"openai.timeout":      90 * time.Second,
		"gemini.api_key":      "",
		"gemini.base_url":     "",
		"gemini.model":        "gemini-2.0-flash",
		"gemini.timeout":      90 * time.Second,
	}
}

// The deployed service has always read its secrets from these variables.
var envBindings = map[string][]string{
	"serpapi.api_key": {"SEARCH_KEY"},
	"openai.api_key":  {"OPENAI_KEY"},
	"gemini.api_key":  {"GEMINI_API_KEY"},
}

// Load loads the sentiment service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, config.Options{
		Defaults:    defaults(),
		EnvBindings: envBindings,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
