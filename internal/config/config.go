// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles the runtime configuration for one pipeline run.
// The Config struct is built once at startup and passed by parameter to
// each stage; no stage reads settings on its own.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/patent-scout/pkg/types"
)

// Defaults. The search defaults match the PatentsView patent endpoint; the
// LLM defaults match a local Ollama server exposing the OpenAI-compatible
// /v1 surface.
const (
	DefaultEndpoint   = "https://search.patentsview.org/api/v1/patent/"
	DefaultMaxResults = 5
	DefaultMinDate    = "2010-01-01"
	DefaultBaseURL    = "http://localhost:11434/v1"
	DefaultModel      = "llama3.2:3b"
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "patent-scout/0.1"
)

// EnvAPIKey is the environment variable holding the PatentsView API key.
const EnvAPIKey = "PATENTSEARCH_API_KEY"

// SecretAPIKey is the filename for the PatentsView key under .secrets/.
const SecretAPIKey = "patentsview-api-key"

// SecretLLMKey is the filename for an optional inference-endpoint key.
const SecretLLMKey = "llm-api-key"

// Config groups the per-stage configurations for one run.
type Config struct {
	Search types.SearchConfig `json:"search" yaml:"search"`
	LLM    types.LLMConfig    `json:"llm" yaml:"llm"`
}

// Load builds a Config from viper settings (config file and PATENT_SCOUT_*
// environment), the process environment, and the loaded secrets map.
// Resolution order for the search API key: PATENTSEARCH_API_KEY (including
// values godotenv loaded from .env), config file, .secrets/patentsview-api-key.
func Load(loadedSecrets map[string]string) *Config {
	timeout := viper.GetDuration("http.timeout")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpCfg := types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: DefaultUserAgent,
	}

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		apiKey = viper.GetString("search.api_key")
	}
	if apiKey == "" {
		apiKey = loadedSecrets[SecretAPIKey]
	}

	llmKey := viper.GetString("llm.api_key")
	if llmKey == "" {
		llmKey = loadedSecrets[SecretLLMKey]
	}

	return &Config{
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			Endpoint:   strSetting("search.endpoint", DefaultEndpoint),
			APIKey:     apiKey,
			MaxResults: intSetting("search.max_results", DefaultMaxResults),
			MinDate:    strSetting("search.min_date", DefaultMinDate),
		},
		LLM: types.LLMConfig{
			HTTPConfig: httpCfg,
			BaseURL:    strSetting("llm.base_url", DefaultBaseURL),
			Model:      strSetting("llm.model", DefaultModel),
			APIKey:     llmKey,
		},
	}
}

// Validate checks the settings that must be present before any network call.
func (c *Config) Validate() error {
	if c.Search.APIKey == "" {
		return fmt.Errorf("%s is not set (export it, add it to .env, or create .secrets/%s): %w",
			EnvAPIKey, SecretAPIKey, types.ErrConfiguration)
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive, got %d: %w",
			c.Search.MaxResults, types.ErrConfiguration)
	}
	return nil
}

func strSetting(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func intSetting(key string, fallback int) int {
	if v := viper.GetInt(key); v != 0 {
		return v
	}
	return fallback
}
