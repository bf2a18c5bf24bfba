// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "patent-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the prior-art search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the PatentsView patent search URL.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// APIKey is the PatentsView API key, sent as the X-Api-Key header.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults is the maximum number of patents to retrieve (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MinDate restricts results to patents granted on or after this date
	// (YYYY-MM-DD, default 2010-01-01).
	MinDate string `json:"min_date" yaml:"min_date"`
}

// LLMConfig holds settings for the analysis stage. The endpoint must speak
// the OpenAI chat-completions surface; a local Ollama server does.
type LLMConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the inference endpoint base (default "http://localhost:11434/v1").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model is the model identifier (e.g. "llama3.2:3b").
	Model string `json:"model" yaml:"model"`

	// APIKey is the bearer token for the endpoint. Ollama ignores it;
	// remote OpenAI-compatible gateways require it.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}
