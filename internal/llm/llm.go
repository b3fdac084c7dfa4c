package llm

import (
	"github.com/rmss-studio/tutorbot/internal/config"
	"github.com/sashabaranov/go-openai"
)

// NewClient creates a completion client for the configured provider.
// Any OpenAI-compatible endpoint works; only base_url and api_key matter.
func NewClient(cfg config.LLMConfig) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return openai.NewClientWithConfig(clientCfg)
}
