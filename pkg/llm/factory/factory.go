package factory

import (
	"fmt"

	"fitcoach-be/pkg/llm"
	"fitcoach-be/pkg/llm/anthropic"
	"fitcoach-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, anthropicKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "anthropic":
		if anthropicKey == "" {
			return nil, fmt.Errorf("anthropic provider requires an API key")
		}
		return anthropic.NewAnthropicProvider(anthropicKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
