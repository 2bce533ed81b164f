package factory

import (
	"fmt"
	"time"

	"ai-devicechat-be/internal/pkg/logger"
	"ai-devicechat-be/pkg/llm"
	"ai-devicechat-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL string, timeout time.Duration, log logger.ILogger) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName, timeout, log), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
