package ai

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Settings selects and configures a Backend.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// DefaultModel returns the model used by provider when none is configured.
func DefaultModel(provider string) string {
	switch strings.ToLower(provider) {
	case ProviderGemini:
		return DefaultGeminiModel
	default:
		return DefaultOpenAIModel
	}
}

func NewBackend(ctx context.Context, s Settings) (Backend, error) {
	switch strings.ToLower(s.Provider) {
	case "", ProviderOpenAI:
		return NewOpenAI(s.APIKey, s.Model, s.BaseURL)
	case ProviderGemini:
		return NewGemini(ctx, s.APIKey, s.Model, s.BaseURL)
	default:
		return nil, fmt.Errorf("unknown ai provider %q", s.Provider)
	}
}
