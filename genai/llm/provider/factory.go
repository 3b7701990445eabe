// Package provider constructs generative-model clients from
// configuration, resolving API keys through scy secret URLs.
package provider

import (
	"context"
	"fmt"

	"github.com/intelia/rfpaccel/genai/llm"
	"github.com/intelia/rfpaccel/genai/llm/provider/gemini"
	"github.com/intelia/rfpaccel/genai/llm/provider/ollama"
	"github.com/intelia/rfpaccel/genai/llm/provider/openai"
	"github.com/viant/scy/cred/secret"
)

// Factory creates model clients.
type Factory struct {
	secrets *secret.Service
}

// New returns a factory with the default secret resolver.
func New() *Factory {
	return &Factory{secrets: secret.New()}
}

// CreateModel returns a model client for the configured provider.
func (f *Factory) CreateModel(ctx context.Context, options *Options) (llm.Model, error) {
	if options.Provider == "" {
		return nil, fmt.Errorf("provider was empty")
	}
	switch options.Provider {
	case ProviderOpenAI:
		apiKey, err := f.apiKey(ctx, options.APIKeyURL)
		if err != nil {
			return nil, err
		}
		return openai.NewClient(apiKey, options.Model,
			openai.WithBaseURL(options.URL),
			openai.WithTemperature(options.Temperature),
			openai.WithMaxTokens(options.MaxTokens)), nil
	case ProviderGemini:
		apiKey, err := f.apiKey(ctx, options.APIKeyURL)
		if err != nil {
			return nil, err
		}
		return gemini.NewClient(apiKey, options.Model,
			gemini.WithBaseURL(options.URL),
			gemini.WithTemperature(options.Temperature),
			gemini.WithMaxTokens(options.MaxTokens)), nil
	case ProviderOllama:
		return ollama.NewClient(options.Model,
			ollama.WithBaseURL(options.URL)), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %v", options.Provider)
	}
}

func (f *Factory) apiKey(ctx context.Context, APIKeyURL string) (string, error) {
	if APIKeyURL == "" {
		return "", nil
	}
	key, err := f.secrets.GeyKey(ctx, APIKeyURL)
	if err != nil {
		return "", err
	}
	return key.Secret, nil
}
