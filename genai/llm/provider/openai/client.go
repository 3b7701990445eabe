package openai

import (
	"net/http"
	"os"
	"time"

	basecfg "github.com/intelia/rfpaccel/genai/llm/provider/base"
)

const openAIEndpoint = "https://api.openai.com/v1"

// Client represents an OpenAI-compatible chat completions client.
type Client struct {
	basecfg.Config
	APIKey string

	// Defaults applied when GenerateRequest.Options leaves the respective
	// field unset.
	MaxTokens   int
	Temperature *float64
}

// NewClient creates a new OpenAI client with the given API key and model.
func NewClient(apiKey, model string, options ...ClientOption) *Client {
	client := &Client{
		Config: basecfg.Config{
			HTTPClient: &http.Client{Timeout: 5 * time.Minute},
			BaseURL:    openAIEndpoint,
			Model:      model,
		},
		APIKey: apiKey,
	}
	for _, option := range options {
		option(client)
	}
	if client.APIKey == "" {
		client.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return client
}
