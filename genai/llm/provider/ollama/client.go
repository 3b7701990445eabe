package ollama

import (
	"net/http"
	"time"

	basecfg "github.com/intelia/rfpaccel/genai/llm/provider/base"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultTimeout = 120 * time.Second
)

// Client represents an Ollama API client.
type Client struct {
	basecfg.Config
}

// NewClient creates a new Ollama client.
func NewClient(model string, options ...ClientOption) *Client {
	client := &Client{
		Config: basecfg.Config{
			BaseURL: defaultBaseURL,
			Model:   model,
			HTTPClient: &http.Client{
				Transport: &http.Transport{
					TLSHandshakeTimeout:   10 * time.Second,
					IdleConnTimeout:       10 * time.Second,
					ResponseHeaderTimeout: defaultTimeout,
				},
			},
			Timeout: defaultTimeout,
		},
	}
	for _, option := range options {
		option(client)
	}
	return client
}
