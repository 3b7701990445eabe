package gemini

import (
	"net/http"

	basecfg "github.com/intelia/rfpaccel/genai/llm/provider/base"
)

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { basecfg.WithBaseURL(baseURL)(&c.Config) }
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { basecfg.WithHTTPClient(httpClient)(&c.Config) }
}

func WithModel(model string) ClientOption {
	return func(c *Client) { basecfg.WithModel(model)(&c.Config) }
}

func WithVersion(version string) ClientOption {
	return func(c *Client) { c.Version = version }
}

// WithMaxTokens sets the default output budget applied when a request
// does not carry its own.
func WithMaxTokens(maxTokens int) ClientOption {
	return func(c *Client) {
		if maxTokens > 0 {
			c.MaxTokens = maxTokens
		}
	}
}

// WithTemperature sets the default sampling temperature applied when a
// request does not carry its own.
func WithTemperature(temperature float64) ClientOption {
	return func(c *Client) { c.Temperature = &temperature }
}
