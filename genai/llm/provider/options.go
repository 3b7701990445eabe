package provider

// Supported model providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// Options selects and parameterizes a model provider.
type Options struct {
	Provider string `yaml:"provider,omitempty" json:"provider,omitempty"`

	// Model is the provider-specific model name.
	Model string `yaml:"model,omitempty" json:"model,omitempty"`

	// APIKeyURL is a scy secret URL resolving to the provider API key.
	APIKeyURL string `yaml:"apiKeyURL,omitempty" json:"apiKeyURL,omitempty"`

	// URL overrides the provider endpoint (local gateways, test servers).
	URL string `yaml:"url,omitempty" json:"url,omitempty"`

	// Temperature and MaxTokens become client defaults.
	Temperature float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	MaxTokens   int     `yaml:"maxTokens,omitempty" json:"maxTokens,omitempty"`
}
