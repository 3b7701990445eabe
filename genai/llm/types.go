// Package llm defines the provider-neutral request/response model shared
// by all generative-model clients.
package llm

import "context"

// MessageRole identifies the message sender.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

func (m MessageRole) String() string {
	return string(m)
}

// Message is a single conversation message.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
}

// Options carries generation parameters for the request.
type Options struct {
	// Model is the model to use.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`

	// Temperature is the temperature for sampling, between 0 and 1.
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// TopP is the cumulative probability for top-p sampling.
	TopP float64 `json:"top_p,omitempty" yaml:"top_p,omitempty"`

	// TopK is the number of tokens to consider for top-k sampling.
	TopK int `json:"top_k,omitempty" yaml:"top_k,omitempty"`

	// N is how many completion choices to generate.
	N int `json:"n,omitempty" yaml:"n,omitempty"`

	// StopWords is a list of sequences to stop on.
	StopWords []string `json:"stop_words,omitempty" yaml:"stop_words,omitempty"`

	// Stream requests incremental delivery where the provider supports it.
	Stream bool `json:"stream,omitempty" yaml:"stream,omitempty"`
}

// GenerateRequest represents a chat generation request.
type GenerateRequest struct {
	// Messages is the list of messages in the conversation.
	Messages []Message `json:"messages"`

	// Options contains additional options for the request.
	Options *Options `json:"options,omitempty"`
}

// GenerateResponse represents a response from a chat-based model.
type GenerateResponse struct {
	// Choices contains the generated responses.
	Choices []Choice `json:"choices"`

	// Usage contains token usage information.
	Usage *Usage `json:"usage,omitempty"`
	Model string `json:"model,omitempty"`
}

// Choice represents a single response choice.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// Usage contains token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Model is implemented by every provider client.
type Model interface {
	Generate(ctx context.Context, request *GenerateRequest) (*GenerateResponse, error)
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
