package openai

import (
	"github.com/intelia/rfpaccel/genai/llm"
)

// ToRequest converts an llm.GenerateRequest to the wire request.
func (c *Client) ToRequest(request *llm.GenerateRequest) *Request {
	req := &Request{Model: c.Model}
	for _, message := range request.Messages {
		req.Messages = append(req.Messages, Message{
			Role:    message.Role.String(),
			Content: message.Content,
		})
	}
	options := request.Options
	if options != nil {
		if options.Model != "" {
			req.Model = options.Model
		}
		if options.Temperature > 0 {
			temperature := options.Temperature
			req.Temperature = &temperature
		}
		if options.MaxTokens > 0 {
			req.MaxTokens = options.MaxTokens
		}
		if options.TopP > 0 {
			req.TopP = options.TopP
		}
		if options.N > 0 {
			req.N = options.N
		}
		if len(options.StopWords) > 0 {
			req.Stop = options.StopWords
		}
	}
	if req.Temperature == nil && c.Temperature != nil {
		req.Temperature = c.Temperature
	}
	if req.MaxTokens == 0 && c.MaxTokens > 0 {
		req.MaxTokens = c.MaxTokens
	}
	return req
}

// ToResponse converts the wire response to an llm.GenerateResponse.
func ToResponse(apiResp *Response) *llm.GenerateResponse {
	resp := &llm.GenerateResponse{
		Model: apiResp.Model,
		Usage: &llm.Usage{
			PromptTokens:     apiResp.Usage.PromptTokens,
			CompletionTokens: apiResp.Usage.CompletionTokens,
			TotalTokens:      apiResp.Usage.TotalTokens,
		},
	}
	for _, choice := range apiResp.Choices {
		resp.Choices = append(resp.Choices, llm.Choice{
			Index: choice.Index,
			Message: llm.Message{
				Role:    llm.MessageRole(choice.Message.Role),
				Content: choice.Message.Content,
			},
			FinishReason: choice.FinishReason,
		})
	}
	return resp
}
