package gemini

import (
	"strings"

	"github.com/intelia/rfpaccel/genai/llm"
)

// ToRequest converts an llm.GenerateRequest to a Gemini request. System
// messages map to systemInstruction; assistant turns use the "model" role.
func (c *Client) ToRequest(request *llm.GenerateRequest) *Request {
	req := &Request{}
	var system []string
	for _, message := range request.Messages {
		switch message.Role {
		case llm.RoleSystem:
			system = append(system, message.Content)
		case llm.RoleAssistant:
			req.Contents = append(req.Contents, Content{
				Role:  "model",
				Parts: []Part{{Text: message.Content}},
			})
		default:
			req.Contents = append(req.Contents, Content{
				Role:  "user",
				Parts: []Part{{Text: message.Content}},
			})
		}
	}
	if len(system) > 0 {
		req.SystemInstruction = &SystemInstruction{
			Role:  "system",
			Parts: []Part{{Text: strings.Join(system, "\n")}},
		}
	}
	config := &GenerationConfig{}
	options := request.Options
	if options != nil {
		config.Temperature = options.Temperature
		config.MaxOutputTokens = options.MaxTokens
		config.TopP = options.TopP
		config.TopK = options.TopK
		config.CandidateCount = options.N
		config.StopSequences = options.StopWords
	}
	if config.Temperature == 0 && c.Temperature != nil {
		config.Temperature = *c.Temperature
	}
	if config.MaxOutputTokens == 0 && c.MaxTokens > 0 {
		config.MaxOutputTokens = c.MaxTokens
	}
	req.GenerationConfig = config
	return req
}

// ToResponse converts a Gemini response to an llm.GenerateResponse.
func ToResponse(apiResp *Response) *llm.GenerateResponse {
	resp := &llm.GenerateResponse{Model: apiResp.ModelVersion}
	if usage := apiResp.UsageMetadata; usage != nil {
		resp.Usage = &llm.Usage{
			PromptTokens:     usage.PromptTokenCount,
			CompletionTokens: usage.CandidatesTokenCount,
			TotalTokens:      usage.TotalTokenCount,
		}
	}
	for i, candidate := range apiResp.Candidates {
		var text strings.Builder
		for _, part := range candidate.Content.Parts {
			text.WriteString(part.Text)
		}
		resp.Choices = append(resp.Choices, llm.Choice{
			Index: i,
			Message: llm.Message{
				Role:    llm.RoleAssistant,
				Content: text.String(),
			},
			FinishReason: candidate.FinishReason,
		})
	}
	return resp
}
