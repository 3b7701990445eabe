package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/intelia/rfpaccel/genai/llm"
)

// Generate sends a generate request to the Ollama API and accumulates the
// streamed chunks into a single response.
func (c *Client) Generate(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if c.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	req := toRequest(request, c.Model)
	req.Stream = true

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/generate", c.BaseURL), bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	reader := bufio.NewReader(resp.Body)
	apiResp := &Response{}
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			var chunk Response
			if jsonErr := json.Unmarshal(line, &chunk); jsonErr == nil {
				apiResp.Response += chunk.Response
				apiResp.PromptEvalCount += chunk.PromptEvalCount
				apiResp.EvalCount += chunk.EvalCount
				apiResp.Model = chunk.Model
				apiResp.Done = chunk.Done
				if chunk.Done {
					break
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
	}
	return toLLMResponse(apiResp), nil
}

func toRequest(request *llm.GenerateRequest, model string) *Request {
	req := &Request{Model: model}
	var system, prompt []string
	for _, message := range request.Messages {
		if message.Role == llm.RoleSystem {
			system = append(system, message.Content)
			continue
		}
		prompt = append(prompt, message.Content)
	}
	req.System = strings.Join(system, "\n")
	req.Prompt = strings.Join(prompt, "\n")
	if options := request.Options; options != nil {
		req.Options = &Options{
			Temperature: options.Temperature,
			TopP:        options.TopP,
			TopK:        options.TopK,
			NumPredict:  options.MaxTokens,
			Stop:        options.StopWords,
		}
		if options.Model != "" {
			req.Model = options.Model
		}
	}
	return req
}

func toLLMResponse(apiResp *Response) *llm.GenerateResponse {
	return &llm.GenerateResponse{
		Model: apiResp.Model,
		Usage: &llm.Usage{
			PromptTokens:     apiResp.PromptEvalCount,
			CompletionTokens: apiResp.EvalCount,
			TotalTokens:      apiResp.PromptEvalCount + apiResp.EvalCount,
		},
		Choices: []llm.Choice{
			{
				Message: llm.Message{
					Role:    llm.RoleAssistant,
					Content: apiResp.Response,
				},
				FinishReason: "stop",
			},
		},
	}
}
