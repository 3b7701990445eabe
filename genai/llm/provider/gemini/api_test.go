package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/intelia/rfpaccel/genai/llm"
	"github.com/stretchr/testify/assert"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestClient_Generate(t *testing.T) {
	respBody := `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":true}"}]},"finishReason":"STOP"}],"usageMetadata":{"promptTokenCount":7,"candidatesTokenCount":3,"totalTokenCount":10},"modelVersion":"gemini-2.0-flash"}`

	var gotURL string
	var gotReq Request
	client := NewClient("apiKey", "gemini-2.0-flash")
	client.HTTPClient = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			gotURL = req.URL.String()
			data, _ := io.ReadAll(req.Body)
			_ = json.Unmarshal(data, &gotReq)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(respBody)),
				Header:     make(http.Header),
			}, nil
		}),
	}

	resp, err := client.Generate(context.Background(), &llm.GenerateRequest{
		Messages: []llm.Message{
			llm.NewSystemMessage("you are terse"),
			llm.NewUserMessage("hello"),
		},
	})
	assert.Nil(t, err)
	assert.Contains(t, gotURL, "gemini-2.0-flash:generateContent")
	assert.Contains(t, gotURL, "key=apiKey")
	assert.NotNil(t, gotReq.SystemInstruction)
	assert.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
	assert.Equal(t, `{"ok":true}`, resp.Choices[0].Message.Content)
	assert.Equal(t, 10, resp.Usage.TotalTokens)
}

func TestClient_Generate_apiError(t *testing.T) {
	client := NewClient("apiKey", "gemini-2.0-flash")
	client.HTTPClient = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusTooManyRequests,
				Body:       io.NopCloser(strings.NewReader(`{"error":{"message":"quota exceeded"}}`)),
				Header:     make(http.Header),
			}, nil
		}),
	}
	_, err := client.Generate(context.Background(), &llm.GenerateRequest{
		Messages: []llm.Message{llm.NewUserMessage("hello")},
	})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
