package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/intelia/rfpaccel/genai"
	wf "github.com/intelia/rfpaccel/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct{}

func (s *stubService) Execute(ctx context.Context, input *wf.Input) (*wf.Outcome, error) {
	return &wf.Outcome{Status: wf.StatusSuccess, Context: wf.Context{}, Results: map[int]*wf.Result{}}, nil
}

func (s *stubService) Status() *wf.Status {
	return &wf.Status{Status: wf.StateInitialized, TotalSteps: wf.TotalSteps, Errors: []string{}}
}

func (s *stubService) Analyze(ctx context.Context, location string) (*genai.RFPMetadata, error) {
	return &genai.RFPMetadata{}, nil
}

func (s *stubService) MaterializeContent(ctx context.Context, content, name string) (string, error) {
	return "mem://localhost/app/_inbox/rfp.txt", nil
}

func TestRouter(t *testing.T) {
	handler := New(&stubService{})
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.Nil(t, err)
	assert.EqualValues(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(server.URL + "/v1/api/workflow/status")
	require.Nil(t, err)
	assert.EqualValues(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, "application/json", resp.Header.Get("Content-Type"))
	_ = resp.Body.Close()

	resp, err = http.Post(server.URL+"/v1/api/workflow/run", "application/json",
		strings.NewReader(`{"client_name":"Acme","rfp_title":"Cloud","source_paths":["mem://localhost/rfp.txt"]}`))
	require.Nil(t, err)
	assert.EqualValues(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(server.URL + "/v1/api/workflow/run")
	require.Nil(t, err)
	assert.EqualValues(t, http.StatusMethodNotAllowed, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(server.URL + "/missing")
	require.Nil(t, err)
	assert.EqualValues(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestRouter_preflight(t *testing.T) {
	handler := New(&stubService{})
	request := httptest.NewRequest(http.MethodOptions, "/v1/api/workflow/run", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.EqualValues(t, http.StatusOK, recorder.Code)
	assert.EqualValues(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
