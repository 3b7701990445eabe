package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/intelia/rfpaccel/config"
	"github.com/intelia/rfpaccel/genai/llm"
	"github.com/intelia/rfpaccel/internal/logging"
	"github.com/intelia/rfpaccel/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

type modelFunc func(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error)

func (f modelFunc) Generate(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	return f(ctx, request)
}

func textResponse(content string) *llm.GenerateResponse {
	return &llm.GenerateResponse{Choices: []llm.Choice{{Message: llm.NewAssistantMessage(content)}}}
}

func noModelCalls(t *testing.T) llm.Model {
	return modelFunc(func(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
		t.Helper()
		return nil, fmt.Errorf("unexpected model call")
	})
}

func testConfig(root string) *config.Config {
	cfg := config.Default()
	cfg.Store.Root = root
	return cfg
}

func uploadRFP(t *testing.T, URL, text string) {
	t.Helper()
	err := afs.New().Upload(context.Background(), URL, file.DefaultFileOsMode, strings.NewReader(text))
	require.Nil(t, err)
}

func TestService_Execute(t *testing.T) {
	ctx := context.Background()
	source := "mem://localhost/rfpaccel/svc/inbound/rfp.txt"
	uploadRFP(t, source, "REQUEST FOR PROPOSAL\nCloud Migration Services\nSubmission Deadline: March 1, 2026\n")

	service, err := New(ctx, testConfig("mem://localhost/rfpaccel/svc/workspaces"),
		WithModel(noModelCalls(t)),
		WithLogger(logging.Nop()))
	require.Nil(t, err)
	defer service.Close()

	outcome, err := service.Execute(ctx, &workflow.Input{
		Sources:    []string{source},
		ClientName: "Acme Retail Group",
		RFPTitle:   "Cloud Migration Services",
		Steps:      []int{1, 2},
	})
	require.Nil(t, err)
	require.EqualValues(t, workflow.StatusSuccess, outcome.Status)
	assert.EqualValues(t, workflow.StatusSuccess, outcome.Results[1].Status)
	assert.EqualValues(t, workflow.StatusSuccess, outcome.Results[2].Status)

	folderURL := outcome.Context.String(workflow.KeyFolderURL)
	assert.True(t, strings.HasPrefix(folderURL, "mem://localhost/rfpaccel/svc/workspaces/"), folderURL)
	assert.NotEmpty(t, outcome.Context.String(workflow.KeyKnowledgeBaseID))
	assert.NotEmpty(t, outcome.Context.String(workflow.KeyGroundingSource))

	_, ok := outcome.Context.Value(workflow.KeyUploadedFiles)
	assert.True(t, ok)

	status := service.Status()
	assert.EqualValues(t, workflow.StateCompleted, status.Status)
	assert.EqualValues(t, 2, status.CurrentStep)
}

func TestService_Execute_validation(t *testing.T) {
	ctx := context.Background()
	service, err := New(ctx, testConfig("mem://localhost/rfpaccel/svc2/workspaces"),
		WithModel(noModelCalls(t)),
		WithLogger(logging.Nop()))
	require.Nil(t, err)
	defer service.Close()

	_, err = service.Execute(ctx, &workflow.Input{
		ClientName: "Acme",
		RFPTitle:   "Cloud Migration",
	})
	require.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "at least one RFP file"), err.Error())
}

func TestService_Analyze(t *testing.T) {
	ctx := context.Background()
	source := "mem://localhost/rfpaccel/svc3/inbound/rfp.txt"
	uploadRFP(t, source, "RFP issued by Acme Retail Group for cloud migration.")

	var prompt string
	model := modelFunc(func(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
		prompt = request.Messages[0].Content
		return textResponse(`{"client_name":"Acme Retail Group","rfp_title":"Cloud Migration Services","project_type":"Cloud Migration"}`), nil
	})
	service, err := New(ctx, testConfig("mem://localhost/rfpaccel/svc3/workspaces"),
		WithModel(model),
		WithLogger(logging.Nop()))
	require.Nil(t, err)
	defer service.Close()

	metadata, err := service.Analyze(ctx, source)
	require.Nil(t, err)
	assert.EqualValues(t, "Acme Retail Group", metadata.ClientName)
	assert.EqualValues(t, "Cloud Migration Services", metadata.RFPTitle)
	assert.Contains(t, prompt, "issued by Acme Retail Group")
}

func TestService_MaterializeContent(t *testing.T) {
	ctx := context.Background()
	root := "mem://localhost/rfpaccel/svc4/workspaces"
	service, err := New(ctx, testConfig(root),
		WithModel(noModelCalls(t)),
		WithLogger(logging.Nop()))
	require.Nil(t, err)
	defer service.Close()

	URL, err := service.MaterializeContent(ctx, "REQUEST FOR PROPOSAL\nbody text", "addendum.txt")
	require.Nil(t, err)
	assert.EqualValues(t, root+"/_inbox/addendum.txt", URL)
	data, err := afs.New().DownloadWithURL(ctx, URL)
	require.Nil(t, err)
	assert.Contains(t, string(data), "body text")

	URL, err = service.MaterializeContent(ctx, "content without a name", "")
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(URL, root+"/_inbox/rfp-"), URL)
	assert.True(t, strings.HasSuffix(URL, ".txt"), URL)

	_, err = service.MaterializeContent(ctx, "", "empty.txt")
	assert.NotNil(t, err)
}

func TestService_Resume_invalidContext(t *testing.T) {
	ctx := context.Background()
	service, err := New(ctx, testConfig("mem://localhost/rfpaccel/svc5/workspaces"),
		WithModel(noModelCalls(t)),
		WithLogger(logging.Nop()))
	require.Nil(t, err)
	defer service.Close()

	_, err = service.Resume(ctx, workflow.Context{"client_name": "Acme"}, 6)
	require.NotNil(t, err)
	var missing *workflow.MissingKeyError
	assert.ErrorAs(t, err, &missing)
}
