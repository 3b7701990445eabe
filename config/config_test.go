package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/rfpaccel/config/config.yaml"
	data := []byte(`
project: acme-prod
model:
  provider: openai
  model: gpt-4o-mini
mail:
  enabled: true
  host: smtp.acme.test
workflow:
  question_generation:
    max_questions: 12
`)
	err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data))
	assert.Nil(t, err)

	cfg, err := Load(ctx, URL)
	assert.Nil(t, err)
	assert.Equal(t, "acme-prod", cfg.Project)
	assert.Equal(t, "openai", cfg.Model.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model.Model)
	assert.True(t, cfg.Mail.Enabled)
	assert.Equal(t, 587, cfg.Mail.Port)

	// overridden value wins, untouched defaults survive
	assert.Equal(t, 12, cfg.Workflow.QuestionGeneration.MaxQuestions)
	assert.Equal(t, 10, cfg.Workflow.QuestionGeneration.MinQuestions)
	assert.Equal(t, "writer", cfg.Workflow.Distribution.ShareRole)
	assert.NotEmpty(t, cfg.Workflow.ProjectPlanning.DefaultPhases)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	assert.Nil(t, err)
	assert.Equal(t, "gemini", cfg.Model.Provider)
	assert.Equal(t, "{client_name} - {rfp_title} - {date}", cfg.Store.FolderTemplate)
	assert.False(t, cfg.Mail.Enabled)
}

func TestWorkspaceRoot(t *testing.T) {
	cfg := Default()
	cfg.Store.Root = "mem://localhost/ws"
	assert.Equal(t, "mem://localhost/ws", cfg.WorkspaceRoot())

	cfg.Store.Root = ""
	t.Setenv("RFPACCEL_WORKSPACE", "mem://localhost/override")
	assert.Equal(t, "mem://localhost/override", cfg.WorkspaceRoot())
}
