package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/intelia/rfpaccel/docs"
	"github.com/intelia/rfpaccel/genai"
	"github.com/intelia/rfpaccel/mail"
	"github.com/intelia/rfpaccel/search"
	"github.com/intelia/rfpaccel/store"
)

// Step is one of the seven fixed units of workflow responsibility. A step
// reads the shared context and its collaborators, and reports its outcome
// as a Result; a missing upstream key surfaces as a MissingKeyError.
type Step interface {
	Name() string
	Execute(ctx context.Context, workflowContext Context) (*Result, error)
}

// Store provisions workspace storage and records access grants.
type Store interface {
	CreateWorkspace(ctx context.Context, name string) (*store.Workspace, error)
	UploadFile(ctx context.Context, path, folderURL string) (*store.File, error)
	GrantAccess(ctx context.Context, resource string, addresses []string, role string) ([]store.Grant, error)
	Metadata(ctx context.Context, resource string) (*store.Object, error)
}

// Docs creates and writes reviewable documents.
type Docs interface {
	CreateDocument(ctx context.Context, title, folderURL string) (*docs.Document, error)
	WriteBlocks(ctx context.Context, docURL string, blocks []docs.Block, replace bool) error
}

// Generator derives structured content from RFP text.
type Generator interface {
	GenerateQuestions(ctx context.Context, documentText string, minQuestions, maxQuestions int, groundingSource string) ([]genai.Question, error)
	DraftAnswers(ctx context.Context, questions []string, companyInfo interface{}, knowledge, groundingSource string) ([]genai.DraftAnswer, error)
	ExtractTimeline(ctx context.Context, documentText string) (*genai.Timeline, error)
	BuildPlan(ctx context.Context, timeline *genai.Timeline, defaultPhases []string) (*genai.Plan, error)
}

// Indexer maintains the knowledge-base index over ingested sources.
type Indexer interface {
	CreateIndex(ctx context.Context, name string) (*search.Index, error)
	Import(ctx context.Context, indexID, folderURL string) error
	Endpoint(indexID string) string
}

// Mailer delivers notifications with per-recipient outcomes.
type Mailer interface {
	SendBulk(ctx context.Context, to []string, subject, body string, html bool) []mail.SendResult
}

// Parser extracts plain text from source documents.
type Parser interface {
	Text(ctx context.Context, location string) (string, error)
}

// combinedSourceText concatenates the extracted text of every source
// document, optionally prefixing each with a file header.
func combinedSourceText(ctx context.Context, parser Parser, sources []string, withHeaders bool) (string, error) {
	builder := &strings.Builder{}
	for _, source := range sources {
		text, err := parser.Text(ctx, source)
		if err != nil {
			return "", err
		}
		if withHeaders {
			_, name := url.Split(url.Normalize(source, file.Scheme), file.Scheme)
			builder.WriteString(fmt.Sprintf("\n\n=== %v ===\n\n", name))
		}
		builder.WriteString(text)
	}
	return builder.String(), nil
}
