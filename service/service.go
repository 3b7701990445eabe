// Package service assembles the accelerator's collaborators from
// configuration and exposes workflow operations to the entry surfaces.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/intelia/rfpaccel/config"
	"github.com/intelia/rfpaccel/docparse"
	"github.com/intelia/rfpaccel/docs"
	"github.com/intelia/rfpaccel/genai"
	"github.com/intelia/rfpaccel/genai/llm"
	"github.com/intelia/rfpaccel/genai/llm/provider"
	"github.com/intelia/rfpaccel/internal/logging"
	"github.com/intelia/rfpaccel/mail"
	"github.com/intelia/rfpaccel/search"
	"github.com/intelia/rfpaccel/store"
	"github.com/intelia/rfpaccel/workflow"
)

// Service wires the configured collaborators into a workflow agent and
// exposes the operations the CLI and HTTP surfaces consume.
type Service struct {
	config    *config.Config
	logger    *slog.Logger
	fs        afs.Service
	agent     *workflow.Agent
	generator *genai.Service
	parser    *docparse.Service
	search    *search.Service
}

// Option customizes service assembly.
type Option func(*options)

type options struct {
	logger *slog.Logger
	model  llm.Model
}

// WithLogger overrides the logger built from config.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithModel bypasses the provider factory with a ready model client.
func WithModel(model llm.Model) Option {
	return func(o *options) {
		o.model = model
	}
}

// New assembles a Service from configuration. Collaborators are built once
// and shared by every run against this service.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	assembly := &options{}
	for _, opt := range opts {
		opt(assembly)
	}
	logger := assembly.logger
	if logger == nil {
		logger = logging.New(os.Stderr, cfg.LogLevel)
	}

	parser := docparse.New()
	storeService := store.New(cfg.WorkspaceRoot())
	searchService := search.New(cfg.Search.Root, parser, search.WithLogger(logger))

	model := assembly.model
	if model == nil {
		created, err := provider.New().CreateModel(ctx, &provider.Options{
			Provider:    cfg.Model.Provider,
			Model:       cfg.Model.Model,
			APIKeyURL:   cfg.Model.APIKeyURL,
			URL:         cfg.Model.URL,
			Temperature: cfg.Model.Temperature,
			MaxTokens:   cfg.Model.MaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		model = created
	}
	generator := genai.New(model,
		genai.WithLogger(logger),
		genai.WithRetriever(search.NewSnippetSource(searchService)),
	)

	mailer, err := mail.New(ctx, mail.Config{
		Enabled:     cfg.Mail.Enabled,
		Host:        cfg.Mail.Host,
		Port:        cfg.Mail.Port,
		Username:    cfg.Mail.Username,
		PasswordURL: cfg.Mail.PasswordURL,
		From:        cfg.Mail.From,
	}, mail.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	agent, err := workflow.New(cfg,
		workflow.WithLogger(logger),
		workflow.WithStore(storeService),
		workflow.WithDocs(docs.New()),
		workflow.WithGenerator(generator),
		workflow.WithIndexer(searchService),
		workflow.WithMailer(mailer),
		workflow.WithParser(parser),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		config:    cfg,
		logger:    logger,
		fs:        afs.New(),
		agent:     agent,
		generator: generator,
		parser:    parser,
		search:    searchService,
	}, nil
}

// Config returns the configuration the service was assembled from.
func (s *Service) Config() *config.Config {
	return s.config
}

// Execute runs the workflow for the supplied input.
func (s *Service) Execute(ctx context.Context, input *workflow.Input) (*workflow.Outcome, error) {
	if s == nil || s.agent == nil {
		return nil, fmt.Errorf("service not initialised")
	}
	return s.agent.ExecuteWorkflow(ctx, input)
}

// Resume re-enters the workflow at fromStep with a previously produced
// context.
func (s *Service) Resume(ctx context.Context, workflowContext workflow.Context, fromStep int) (*workflow.Outcome, error) {
	if s == nil || s.agent == nil {
		return nil, fmt.Errorf("service not initialised")
	}
	return s.agent.ResumeWorkflow(ctx, workflowContext, fromStep)
}

// Status reports the run-state snapshot.
func (s *Service) Status() *workflow.Status {
	return s.agent.Status()
}

// Analyze extracts metadata from a source document so entry surfaces can
// prefill client name and title.
func (s *Service) Analyze(ctx context.Context, location string) (*genai.RFPMetadata, error) {
	text, err := s.parser.Text(ctx, location)
	if err != nil {
		return nil, err
	}
	return s.generator.ExtractMetadata(ctx, text)
}

// MaterializeContent writes raw RFP text into the workspace inbox so
// submissions that arrive as text can flow through file-based ingestion.
// It returns the afs URL of the created file.
func (s *Service) MaterializeContent(ctx context.Context, content, name string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("rfp content was empty")
	}
	if name == "" {
		name = fmt.Sprintf("rfp-%v.txt", uuid.New().String()[:8])
	}
	URL := url.Join(s.config.WorkspaceRoot(), "_inbox", store.SanitizeName(name))
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
		return "", fmt.Errorf("failed to write rfp content %v: %w", URL, err)
	}
	return URL, nil
}

// Close releases held resources.
func (s *Service) Close() error {
	return s.search.Close()
}
