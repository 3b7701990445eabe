// Package genai fronts a generative model with RFP-specific operations:
// metadata extraction, follow-up question generation, answer drafting and
// preliminary planning. Generation can be grounded with knowledge-base
// snippets supplied by a Retriever.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/intelia/rfpaccel/genai/llm"
	"github.com/intelia/rfpaccel/internal/logging"
)

const (
	defaultSnippetLimit = 5
	groundingQueryLimit = 512
)

// Retriever supplies knowledge-base snippets relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, source, query string, limit int) ([]string, error)
}

// Grounding narrows generation to knowledge-base content.
type Grounding struct {
	Source string
	Query  string
}

// Service wraps a model client with RFP-specific generation operations.
type Service struct {
	model     llm.Model
	retriever Retriever
	logger    *slog.Logger
	snippets  int
}

// Option customizes the service.
type Option func(*Service)

// WithRetriever enables grounded generation.
func WithRetriever(retriever Retriever) Option {
	return func(s *Service) {
		s.retriever = retriever
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSnippetLimit caps how many grounding snippets a generation uses.
func WithSnippetLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.snippets = limit
		}
	}
}

// New creates a generation service backed by model.
func New(model llm.Model, options ...Option) *Service {
	result := &Service{model: model, logger: logging.Nop(), snippets: defaultSnippetLimit}
	for _, option := range options {
		option(result)
	}
	return result
}

// Generate produces text for prompt. When grounding names a source and a
// retriever is configured, matching knowledge-base snippets are folded into
// the prompt first.
func (s *Service) Generate(ctx context.Context, prompt string, grounding *Grounding) (string, error) {
	if grounding != nil && grounding.Source != "" && s.retriever != nil {
		snippets, err := s.retriever.Retrieve(ctx, grounding.Source, grounding.Query, s.snippets)
		if err != nil {
			return "", fmt.Errorf("failed to retrieve grounding context: %w", err)
		}
		if len(snippets) > 0 {
			prompt = groundedPrompt(prompt, snippets)
			s.logger.Debug("grounded generation", "source", grounding.Source, "snippets", len(snippets))
		}
	}
	response, err := s.model.Generate(ctx, &llm.GenerateRequest{Messages: []llm.Message{llm.NewUserMessage(prompt)}})
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}

func groundedPrompt(prompt string, snippets []string) string {
	builder := strings.Builder{}
	builder.WriteString("Knowledge Base Context:\n")
	for _, snippet := range snippets {
		builder.WriteString("- ")
		builder.WriteString(snippet)
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
	builder.WriteString(prompt)
	return builder.String()
}

// ExtractMetadata pulls client, title, deadline and scope attributes from
// RFP text.
func (s *Service) ExtractMetadata(ctx context.Context, documentText string) (*RFPMetadata, error) {
	prompt, err := metadataPrompt(documentText)
	if err != nil {
		return nil, err
	}
	raw, err := s.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}
	metadata := &RFPMetadata{}
	if err = parseJSON(raw, metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

// GenerateQuestions identifies between minQuestions and maxQuestions
// clarifying questions to send back to the RFP issuer.
func (s *Service) GenerateQuestions(ctx context.Context, documentText string, minQuestions, maxQuestions int, groundingSource string) ([]Question, error) {
	prompt, err := questionsPrompt(documentText, minQuestions, maxQuestions)
	if err != nil {
		return nil, err
	}
	raw, err := s.Generate(ctx, prompt, groundingFor(groundingSource, documentText))
	if err != nil {
		return nil, err
	}
	var questions []Question
	if err = parseJSON(raw, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// DraftAnswers proposes responses to explicit RFP questions using the
// company profile and optional internal knowledge.
func (s *Service) DraftAnswers(ctx context.Context, questions []string, companyInfo interface{}, knowledge string, groundingSource string) ([]DraftAnswer, error) {
	companyJSON, err := json.MarshalIndent(companyInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal company info: %w", err)
	}
	questionsJSON, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal questions: %w", err)
	}
	prompt, err := answersPrompt(string(questionsJSON), string(companyJSON), knowledge)
	if err != nil {
		return nil, err
	}
	raw, err := s.Generate(ctx, prompt, groundingFor(groundingSource, strings.Join(questions, "\n")))
	if err != nil {
		return nil, err
	}
	var answers []DraftAnswer
	if err = parseJSON(raw, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// ExtractTimeline finds deadlines and milestones in RFP text.
func (s *Service) ExtractTimeline(ctx context.Context, documentText string) (*Timeline, error) {
	prompt, err := timelinePrompt(documentText)
	if err != nil {
		return nil, err
	}
	raw, err := s.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}
	timeline := &Timeline{}
	if err = parseJSON(raw, timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}

// BuildPlan derives a preliminary project plan from an extracted timeline.
// Default phases fill in when the model proposes none, and the source
// timeline backfills a plan that omits one.
func (s *Service) BuildPlan(ctx context.Context, timeline *Timeline, defaultPhases []string) (*Plan, error) {
	timelineJSON, err := json.MarshalIndent(timeline, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timeline: %w", err)
	}
	prompt, err := planPrompt(string(timelineJSON), defaultPhases)
	if err != nil {
		return nil, err
	}
	raw, err := s.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}
	plan := &Plan{}
	if err = parseJSON(raw, plan); err != nil {
		return nil, err
	}
	if len(plan.Phases) == 0 {
		for _, name := range defaultPhases {
			plan.Phases = append(plan.Phases, Phase{Name: name})
		}
	}
	if plan.Timeline == nil {
		plan.Timeline = timeline
	}
	return plan, nil
}

func groundingFor(source, query string) *Grounding {
	if source == "" {
		return nil
	}
	return &Grounding{Source: source, Query: clip(query, groundingQueryLimit)}
}
