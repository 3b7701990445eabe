package workflow

import (
	"context"
	"log/slog"

	"github.com/intelia/rfpaccel/config"
)

const questionsDocTitle = "Client_Follow-up_Questions"

// questionStep analyzes the source documents for ambiguities and writes
// the clarification questions into a reviewable document.
type questionStep struct {
	generator Generator
	docs      Docs
	parser    Parser
	config    *config.Config
	logger    *slog.Logger
}

func (s *questionStep) Name() string {
	return "question generation"
}

func (s *questionStep) Execute(ctx context.Context, workflowContext Context) (*Result, error) {
	clientName, err := workflowContext.RequiredString(KeyClientName)
	if err != nil {
		return nil, err
	}
	rfpTitle, err := workflowContext.RequiredString(KeyRFPTitle)
	if err != nil {
		return nil, err
	}
	sources, err := workflowContext.RequiredStrings(KeyRFPFiles)
	if err != nil {
		return nil, err
	}
	subfolders, err := workflowContext.Subfolders()
	if err != nil {
		return nil, err
	}

	combined, err := combinedSourceText(ctx, s.parser, sources, true)
	if err != nil {
		return nil, err
	}
	s.logger.Info("analyzing source documents", "count", len(sources))

	bounds := s.config.Workflow.QuestionGeneration
	questions, err := s.generator.GenerateQuestions(ctx, combined, bounds.MinQuestions, bounds.MaxQuestions, "")
	if err != nil {
		return nil, err
	}
	s.logger.Info("generated follow-up questions", "count", len(questions))

	document, err := s.docs.CreateDocument(ctx, questionsDocTitle, subfolders.Analysis.URL)
	if err != nil {
		return nil, err
	}
	if err := s.docs.WriteBlocks(ctx, document.URL, questionBlocks(clientName, rfpTitle, questions), true); err != nil {
		return nil, err
	}

	return &Result{
		Status: StatusSuccess,
		ContextUpdates: map[string]interface{}{
			KeyQuestions:       questions,
			KeyQuestionsDocID:  document.ID,
			KeyQuestionsDocURL: document.URL,
		},
		Payload: map[string]interface{}{
			"questions": questions,
			"document":  document,
		},
	}, nil
}
