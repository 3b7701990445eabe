package workflow

import (
	"context"
	"log/slog"

	"github.com/intelia/rfpaccel/config"
)

const answersDocTitle = "Draft_RFP_Answers"

// answerStep extracts the questions the RFP asks of the vendor, drafts
// answers from the company profile and writes them into a reviewable
// document. Drafting grounds itself in the knowledge base when step 2
// produced a serving endpoint.
type answerStep struct {
	generator Generator
	docs      Docs
	parser    Parser
	config    *config.Config
	logger    *slog.Logger
}

func (s *answerStep) Name() string {
	return "answer drafting"
}

func (s *answerStep) Execute(ctx context.Context, workflowContext Context) (*Result, error) {
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

	combined, err := combinedSourceText(ctx, s.parser, sources, false)
	if err != nil {
		return nil, err
	}
	questions := ExtractQuestions(combined)
	s.logger.Info("extracted vendor questions", "count", len(questions))

	groundingSource := workflowContext.String(KeyGroundingSource)
	answers, err := s.generator.DraftAnswers(ctx, questions, s.config.Company, "", groundingSource)
	if err != nil {
		return nil, err
	}
	s.logger.Info("drafted answers", "count", len(answers), "grounded", groundingSource != "")

	document, err := s.docs.CreateDocument(ctx, answersDocTitle, subfolders.Analysis.URL)
	if err != nil {
		return nil, err
	}
	if err := s.docs.WriteBlocks(ctx, document.URL, answerBlocks(clientName, rfpTitle, answers), true); err != nil {
		return nil, err
	}

	return &Result{
		Status: StatusSuccess,
		ContextUpdates: map[string]interface{}{
			KeyDraftAnswers:  answers,
			KeyAnswersDocID:  document.ID,
			KeyAnswersDocURL: document.URL,
		},
		Payload: map[string]interface{}{
			"answers":  answers,
			"document": document,
		},
	}, nil
}
