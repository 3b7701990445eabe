package workflow

import (
	"context"
	"log/slog"

	"github.com/intelia/rfpaccel/config"
)

const planDocTitle = "Draft_Project_Plan"

// planStep extracts the delivery timeline from the source documents,
// builds a preliminary phase plan around it and writes the plan into a
// reviewable document.
type planStep struct {
	generator Generator
	docs      Docs
	parser    Parser
	config    *config.Config
	logger    *slog.Logger
}

func (s *planStep) Name() string {
	return "project planning"
}

func (s *planStep) Execute(ctx context.Context, workflowContext Context) (*Result, error) {
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

	timeline, err := s.generator.ExtractTimeline(ctx, combined)
	if err != nil {
		return nil, err
	}
	s.logger.Info("extracted timeline", "deadline", timeline.SubmissionDeadline)

	plan, err := s.generator.BuildPlan(ctx, timeline, s.config.Workflow.ProjectPlanning.DefaultPhases)
	if err != nil {
		return nil, err
	}
	s.logger.Info("built project plan", "phases", len(plan.Phases))

	document, err := s.docs.CreateDocument(ctx, planDocTitle, subfolders.Planning.URL)
	if err != nil {
		return nil, err
	}
	if err := s.docs.WriteBlocks(ctx, document.URL, planBlocks(clientName, rfpTitle, plan), true); err != nil {
		return nil, err
	}

	return &Result{
		Status: StatusSuccess,
		ContextUpdates: map[string]interface{}{
			KeyTimelineData: timeline,
			KeyProjectPlan:  plan,
			KeyPlanDocID:    document.ID,
			KeyPlanDocURL:   document.URL,
		},
		Payload: map[string]interface{}{
			"timeline": timeline,
			"plan":     plan,
			"document": document,
		},
	}, nil
}
