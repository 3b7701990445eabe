package workflow

import (
	"context"
	"fmt"
	"log/slog"
)

// knowledgeStep builds the knowledge-base index over the ingested source
// documents so later generation can ground itself in prior material.
type knowledgeStep struct {
	index  Indexer
	logger *slog.Logger
}

func (s *knowledgeStep) Name() string {
	return "knowledge base creation"
}

func (s *knowledgeStep) Execute(ctx context.Context, workflowContext Context) (*Result, error) {
	clientName, err := workflowContext.RequiredString(KeyClientName)
	if err != nil {
		return nil, err
	}
	rfpTitle, err := workflowContext.RequiredString(KeyRFPTitle)
	if err != nil {
		return nil, err
	}
	subfolders, err := workflowContext.Subfolders()
	if err != nil {
		return nil, err
	}

	displayName := fmt.Sprintf("%v - %v", clientName, rfpTitle)
	index, err := s.index.CreateIndex(ctx, displayName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("created knowledge base", "index", index.ID)

	if err := s.index.Import(ctx, index.ID, subfolders.SourceDocuments.URL); err != nil {
		return nil, err
	}

	// An empty endpoint is not an error: later steps detect it and run
	// ungrounded.
	endpoint := s.index.Endpoint(index.ID)
	if endpoint == "" {
		s.logger.Warn("knowledge base has no serving endpoint", "index", index.ID)
	}

	return &Result{
		Status: StatusSuccess,
		ContextUpdates: map[string]interface{}{
			KeyKnowledgeBaseID: index.ID,
			KeyGroundingSource: endpoint,
		},
		Payload: map[string]interface{}{
			"index":    index,
			"endpoint": endpoint,
		},
	}, nil
}
