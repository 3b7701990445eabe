package workflow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/intelia/rfpaccel/config"
	"github.com/intelia/rfpaccel/docparse"
)

// ingestStep provisions the project workspace and uploads the source
// documents into it.
type ingestStep struct {
	store  Store
	parser Parser
	config *config.Config
	logger *slog.Logger
}

func (s *ingestStep) Name() string {
	return "ingestion & setup"
}

func (s *ingestStep) Execute(ctx context.Context, workflowContext Context) (*Result, error) {
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

	folderName := s.folderName(clientName, rfpTitle, workflowContext.String(KeyDate))
	workspace, err := s.store.CreateWorkspace(ctx, folderName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("created project workspace", "folder", workspace.Name, "url", workspace.URL)

	uploaded := make([]map[string]interface{}, 0, len(sources))
	for _, source := range sources {
		uploadedFile, err := s.store.UploadFile(ctx, source, workspace.Subfolders.SourceDocuments.URL)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, map[string]interface{}{
			"id":   uploadedFile.ID,
			"url":  uploadedFile.URL,
			"name": uploadedFile.Name,
		})
		s.logger.Info("uploaded source document", "name", uploadedFile.Name)
	}

	updates := map[string]interface{}{
		KeyFolderID:      workspace.ID,
		KeyFolderURL:     workspace.URL,
		KeyFolderName:    workspace.Name,
		KeySubfolders:    workspace.Subfolders,
		KeyUploadedFiles: uploaded,
	}

	// Hints guessed from the first document let entry surfaces prefill
	// inputs on later runs; extraction failures are not worth failing
	// ingestion over.
	if text, err := s.parser.Text(ctx, sources[0]); err == nil {
		info := docparse.ExtractClientInfo(text)
		if info.ClientName != "" {
			updates[KeyExtractedClientName] = info.ClientName
		}
		if info.RFPTitle != "" {
			updates[KeyExtractedRFPTitle] = info.RFPTitle
		}
	} else {
		s.logger.Warn("could not parse first source for hints", "source", sources[0], "error", err)
	}

	return &Result{
		Status:         StatusSuccess,
		ContextUpdates: updates,
		Payload: map[string]interface{}{
			"workspace":      workspace,
			"uploaded_files": uploaded,
		},
	}, nil
}

func (s *ingestStep) folderName(clientName, rfpTitle, date string) string {
	template := s.config.Store.FolderTemplate
	if template == "" {
		template = "{client_name} - {rfp_title} - {date}"
	}
	replacer := strings.NewReplacer(
		"{client_name}", clientName,
		"{rfp_title}", rfpTitle,
		"{date}", date,
	)
	return replacer.Replace(template)
}
