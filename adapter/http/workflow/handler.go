// Package workflow exposes the kickoff workflow over HTTP.
package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/intelia/rfpaccel/genai"
	wf "github.com/intelia/rfpaccel/workflow"
)

// Service is the slice of the application service the workflow
// endpoints consume.
type Service interface {
	Execute(ctx context.Context, input *wf.Input) (*wf.Outcome, error)
	Status() *wf.Status
	Analyze(ctx context.Context, location string) (*genai.RFPMetadata, error)
	MaterializeContent(ctx context.Context, content, name string) (string, error)
}

// runRequest is the expected JSON payload for POST /v1/api/workflow/run.
// Callers supply either inline rfp_content or source_paths pointing at
// already stored documents.
type runRequest struct {
	ClientName  string   `json:"client_name,omitempty"`
	RFPTitle    string   `json:"rfp_title,omitempty"`
	RFPContent  string   `json:"rfp_content,omitempty"`
	SourcePaths []string `json:"source_paths,omitempty"`
	TeamMembers []string `json:"team_members,omitempty"`
	Steps       []int    `json:"steps,omitempty"`
	Project     string   `json:"project,omitempty"`
}

type runResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message,omitempty"`
	Resources map[string]string `json:"resources,omitempty"`
}

// New returns an http.Handler that runs the kickoff workflow synchronously.
func New(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req runRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		sources := req.SourcePaths
		if strings.TrimSpace(req.RFPContent) != "" {
			URL, err := svc.MaterializeContent(ctx, req.RFPContent, "")
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, &runResponse{Status: wf.StateFailed, Message: err.Error()})
				return
			}
			sources = append(sources, URL)
		}

		// Best effort: when the caller omitted client or title, pull them
		// from the first source document. A failed extraction leaves the
		// fields blank and input validation reports them.
		if (strings.TrimSpace(req.ClientName) == "" || strings.TrimSpace(req.RFPTitle) == "") && len(sources) > 0 {
			if metadata, err := svc.Analyze(ctx, sources[0]); err == nil && metadata != nil {
				if strings.TrimSpace(req.ClientName) == "" {
					req.ClientName = metadata.ClientName
				}
				if strings.TrimSpace(req.RFPTitle) == "" {
					req.RFPTitle = metadata.RFPTitle
				}
			}
		}

		outcome, err := svc.Execute(ctx, &wf.Input{
			Sources:     sources,
			ClientName:  req.ClientName,
			RFPTitle:    req.RFPTitle,
			TeamMembers: req.TeamMembers,
			Steps:       req.Steps,
			Project:     req.Project,
		})
		if err != nil {
			code := http.StatusInternalServerError
			if wf.IsValidationError(err) {
				code = http.StatusBadRequest
			}
			resp := &runResponse{Status: wf.StateFailed, Message: err.Error()}
			if outcome != nil {
				resp.Resources = resources(outcome.Context)
			}
			writeJSON(w, code, resp)
			return
		}
		writeJSON(w, http.StatusOK, &runResponse{Status: outcome.Status, Resources: resources(outcome.Context)})
	})
}

// NewStatus returns an http.Handler reporting run progress.
func NewStatus(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, svc.Status())
	})
}

// resources maps workflow context keys to the links a caller acts on.
func resources(workflowContext wf.Context) map[string]string {
	result := map[string]string{}
	for name, key := range map[string]string{
		"folder":    wf.KeyFolderURL,
		"questions": wf.KeyQuestionsDocURL,
		"answers":   wf.KeyAnswersDocURL,
		"plan":      wf.KeyPlanDocURL,
		"notebook":  wf.KeyKnowledgeBaseID,
	} {
		if value := workflowContext.String(key); value != "" {
			result[name] = value
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
