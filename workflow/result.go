package workflow

// Step result statuses. Only an error halts the run; every status below
// lets the loop continue so later steps can decide what a predecessor's
// outcome means for them.
const (
	StatusSuccess          = "success"
	StatusFailed           = "failed"
	StatusSkipped          = "skipped"
	StatusPendingInput     = "pending_input"
	StatusValidationFailed = "validation_failed"
)

// Result is the outcome one step reports back to the run loop. Context
// updates are merged into the shared context for downstream steps; the
// payload is informational and never read by other steps.
type Result struct {
	Status         string                 `json:"status"`
	Message        string                 `json:"message,omitempty"`
	ContextUpdates map[string]interface{} `json:"context_updates,omitempty"`
	Payload        map[string]interface{} `json:"payload,omitempty"`
}
