package workflow

// Run statuses.
const (
	StateInitialized = "initialized"
	StateRunning     = "running"
	StateCompleted   = "completed"
	StateFailed      = "failed"
)

// TotalSteps is the number of fixed workflow steps.
const TotalSteps = 7

// RunState tracks workflow progress for status queries. It is advisory;
// resume authority lives entirely in the caller-held context.
type RunState struct {
	Status      string          `json:"status"`
	CurrentStep int             `json:"current_step"`
	Errors      []string        `json:"errors"`
	Results     map[int]*Result `json:"results"`
}

func newRunState() *RunState {
	return &RunState{
		Status:  StateInitialized,
		Errors:  []string{},
		Results: map[int]*Result{},
	}
}

// Status is a point-in-time snapshot of a run. Progress is the coarse
// current-step fraction: 0 before any step is assigned, 100 once step 7
// is current.
type Status struct {
	Status          string   `json:"status"`
	CurrentStep     int      `json:"current_step"`
	TotalSteps      int      `json:"total_steps"`
	ProgressPercent float64  `json:"progress_percent"`
	Errors          []string `json:"errors"`
}
