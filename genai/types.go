package genai

// RFPMetadata holds key attributes extracted from RFP source text, used
// to prefill project inputs.
type RFPMetadata struct {
	ClientName         string   `json:"client_name,omitempty"`
	RFPTitle           string   `json:"rfp_title,omitempty"`
	SubmissionDeadline string   `json:"submission_deadline,omitempty"`
	ProjectType        string   `json:"project_type,omitempty"`
	KeyObjectives      []string `json:"key_objectives,omitempty"`
	Technologies       []string `json:"technologies,omitempty"`
	Summary            string   `json:"summary,omitempty"`
}

// Question is a clarifying question to send back to the RFP issuer.
type Question struct {
	Category  string `json:"category"`
	Question  string `json:"question"`
	Rationale string `json:"rationale,omitempty"`
}

// DraftAnswer pairs an RFP question with a proposed response.
type DraftAnswer struct {
	Question    string `json:"question"`
	DraftAnswer string `json:"draft_answer"`
	Confidence  string `json:"confidence,omitempty"`
}

// KeyDate is a dated milestone found in the RFP.
type KeyDate struct {
	Event string `json:"event"`
	Date  string `json:"date"`
}

// Timeline captures deadlines and milestones extracted from RFP text.
type Timeline struct {
	SubmissionDeadline string    `json:"submission_deadline,omitempty"`
	ProjectStart       string    `json:"project_start,omitempty"`
	ProjectEnd         string    `json:"project_end,omitempty"`
	Duration           string    `json:"duration,omitempty"`
	KeyDates           []KeyDate `json:"key_dates,omitempty"`
}

// Phase is one stage of the preliminary project plan.
type Phase struct {
	Name     string   `json:"name"`
	Duration string   `json:"duration,omitempty"`
	Tasks    []string `json:"tasks,omitempty"`
}

// Plan is the preliminary project plan derived from the RFP timeline.
type Plan struct {
	Phases       []Phase   `json:"phases,omitempty"`
	Deliverables []string  `json:"deliverables,omitempty"`
	Timeline     *Timeline `json:"timeline,omitempty"`
	Assumptions  []string  `json:"assumptions,omitempty"`
}
