// Package workflow implements the seven-step RFP kickoff orchestration:
// ingestion, knowledge base, question generation, answer drafting,
// planning, collaborator validation and distribution. An Agent runs a
// chosen subset of steps in ascending order over a shared context; the
// context after any prefix of steps is sufficient to resume the rest.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/intelia/rfpaccel/config"
	"github.com/intelia/rfpaccel/internal/logging"
)

// Input seeds a workflow run.
type Input struct {
	Sources     []string `json:"sources"`
	ClientName  string   `json:"client_name"`
	RFPTitle    string   `json:"rfp_title"`
	TeamMembers []string `json:"team_members,omitempty"`
	Steps       []int    `json:"steps,omitempty"`
	Date        string   `json:"date,omitempty"`
	Project     string   `json:"project,omitempty"`
}

// Outcome reports a finished or failed run: the final context and the
// per-step results. On failure the context holds everything merged before
// the failing step, so the caller can persist it and resume later.
type Outcome struct {
	Status  string          `json:"status"`
	Context Context         `json:"context"`
	Results map[int]*Result `json:"results"`
}

// Agent owns the step registry and run state, and drives the workflow.
type Agent struct {
	config    *config.Config
	logger    *slog.Logger
	store     Store
	docs      Docs
	generator Generator
	index     Indexer
	mailer    Mailer
	parser    Parser

	steps map[int]Step

	mux   sync.RWMutex
	state *RunState
}

// Option customizes an Agent.
type Option func(*Agent)

// WithLogger sets the agent logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

// WithStore sets the workspace store collaborator.
func WithStore(store Store) Option {
	return func(a *Agent) {
		a.store = store
	}
}

// WithDocs sets the document writer collaborator.
func WithDocs(docs Docs) Option {
	return func(a *Agent) {
		a.docs = docs
	}
}

// WithGenerator sets the content generator collaborator.
func WithGenerator(generator Generator) Option {
	return func(a *Agent) {
		a.generator = generator
	}
}

// WithIndexer sets the knowledge-base indexer collaborator.
func WithIndexer(index Indexer) Option {
	return func(a *Agent) {
		a.index = index
	}
}

// WithMailer sets the notification mailer collaborator.
func WithMailer(mailer Mailer) Option {
	return func(a *Agent) {
		a.mailer = mailer
	}
}

// WithParser sets the document text parser collaborator.
func WithParser(parser Parser) Option {
	return func(a *Agent) {
		a.parser = parser
	}
}

// New builds an agent over the supplied collaborators. All six are
// required; assembly of concrete services is the caller's job.
func New(cfg *config.Config, options ...Option) (*Agent, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	agent := &Agent{
		config: cfg,
		logger: logging.Nop(),
		state:  newRunState(),
	}
	for _, option := range options {
		option(agent)
	}
	if err := agent.ensureCollaborators(); err != nil {
		return nil, err
	}
	agent.steps = map[int]Step{
		1: &ingestStep{store: agent.store, parser: agent.parser, config: cfg, logger: agent.logger},
		2: &knowledgeStep{index: agent.index, logger: agent.logger},
		3: &questionStep{generator: agent.generator, docs: agent.docs, parser: agent.parser, config: cfg, logger: agent.logger},
		4: &answerStep{generator: agent.generator, docs: agent.docs, parser: agent.parser, config: cfg, logger: agent.logger},
		5: &planStep{generator: agent.generator, docs: agent.docs, parser: agent.parser, config: cfg, logger: agent.logger},
		6: &collaborationStep{logger: agent.logger},
		7: &distributionStep{store: agent.store, mailer: agent.mailer, config: cfg, logger: agent.logger},
	}
	return agent, nil
}

func (a *Agent) ensureCollaborators() error {
	switch {
	case a.store == nil:
		return fmt.Errorf("workflow agent requires a store collaborator")
	case a.docs == nil:
		return fmt.Errorf("workflow agent requires a docs collaborator")
	case a.generator == nil:
		return fmt.Errorf("workflow agent requires a generator collaborator")
	case a.index == nil:
		return fmt.Errorf("workflow agent requires an indexer collaborator")
	case a.mailer == nil:
		return fmt.Errorf("workflow agent requires a mailer collaborator")
	case a.parser == nil:
		return fmt.Errorf("workflow agent requires a parser collaborator")
	}
	return nil
}

// ExecuteWorkflow validates the input, seeds a fresh context and runs the
// requested steps in ascending order. An empty step selection runs all
// seven.
func (a *Agent) ExecuteWorkflow(ctx context.Context, input *Input) (*Outcome, error) {
	a.logger.Info("starting workflow",
		"client", input.ClientName, "title", input.RFPTitle, "files", len(input.Sources))
	if err := a.validateInputs(ctx, input); err != nil {
		return nil, err
	}
	steps, err := normalizeSteps(input.Steps)
	if err != nil {
		return nil, err
	}
	date := input.Date
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}
	project := input.Project
	if project == "" {
		project = a.config.Project
	}
	teamMembers := input.TeamMembers
	if teamMembers == nil {
		teamMembers = []string{}
	}
	workflowContext := Context{
		KeyRFPFiles:    input.Sources,
		KeyClientName:  input.ClientName,
		KeyRFPTitle:    input.RFPTitle,
		KeyDate:        date,
		KeyTeamMembers: teamMembers,
		KeyProject:     project,
	}
	return a.run(ctx, workflowContext, steps)
}

// ResumeWorkflow re-enters the loop at fromStep with a context produced
// by an earlier run. Apart from the top-level seed fields the context is
// trusted verbatim, so every mid-run key it carries survives.
func (a *Agent) ResumeWorkflow(ctx context.Context, workflowContext Context, fromStep int) (*Outcome, error) {
	if fromStep < 1 || fromStep > TotalSteps {
		return nil, fmt.Errorf("invalid resume step: %v (valid range 1-%v): %w", fromStep, TotalSteps, ErrInvalidStep)
	}
	if workflowContext == nil {
		workflowContext = Context{}
	}
	if err := validateResumeContext(workflowContext); err != nil {
		return nil, err
	}
	a.logger.Info("resuming workflow", "from_step", fromStep)
	steps := make([]int, 0, TotalSteps-fromStep+1)
	for step := fromStep; step <= TotalSteps; step++ {
		steps = append(steps, step)
	}
	return a.run(ctx, workflowContext, steps)
}

func (a *Agent) run(ctx context.Context, workflowContext Context, steps []int) (*Outcome, error) {
	a.setStatus(StateRunning)
	for _, number := range steps {
		step := a.steps[number]
		a.setCurrentStep(number)
		a.logger.Info("executing step", "step", number, "name", step.Name())
		result, err := step.Execute(ctx, workflowContext)
		if err != nil {
			wrapped := fmt.Errorf("step %v (%v) failed: %w", number, step.Name(), err)
			a.recordFailure(wrapped.Error())
			a.logger.Error("workflow failed", "step", number, "error", err)
			return &Outcome{Status: StatusFailed, Context: workflowContext, Results: a.resultsSnapshot()}, wrapped
		}
		workflowContext.Merge(result.ContextUpdates)
		a.recordResult(number, result)
		a.logger.Info("step completed", "step", number, "status", result.Status)
	}
	a.setStatus(StateCompleted)
	a.logger.Info("workflow completed", "steps", len(steps))
	return &Outcome{Status: StatusSuccess, Context: workflowContext, Results: a.resultsSnapshot()}, nil
}

// Status reports a snapshot of the run state.
func (a *Agent) Status() *Status {
	a.mux.RLock()
	defer a.mux.RUnlock()
	return &Status{
		Status:          a.state.Status,
		CurrentStep:     a.state.CurrentStep,
		TotalSteps:      TotalSteps,
		ProgressPercent: float64(a.state.CurrentStep) / float64(TotalSteps) * 100,
		Errors:          append([]string{}, a.state.Errors...),
	}
}

func (a *Agent) setStatus(status string) {
	a.mux.Lock()
	defer a.mux.Unlock()
	a.state.Status = status
}

func (a *Agent) setCurrentStep(step int) {
	a.mux.Lock()
	defer a.mux.Unlock()
	a.state.CurrentStep = step
}

func (a *Agent) recordResult(step int, result *Result) {
	a.mux.Lock()
	defer a.mux.Unlock()
	a.state.Results[step] = result
}

func (a *Agent) recordFailure(message string) {
	a.mux.Lock()
	defer a.mux.Unlock()
	a.state.Errors = append(a.state.Errors, message)
	a.state.Status = StateFailed
}

func (a *Agent) resultsSnapshot() map[int]*Result {
	a.mux.RLock()
	defer a.mux.RUnlock()
	results := make(map[int]*Result, len(a.state.Results))
	for step, result := range a.state.Results {
		results[step] = result
	}
	return results
}

// normalizeSteps sorts the requested subset ascending, drops duplicates
// and rejects numbers outside 1..TotalSteps. Empty means every step.
func normalizeSteps(steps []int) ([]int, error) {
	if len(steps) == 0 {
		all := make([]int, TotalSteps)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}
	seen := map[int]bool{}
	result := make([]int, 0, len(steps))
	for _, step := range steps {
		if step < 1 || step > TotalSteps {
			return nil, fmt.Errorf("%w: %v (valid range 1-%v)", ErrInvalidStep, step, TotalSteps)
		}
		if seen[step] {
			continue
		}
		seen[step] = true
		result = append(result, step)
	}
	sort.Ints(result)
	return result, nil
}
