package rfpaccel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/intelia/rfpaccel/workflow"
	"github.com/viant/afs"
)

// ResumeCmd restarts a workflow from a saved context.
type ResumeCmd struct {
	ContextFile string `short:"i" long:"context" description:"workflow context JSON produced by a previous run" required:"true"`
	FromStep    int    `long:"from-step" description:"first step to execute (1-7)" required:"true"`
	ContextOut  string `short:"o" long:"context-out" description:"file to write the final workflow context JSON"`
}

func (r *ResumeCmd) Execute(_ []string) error {
	ctx := context.Background()
	data, err := afs.New().DownloadWithURL(ctx, r.ContextFile)
	if err != nil {
		return fmt.Errorf("failed to read context %v: %w", r.ContextFile, err)
	}
	workflowContext := workflow.Context{}
	if err := json.Unmarshal(data, &workflowContext); err != nil {
		return fmt.Errorf("failed to parse context %v: %w", r.ContextFile, err)
	}

	svc, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	outcome, runErr := svc.Resume(ctx, workflowContext, r.FromStep)
	if outcome != nil {
		if err := writeContext(ctx, r.ContextOut, outcome.Context); err != nil {
			return err
		}
		printOutcome(outcome)
	}
	return runErr
}
