package rfpaccel

import (
	"context"
	"strings"

	"github.com/intelia/rfpaccel/workflow"
)

// RunCmd executes the kickoff workflow end to end.
type RunCmd struct {
	Files      []string `short:"s" long:"file" description:"RFP source document path or URL (repeatable)"`
	Client     string   `short:"c" long:"client" description:"client organisation name"`
	Title      string   `short:"t" long:"title" description:"RFP title"`
	Members    []string `short:"m" long:"member" description:"team member email address (repeatable)"`
	Steps      []int    `long:"step" description:"step number to run (repeatable, defaults to all)"`
	Project    string   `short:"p" long:"project" description:"project identifier"`
	ContextOut string   `short:"o" long:"context-out" description:"file to write the final workflow context JSON"`
}

func (r *RunCmd) Execute(_ []string) error {
	ctx := context.Background()
	svc, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	// When client or title was not supplied pull it from the first
	// source document; input validation reports fields still blank.
	client, title := r.Client, r.Title
	if (strings.TrimSpace(client) == "" || strings.TrimSpace(title) == "") && len(r.Files) > 0 {
		if metadata, err := svc.Analyze(ctx, r.Files[0]); err == nil && metadata != nil {
			if strings.TrimSpace(client) == "" {
				client = metadata.ClientName
			}
			if strings.TrimSpace(title) == "" {
				title = metadata.RFPTitle
			}
		}
	}

	outcome, runErr := svc.Execute(ctx, &workflow.Input{
		Sources:     r.Files,
		ClientName:  client,
		RFPTitle:    title,
		TeamMembers: r.Members,
		Steps:       r.Steps,
		Project:     r.Project,
	})
	if outcome != nil {
		if err := writeContext(ctx, r.ContextOut, outcome.Context); err != nil {
			return err
		}
		printOutcome(outcome)
	}
	return runErr
}
