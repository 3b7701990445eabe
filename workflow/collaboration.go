package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// collaborationStep validates the collaborator addresses supplied for
// distribution. It never calls external services; an empty list asks for
// input and an invalid address reports a validation failure, both without
// halting the run.
type collaborationStep struct {
	logger *slog.Logger
}

func (s *collaborationStep) Name() string {
	return "collaborator validation"
}

func (s *collaborationStep) Execute(ctx context.Context, workflowContext Context) (*Result, error) {
	teamMembers := workflowContext.Strings(KeyTeamMembers)
	if len(teamMembers) == 0 {
		s.logger.Warn("no team members provided, awaiting input")
		return &Result{
			Status:  StatusPendingInput,
			Message: "Team member email addresses required",
			ContextUpdates: map[string]interface{}{
				KeyAwaitingTeamMembers: true,
			},
			Payload: map[string]interface{}{
				"prompt": "Please provide a list of team member email addresses to share the project with.",
			},
		}, nil
	}

	var validated, invalid []string
	for _, address := range teamMembers {
		if ValidEmail(address) {
			validated = append(validated, address)
			continue
		}
		s.logger.Warn("invalid email address", "address", address)
		invalid = append(invalid, address)
	}

	if len(invalid) > 0 {
		return &Result{
			Status:  StatusValidationFailed,
			Message: fmt.Sprintf("Invalid email addresses: %v", strings.Join(invalid, ", ")),
			ContextUpdates: map[string]interface{}{
				KeyValidatedTeamMembers: validated,
				KeyInvalidTeamMembers:   invalid,
			},
			Payload: map[string]interface{}{
				"validated": validated,
				"invalid":   invalid,
			},
		}, nil
	}

	s.logger.Info("validated team members", "count", len(validated))
	return &Result{
		Status: StatusSuccess,
		ContextUpdates: map[string]interface{}{
			KeyValidatedTeamMembers: validated,
			KeyAwaitingTeamMembers:  false,
		},
		Payload: map[string]interface{}{
			"validated": validated,
		},
	}, nil
}
