package workflow

import (
	"context"
	"log/slog"

	"github.com/intelia/rfpaccel/config"
	"github.com/intelia/rfpaccel/mail"
	"github.com/intelia/rfpaccel/store"
)

// distributionStep shares the workspace with the validated collaborators
// and sends the kickoff notification. Per-recipient grant or delivery
// failures are recorded in the results, never escalated to a step error.
type distributionStep struct {
	store  Store
	mailer Mailer
	config *config.Config
	logger *slog.Logger
}

func (s *distributionStep) Name() string {
	return "distribution & launch"
}

func (s *distributionStep) Execute(ctx context.Context, workflowContext Context) (*Result, error) {
	teamMembers := workflowContext.Strings(KeyValidatedTeamMembers)
	if len(teamMembers) == 0 {
		s.logger.Warn("no validated team members, skipping distribution")
		return &Result{
			Status:  StatusSkipped,
			Message: "No team members provided - skipping distribution",
		}, nil
	}

	clientName, err := workflowContext.RequiredString(KeyClientName)
	if err != nil {
		return nil, err
	}
	rfpTitle, err := workflowContext.RequiredString(KeyRFPTitle)
	if err != nil {
		return nil, err
	}
	folderURL, err := workflowContext.RequiredString(KeyFolderURL)
	if err != nil {
		return nil, err
	}

	distribution := s.config.Workflow.Distribution
	s.logger.Info("sharing project folder", "members", len(teamMembers), "role", distribution.ShareRole)
	folderShares := s.grant(ctx, folderURL, teamMembers, distribution.ShareRole)

	var kbShares []store.Grant
	if knowledgeBaseID := workflowContext.String(KeyKnowledgeBaseID); knowledgeBaseID != "" {
		kbShares = s.grant(ctx, knowledgeBaseID, teamMembers, distribution.KnowledgeBaseRole)
	}

	resources := &mail.Resources{
		FolderURL:       folderURL,
		KnowledgeBase:   workflowContext.String(KeyKnowledgeBaseID),
		QuestionsDocURL: workflowContext.String(KeyQuestionsDocURL),
		AnswersDocURL:   workflowContext.String(KeyAnswersDocURL),
		PlanDocURL:      workflowContext.String(KeyPlanDocURL),
	}
	emailResults := s.mailer.SendBulk(ctx, teamMembers,
		mail.KickoffSubject(clientName, rfpTitle),
		mail.KickoffBody(clientName, rfpTitle, resources), true)

	successfulShares := 0
	for _, grant := range folderShares {
		if grant.Status == store.GrantGranted {
			successfulShares++
		}
	}
	successfulEmails := 0
	for _, result := range emailResults {
		if result.Status == mail.StatusSent {
			successfulEmails++
		}
	}
	s.logger.Info("distribution finished",
		"shares", successfulShares, "emails", successfulEmails, "members", len(teamMembers))

	return &Result{
		Status: StatusSuccess,
		ContextUpdates: map[string]interface{}{
			KeyDistributionComplete: true,
			KeyFolderShareResults:   folderShares,
			KeyEmailResults:         emailResults,
		},
		Payload: map[string]interface{}{
			"kb_share_results":   kbShares,
			"team_members_count": len(teamMembers),
			"successful_shares":  successfulShares,
			"successful_emails":  successfulEmails,
		},
	}, nil
}

// grant records access for every address and degrades a wholesale grant
// failure into per-address failed results.
func (s *distributionStep) grant(ctx context.Context, resource string, addresses []string, role string) []store.Grant {
	grants, err := s.store.GrantAccess(ctx, resource, addresses, role)
	if err != nil {
		s.logger.Error("failed to grant access", "resource", resource, "error", err)
		grants = make([]store.Grant, 0, len(addresses))
		for _, address := range addresses {
			grants = append(grants, store.Grant{Address: address, Status: store.GrantFailed, Detail: err.Error()})
		}
	}
	return grants
}
