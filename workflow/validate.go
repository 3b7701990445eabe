package workflow

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Input validation errors.
var (
	ErrNoSourceDocuments = errors.New("at least one RFP file must be provided")
	ErrEmptyClientName   = errors.New("client name cannot be empty")
	ErrEmptyTitle        = errors.New("RFP title cannot be empty")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrSourceNotFound    = errors.New("invalid or non-existent file")
	ErrInvalidStep       = errors.New("invalid step number")
)

// IsValidationError reports whether err originates from input or context
// validation rather than from step execution.
func IsValidationError(err error) bool {
	var missing *MissingKeyError
	if errors.As(err, &missing) {
		return true
	}
	for _, candidate := range []error{ErrNoSourceDocuments, ErrEmptyClientName, ErrEmptyTitle, ErrInvalidEmail, ErrSourceNotFound, ErrInvalidStep} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether address has the accepted mailbox syntax.
func ValidEmail(address string) bool {
	return emailPattern.MatchString(address)
}

// validateInputs checks every caller input before any step runs. Pure
// syntax checks come first so a malformed input never reaches storage.
func (a *Agent) validateInputs(ctx context.Context, input *Input) error {
	if len(input.Sources) == 0 {
		return ErrNoSourceDocuments
	}
	if strings.TrimSpace(input.ClientName) == "" {
		return ErrEmptyClientName
	}
	if strings.TrimSpace(input.RFPTitle) == "" {
		return ErrEmptyTitle
	}
	for _, address := range input.TeamMembers {
		if !ValidEmail(address) {
			return fmt.Errorf("%w: %v", ErrInvalidEmail, address)
		}
	}
	for _, source := range input.Sources {
		object, err := a.store.Metadata(ctx, source)
		if err != nil || object.Dir {
			return fmt.Errorf("%w: %v", ErrSourceNotFound, source)
		}
	}
	return nil
}

// validateResumeContext checks only the top-level seed fields; everything
// else in a resumed context is trusted verbatim so mid-run keys survive.
func validateResumeContext(workflowContext Context) error {
	if _, err := workflowContext.RequiredStrings(KeyRFPFiles); err != nil {
		return err
	}
	if _, err := workflowContext.RequiredString(KeyClientName); err != nil {
		return err
	}
	if _, err := workflowContext.RequiredString(KeyRFPTitle); err != nil {
		return err
	}
	return nil
}
