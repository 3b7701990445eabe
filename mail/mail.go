// Package mail delivers workflow notifications over SMTP, recording a
// per-recipient outcome instead of failing a whole batch.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/intelia/rfpaccel/internal/logging"
	"github.com/viant/scy/cred/secret"
	gomail "github.com/wneessen/go-mail"
)

// Per-recipient send statuses.
const (
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// SendResult records the outcome of one recipient send.
type SendResult struct {
	Address string `json:"address"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
}

// Config holds SMTP settings. With Enabled false the service logs each
// send and reports it skipped.
type Config struct {
	Enabled     bool
	Host        string
	Port        int
	Username    string
	PasswordURL string
	From        string
}

// Service sends notifications recipient by recipient.
type Service struct {
	config Config
	client *gomail.Client
	logger *slog.Logger
}

// Option customizes the service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a mail service. The SMTP password resolves through the scy
// secret URL in config when one is set.
func New(ctx context.Context, config Config, options ...Option) (*Service, error) {
	result := &Service{config: config, logger: logging.Nop()}
	for _, option := range options {
		option(result)
	}
	if !config.Enabled {
		return result, nil
	}
	clientOptions := []gomail.Option{
		gomail.WithPort(config.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if config.Username != "" {
		password := ""
		if config.PasswordURL != "" {
			key, err := secret.New().GeyKey(ctx, config.PasswordURL)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve smtp password: %w", err)
			}
			password = key.Secret
		}
		clientOptions = append(clientOptions,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(config.Username),
			gomail.WithPassword(password))
	}
	client, err := gomail.NewClient(config.Host, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	result.client = client
	return result, nil
}

// SendBulk sends one message per recipient. A failed recipient is recorded
// and does not stop the remaining sends.
func (s *Service) SendBulk(ctx context.Context, to []string, subject, body string, html bool) []SendResult {
	results := make([]SendResult, 0, len(to))
	for _, address := range to {
		if !s.config.Enabled {
			s.logger.Info("mail disabled, skipping send", "to", address, "subject", subject)
			results = append(results, SendResult{Address: address, Status: StatusSkipped, Detail: "mail disabled"})
			continue
		}
		if err := s.send(ctx, address, subject, body, html); err != nil {
			s.logger.Error("failed to send mail", "to", address, "error", err)
			results = append(results, SendResult{Address: address, Status: StatusFailed, Detail: err.Error()})
			continue
		}
		s.logger.Info("sent mail", "to", address, "subject", subject)
		results = append(results, SendResult{Address: address, Status: StatusSent})
	}
	return results
}

func (s *Service) send(ctx context.Context, address, subject, body string, html bool) error {
	message := gomail.NewMsg()
	if err := message.From(s.config.From); err != nil {
		return err
	}
	if err := message.To(address); err != nil {
		return err
	}
	message.Subject(subject)
	contentType := gomail.TypeTextPlain
	if html {
		contentType = gomail.TypeTextHTML
	}
	message.SetBodyString(contentType, body)
	return s.client.DialAndSendWithContext(ctx, message)
}
