package submission

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aigrade/submit-api/pkg/async"
	"github.com/aigrade/submit-api/pkg/email"
	"github.com/aigrade/submit-api/pkg/logger"
)

// Config controls which notifications a Service produces.
type Config struct {
	// TeamEmail is the internal inbox. When empty, no team notification is sent.
	TeamEmail string `env:"TO_EMAIL"`
	// RequireNameAndEmail rejects submissions missing either field.
	RequireNameAndEmail bool `env:"REQUIRE_NAME_AND_EMAIL" envDefault:"true"`
	// IncludeUTM adds the attribution line to the team notification.
	IncludeUTM bool `env:"INCLUDE_UTM" envDefault:"true"`
}

// Service turns a validated submission into outbound notifications.
type Service struct {
	sender email.EmailSender
	cfg    Config
	log    *slog.Logger
}

// NewService wires a dispatch service. A nil logger discards logs.
func NewService(sender email.EmailSender, cfg Config, log *slog.Logger) *Service {
	if sender == nil {
		panic("submission.NewService: nil sender")
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{sender: sender, cfg: cfg, log: log}
}

// Process validates the payload and dispatches up to two emails: the team
// notification (if a team inbox is configured) and the submitter confirmation
// (if the submitter left an address). Both sends are issued concurrently and
// joined; the first failure fails the whole submission.
func (s *Service) Process(ctx context.Context, p Payload) error {
	if s.cfg.RequireNameAndEmail && (p.Name == "" || p.Email == "") {
		return ErrMissingNameOrEmail
	}

	ref := uuid.NewString()

	futures := make([]*async.Future[struct{}], 0, 2)

	if s.cfg.TeamEmail != "" {
		subject, html := TeamMessage(p, s.cfg.IncludeUTM)
		futures = append(futures, s.send(ctx, email.SendEmailParams{
			SendTo:   s.cfg.TeamEmail,
			Subject:  subject,
			BodyHTML: html,
			ReplyTo:  p.Email,
			Tag:      "team-notification",
		}))
	}

	if p.Email != "" {
		subject, html := UserMessage(p)
		futures = append(futures, s.send(ctx, email.SendEmailParams{
			SendTo:   p.Email,
			Subject:  subject,
			BodyHTML: html,
			Tag:      "user-confirmation",
		}))
	}

	if _, err := async.WaitAll(futures...); err != nil {
		s.log.ErrorContext(ctx, "Submission dispatch failed",
			slog.String("submission_id", ref),
			logger.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.log.InfoContext(ctx, "Submission dispatched",
		slog.String("submission_id", ref),
		slog.Int("messages", len(futures)),
	)
	return nil
}

func (s *Service) send(ctx context.Context, params email.SendEmailParams) *async.Future[struct{}] {
	return async.Async(ctx, params, func(ctx context.Context, p email.SendEmailParams) (struct{}, error) {
		if err := s.sender.SendEmail(ctx, p); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
}
