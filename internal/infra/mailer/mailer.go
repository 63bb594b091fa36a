package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"pawhaven/internal/pkg/config"
	"pawhaven/internal/usecase/commands"
)

// LogMailer renders the claim invite and emits it to the structured log
// instead of an SMTP relay. It is the default delivery backend; deployments
// with a real provider swap the implementation behind commands.Mailer.
type LogMailer struct {
	cfg config.MailConfig
}

func NewLogMailer(cfg config.MailConfig) commands.Mailer {
	return &LogMailer{cfg: cfg}
}

func (m *LogMailer) SendClaimInvite(ctx context.Context, recipientEmail string, invite commands.ClaimInvite) error {
	claimLink := fmt.Sprintf("%s?token=%s", m.cfg.ClaimURL, invite.ClaimToken)

	slog.InfoContext(ctx, "claim invite dispatched",
		"from", m.cfg.FromAddress,
		"to", recipientEmail,
		"animal_name", invite.AnimalName,
		"claim_link", claimLink,
		"expires_in_days", invite.ExpiresInDays,
	)

	return nil
}
