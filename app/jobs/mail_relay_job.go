package jobs

import (
	"github.com/shalabia/storefront/config"
	"github.com/shalabia/storefront/pkg/logger"
	"github.com/shalabia/storefront/pkg/mail"
)

// MailRelayJob sends a server-side copy of an order summary to the order
// mailbox over SMTP. The mailto: handoff still happens client-side; this
// relay covers shoppers whose mail client never opens.
type MailRelayJob struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (j *MailRelayJob) Handle() error {
	if config.Get("MAIL_USERNAME", "") == "" {
		// No SMTP credentials; skip the relay.
		logger.Debug("mail relay skipped, SMTP not configured", "subject", j.Subject)
		return nil
	}
	return mail.To(config.OrderMailbox()).Subject(j.Subject).Text(j.Body).Send()
}
