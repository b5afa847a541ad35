/* Copyright (c) 2025 PMO Report contributors
 * SPDX-License-Identifier: BSD-3-Clause */
package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vinicu/pmo-jira-yby/internal/config"
)

// Outlook would deliver over SMTP with the account password. The transport is
// not wired: Send logs the intent and returns without sending.
type Outlook struct {
	password string
	from     string
	log      zerolog.Logger
}

func NewOutlook(cfg config.Config, log zerolog.Logger) *Outlook {
	return &Outlook{password: cfg.OutlookPassword, from: cfg.MailFrom, log: log}
}

func (o *Outlook) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	// TODO: configure the Outlook SMTP relay (host, port, STARTTLS)
	o.log.Info().
		Str("to", recipient).
		Str("from", o.from).
		Str("subject", subject).
		Bool("password_set", o.password != "").
		Msg("outlook delivery not configured; skipping send")
	return nil
}
