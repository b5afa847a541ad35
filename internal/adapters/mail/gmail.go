/* Copyright (c) 2025 PMO Report contributors
 * SPDX-License-Identifier: BSD-3-Clause */
package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vinicu/pmo-jira-yby/internal/config"
)

// Gmail would deliver through the Gmail API with an OAuth token. The
// transport is not wired: Send logs the intent and returns without sending,
// and must never claim a mail went out.
type Gmail struct {
	token string
	log   zerolog.Logger
}

func NewGmail(cfg config.Config, log zerolog.Logger) *Gmail {
	return &Gmail{token: cfg.GmailToken, log: log}
}

func (g *Gmail) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	// TODO: wire the Gmail API client once OAuth credentials are provisioned
	g.log.Info().
		Str("to", recipient).
		Str("subject", subject).
		Bool("token_set", g.token != "").
		Msg("gmail delivery not configured; skipping send")
	return nil
}
