/* Copyright (c) 2025 PMO Report contributors
 * SPDX-License-Identifier: BSD-3-Clause */
package mail

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vinicu/pmo-jira-yby/internal/config"
)

// Sender delivers one rendered report to one recipient. Implementations are
// keyed by mail provider; a real transport slots in behind this interface
// without touching the pipeline.
type Sender interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

// Registry holds the configured backends and routes recipients to them.
type Registry struct {
	gmail   *Gmail
	outlook *Outlook
}

func NewRegistry(cfg config.Config, log zerolog.Logger) *Registry {
	return &Registry{
		gmail:   NewGmail(cfg, log),
		outlook: NewOutlook(cfg, log),
	}
}

// ForRecipient picks the backend by the recipient's provider: Gmail addresses
// go through the OAuth backend, everything else through Outlook.
func (r *Registry) ForRecipient(recipient string) Sender {
	if strings.Contains(strings.ToLower(recipient), "@gmail.") {
		return r.gmail
	}
	return r.outlook
}
