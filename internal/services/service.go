/* Copyright (c) 2025 PMO Report contributors
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinicu/pmo-jira-yby/internal/adapters/mail"
	"github.com/vinicu/pmo-jira-yby/internal/config"
	"github.com/vinicu/pmo-jira-yby/internal/domain"
	"github.com/vinicu/pmo-jira-yby/internal/report"
)

type issueSource interface {
	SearchIssues(ctx context.Context, jql string, max int) ([]domain.Issue, error)
}

type senderRegistry interface {
	ForRecipient(recipient string) mail.Sender
}

type Service struct {
	cfg  config.Config
	log  zerolog.Logger
	jira issueSource
	mail senderRegistry
	sink *report.Sink
	now  func() time.Time
}

func NewService(cfg config.Config, log zerolog.Logger, jira issueSource, mailers senderRegistry, sink *report.Sink) *Service {
	return &Service{cfg: cfg, log: log, jira: jira, mail: mailers, sink: sink, now: time.Now}
}

// GenerateReport runs the whole pipeline once for the given run label
// ("09h"/"15h"). A failed fetch degrades to an all-zero report: the file is
// still written and delivery is still attempted, with the run marked degraded
// in the completion log. Delivery failures are recovered per recipient. Only
// a sink write failure aborts the run.
func (s *Service) GenerateReport(ctx context.Context, label string) (string, error) {
	issues, err := s.jira.SearchIssues(ctx, "", 0)
	degraded := false
	if err != nil {
		degraded = true
		issues = nil
		s.log.Warn().Err(err).Msg("issue fetch failed; continuing with empty result")
	}
	s.log.Info().Int("issues", len(issues)).Str("label", label).Msg("generating report")

	now := s.now()
	summary := report.Aggregate(issues, now)
	doc, err := report.Render(summary)
	if err != nil {
		return "", err
	}

	path, err := s.sink.Write(doc, label, now)
	if err != nil {
		return "", err
	}

	subject := fmt.Sprintf("📊 PMO Report %s - %s", label, now.Format("02/01/2006"))
	for _, rcpt := range s.cfg.Recipients {
		if err := s.mail.ForRecipient(rcpt).Send(ctx, rcpt, subject, doc); err != nil {
			derr := &domain.DeliveryError{Recipient: rcpt, Err: err}
			s.log.Error().Err(derr).Msg("report delivery failed")
		}
	}

	s.log.Info().
		Int("total", summary.Total).
		Int("critical", summary.Critical).
		Int("in_risk", summary.InRisk).
		Int("completed", summary.Completed).
		Bool("degraded", degraded).
		Str("path", path).
		Msg("report run complete")
	return path, nil
}
