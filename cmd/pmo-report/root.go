/* Copyright (c) 2025 PMO Report contributors
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinicu/pmo-jira-yby/internal/adapters/jira"
	"github.com/vinicu/pmo-jira-yby/internal/adapters/mail"
	"github.com/vinicu/pmo-jira-yby/internal/config"
	webhttp "github.com/vinicu/pmo-jira-yby/internal/http"
	"github.com/vinicu/pmo-jira-yby/internal/logger"
	"github.com/vinicu/pmo-jira-yby/internal/report"
	"github.com/vinicu/pmo-jira-yby/internal/services"
)

var version = "0.0.0-dev"

// newRootCmd builds the CLI. The root command runs the pipeline once; an
// external scheduler is expected to invoke it at 09h and 15h.
func newRootCmd() *cobra.Command {
	var reportTime string

	cmd := &cobra.Command{
		Use:          "pmo-report",
		Short:        "Generate and deliver the PMO executive report",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg)

			jc := jira.NewClient(cfg, log)
			mailers := mail.NewRegistry(cfg, log)
			sink := report.NewSink(cfg.ReportsDir, log)
			svc := services.NewService(cfg, log, jc, mailers, sink)

			_, err := svc.GenerateReport(cmd.Context(), reportTime)
			return err
		},
	}
	cmd.Flags().StringVar(&reportTime, "time", "09h", "run label used in the report filename and subject (09h or 15h)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pmo-report %s\n", version)
		},
	})
	cmd.AddCommand(newServeCmd())

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve generated reports over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg)
			router := webhttp.NewRouter(cfg, log)
			log.Info().Str("addr", cfg.HTTPAddr).Str("dir", cfg.ReportsDir).Msg("serving reports")
			return router.Run(cfg.HTTPAddr)
		},
	}
}
