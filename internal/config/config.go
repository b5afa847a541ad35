/* Copyright (c) 2025 PMO Report contributors
 * SPDX-License-Identifier: BSD-3-Clause */
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	JiraBaseURL    string
	JiraEmail      string
	JiraAPIToken   string
	JiraJQL        string
	JiraMaxResults int
	HTTPTimeout    time.Duration

	GmailToken      string
	OutlookPassword string
	MailFrom        string
	Recipients      []string

	ReportsDir string
	HTTPAddr   string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" { return def }
	return v
}

func atoi(key string, def int) int {
	v := os.Getenv(key)
	if v == "" { return def }
	i, err := strconv.Atoi(v)
	if err != nil { return def }
	return i
}

func dur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" { return def }
	d, err := time.ParseDuration(v)
	if err != nil { return def }
	return d
}

func parseStrings(csv string) []string {
	if csv == "" { return nil }
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" { continue }
		out = append(out, p)
	}
	return out
}

// Load builds the process configuration from the environment. A .env file is
// honored when present. Credentials and the tracker base URL carry no
// defaults; an unset JIRA_URL degrades the fetch at run time instead of
// pointing the binary at someone else's instance.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv: getenv("APP_ENV", "dev"),

		JiraBaseURL:    getenv("JIRA_URL", ""),
		JiraEmail:      getenv("JIRA_EMAIL", ""),
		JiraAPIToken:   getenv("JIRA_API_TOKEN", ""),
		JiraJQL:        getenv("JIRA_JQL", "status != Done ORDER BY priority DESC"),
		JiraMaxResults: atoi("JIRA_MAX_RESULTS", 100),
		HTTPTimeout:    dur("HTTP_TIMEOUT", 10*time.Second),

		GmailToken:      getenv("GMAIL_TOKEN", ""),
		OutlookPassword: getenv("OUTLOOK_PASSWORD", ""),
		MailFrom:        getenv("MAIL_FROM", ""),
		Recipients:      parseStrings(getenv("REPORT_RECIPIENTS", "")),

		ReportsDir: getenv("REPORTS_DIR", "reports"),
		HTTPAddr:   getenv("HTTP_ADDR", ":8080"),
	}

	// Fixed two-address pair unless operators override it explicitly.
	if len(cfg.Recipients) == 0 {
		cfg.Recipients = []string{"pmo-team@outlook.com", "pmo-team@gmail.com"}
	}
	return cfg
}
