/* Copyright (c) 2025 PMO Report contributors
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vinicu/pmo-jira-yby/internal/config"
)

// reportName matches files produced by the sink; anything else under the
// reports directory is never served.
var reportName = regexp.MustCompile(`^pmo_report_[A-Za-z0-9-]+_[0-9]{8}\.html$`)

type Handlers struct {
	cfg config.Config
	log zerolog.Logger
}

func NewHandlers(cfg config.Config, log zerolog.Logger) *Handlers {
	return &Handlers{cfg: cfg, log: log}
}

func (h *Handlers) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handlers) ListReports(c *gin.Context) {
	entries, err := os.ReadDir(h.cfg.ReportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{"reports": []string{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && reportName.MatchString(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	c.JSON(http.StatusOK, gin.H{"reports": names})
}

func (h *Handlers) GetReport(c *gin.Context) {
	name := c.Param("name")
	if !reportName.MatchString(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	path := filepath.Join(h.cfg.ReportsDir, name)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.File(path)
}
