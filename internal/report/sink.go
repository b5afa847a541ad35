package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinicu/pmo-jira-yby/internal/domain"
)

type Sink struct {
	dir string
	log zerolog.Logger
}

func NewSink(dir string, log zerolog.Logger) *Sink {
	if dir == "" {
		dir = "reports"
	}
	return &Sink{dir: dir, log: log}
}

// Write persists one rendered document under the reports directory, creating
// it if absent. The filename combines the run label and the calendar date, so
// a same-day rerun with the same label overwrites the earlier file.
func (s *Sink) Write(doc, label string, now time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.WriteError{Path: s.dir, Err: err}
	}
	path := filepath.Join(s.dir, fmt.Sprintf("pmo_report_%s_%s.html", label, now.Format("20060102")))
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", &domain.WriteError{Path: path, Err: err}
	}
	s.log.Info().Str("path", path).Msg("report saved")
	return path, nil
}
