package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_FilenameCombinesLabelAndDate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	s := NewSink(dir, zerolog.Nop())

	path, err := s.Write("<html></html>", "15h", time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pmo_report_15h_20240305.html"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(b))
}

func TestSink_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "reports")
	s := NewSink(dir, zerolog.Nop())

	_, err := s.Write("doc", "09h", time.Now())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSink_SameRunOverwrites(t *testing.T) {
	s := NewSink(t.TempDir(), zerolog.Nop())
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	first, err := s.Write("first", "09h", now)
	require.NoError(t, err)
	second, err := s.Write("second", "09h", now)
	require.NoError(t, err)
	require.Equal(t, first, second)

	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}
