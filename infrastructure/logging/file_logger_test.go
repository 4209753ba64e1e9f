package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileLogger_WritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	logger, err := NewFileLogger(path, 1024)
	require.NoError(t, err)

	logger.Printf("client sent %s request", "open")
	logger.Printf("open request success")
	require.NoError(t, logger.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "client sent open request")
	require.Contains(t, string(raw), "open request success")
}

func TestFileLogger_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	first, err := NewFileLogger(path, 1024)
	require.NoError(t, err)
	first.Printf("first run")
	require.NoError(t, first.Close())

	second, err := NewFileLogger(path, 1024)
	require.NoError(t, err)
	second.Printf("second run")
	require.NoError(t, second.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "first run")
	require.Contains(t, string(raw), "second run")
}

func TestFileLogger_ResetsOversizedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	oversized := strings.Repeat("old entry\n", 11)
	require.NoError(t, os.WriteFile(path, []byte(oversized), 0600))

	logger, err := NewFileLogger(path, 10)
	require.NoError(t, err)
	logger.Printf("fresh entry")
	require.NoError(t, logger.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "old entry")
	require.Contains(t, string(raw), "fresh entry")
}

func TestFileLogger_KeepsLogWithinLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	existing := strings.Repeat("old entry\n", 5)
	require.NoError(t, os.WriteFile(path, []byte(existing), 0600))

	logger, err := NewFileLogger(path, 10)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "old entry")
}
