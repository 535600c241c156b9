package seedfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeed(t, `
- question: "How do I reset my password?"
  answer: "Go to settings..."
- question: "How do I deactivate my account?"
  answer: "Under account settings..."
`)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "How do I reset my password?", entries[0].Question)
	require.Equal(t, "Go to settings...", entries[0].Answer)
}

func TestLoadRejectsEmptyEntries(t *testing.T) {
	path := writeSeed(t, `
- question: "ok"
  answer: ""
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := writeSeed(t, "")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
