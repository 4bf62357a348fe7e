// Package testsupport holds shared helpers for package tests: temp-dir
// configs, store setup, and seeded case records.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"gavel/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.CorpusDir = filepath.Join(base, "corpus")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	// The corpus directory is an input, not something gavel creates.
	if err := os.MkdirAll(cfg.Paths.CorpusDir, 0o755); err != nil {
		t.Fatalf("create corpus dir: %v", err)
	}
	return &cfg
}

// WriteCorpusDocument writes a corpus JSON document under the config's
// corpus directory and returns its path.
func WriteCorpusDocument(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.CorpusDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus document: %v", err)
	}
	return path
}
