// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"ttresults/internal/config"
	"ttresults/internal/rider"
)

// NewConfig returns a validated config rooted in a temp directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Source.ResultsCSV = filepath.Join(dir, "results.csv")
	cfg.Output.Dir = filepath.Join(dir, "html")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	return &cfg
}

// Entry builds a raw entry with every canonical key present. Overrides
// replace individual cells.
func Entry(name, gender, age string, overrides map[string]string) rider.Raw {
	entry := make(rider.Raw, len(rider.Keys))
	for _, key := range rider.Keys {
		entry[key] = ""
	}
	entry[rider.KeyName] = name
	entry[rider.KeyGender] = gender
	entry[rider.KeyAge] = age
	for key, value := range overrides {
		entry[key] = value
	}
	return entry
}
