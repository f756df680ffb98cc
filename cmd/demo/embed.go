package main

import (
	_ "embed"
	"os"

	"github.com/milk9111/actionmap/bindings"
)

//go:embed bindings.yaml
var defaultProfile []byte

// loadProfile prefers the on-disk profile so edits take effect, and
// falls back to the embedded default when none exists.
func loadProfile(path string) (*bindings.Profile, bool, error) {
	if data, err := os.ReadFile(path); err == nil {
		p, err := bindings.ParseProfile(data)
		return p, true, err
	}
	p, err := bindings.ParseProfile(defaultProfile)
	return p, false, err
}
