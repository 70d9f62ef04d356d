// Package project loads the optional quartz.toml manifest that describes a
// compilation unit: its entry file, output identifier, and scan settings.
// CLI flags always win over manifest values.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up in the project base directory.
const ManifestName = "quartz.toml"

// Manifest mirrors the quartz.toml schema.
type Manifest struct {
	Name   string `toml:"name"`
	Input  string `toml:"input"`
	Output string `toml:"output,omitempty"`

	MaxDiagnostics int  `toml:"max_diagnostics,omitempty"`
	Jobs           int  `toml:"jobs,omitempty"`
	Sequential     bool `toml:"sequential,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	if m.Input == "" {
		return nil, fmt.Errorf("manifest %s: missing required key 'input'", path)
	}
	return &m, nil
}

// Find loads the manifest from baseDir, if one exists. A missing manifest
// is not an error; a malformed one is.
func Find(baseDir string) (*Manifest, bool, error) {
	path := filepath.Join(baseDir, ManifestName)
	m, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return m, true, nil
}
