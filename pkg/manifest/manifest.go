// Package manifest describes a YAML batch of shift report files to
// process in one run.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the top-level YAML document.
type Manifest struct {
	Reports []Entry `yaml:"reports"`
}

// Entry is a single shift report file with its business identity.
type Entry struct {
	Club     string `yaml:"club"`
	Date     string `yaml:"date"` // DD.MM.YYYY, as the clubs write it
	FilePath string `yaml:"file"`
}

// Load reads a manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if len(m.Reports) == 0 {
		return nil, fmt.Errorf("manifest has no reports")
	}
	return &m, nil
}

// File returns the absolute path to the report file, expanding ~.
func (e *Entry) File() (string, error) {
	if strings.HasPrefix(e.FilePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, e.FilePath[2:]), nil
	}
	return e.FilePath, nil
}

// Bytes reads the report file this entry points to.
func (e *Entry) Bytes() ([]byte, error) {
	path, err := e.File()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file %s: %w", path, err)
	}
	return data, nil
}
