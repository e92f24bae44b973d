// Package stage manages the on-disk stage directory: converted PERF
// documents exported as JSON, one file per book, grouped by the
// repository they were resolved from.
package stage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gatewaytools/perfsync/internal/perf"
)

// Manager handles the stage directory.
type Manager struct {
	baseDir string
}

// New creates a stage Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Path returns the stage path for a repo and book code.
// Layout: <baseDir>/<repo>/<CODE>.json
func (m *Manager) Path(repo, code string) string {
	return filepath.Join(m.baseDir, repo, strings.ToUpper(code)+".json")
}

// Exists reports whether the staged document exists.
func (m *Manager) Exists(repo, code string) bool {
	_, err := os.Stat(m.Path(repo, code))
	return err == nil
}

func (m *Manager) ensureDir(repo string) error {
	return os.MkdirAll(filepath.Join(m.baseDir, repo), 0750)
}

// Store writes doc to the stage path for the given coordinates. The write
// goes through a temp file and a rename so readers never see a partial
// document. Returns the final file path.
func (m *Manager) Store(repo, code string, doc *perf.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("stage: nil document for %s", code)
	}
	if err := m.ensureDir(repo); err != nil {
		return "", fmt.Errorf("create stage dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}

	destPath := m.Path(repo, code)
	tmpPath := destPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return "", fmt.Errorf("writing stage file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return destPath, nil
}

// Load reads a staged document back.
func (m *Manager) Load(repo, code string) (*perf.Document, error) {
	data, err := os.ReadFile(m.Path(repo, code))
	if err != nil {
		return nil, err
	}
	var doc perf.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding staged document: %w", err)
	}
	return &doc, nil
}

// List returns the staged book codes for a repo, sorted. A missing repo
// directory is an empty stage.
func (m *Manager) List(repo string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(m.baseDir, repo))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var codes []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		codes = append(codes, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(codes)
	return codes, nil
}

// Remove deletes the staged document if it exists.
func (m *Manager) Remove(repo, code string) error {
	err := os.Remove(m.Path(repo, code))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear removes every staged document under the base directory.
func (m *Manager) Clear() error {
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(m.baseDir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
