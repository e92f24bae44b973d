package workspace

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// The workspace file persists origin references only. Fetched content,
// converted documents and pass state are rebuilt on the next sync.
type entryRecord struct {
	ID               string `yaml:"id"`
	BookID           string `yaml:"book_id"`
	Source           Source `yaml:"source"`
	URL              string `yaml:"url,omitempty"`
	UploadedFilename string `yaml:"uploaded_filename,omitempty"`
	UploadedPath     string `yaml:"uploaded_path,omitempty"`
}

// Load reads the workspace file. A missing file is an empty workspace.
// Upload entries re-read their USFM text from the recorded path; if the
// file has gone away the entry is kept with empty text and will surface
// as a failure in the next pass.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("reading workspace: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return []Entry{}, nil
	}
	var records []entryRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing workspace YAML: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		e := Entry{
			ID:               r.ID,
			BookID:           r.BookID,
			Source:           r.Source,
			URL:              r.URL,
			UploadedFilename: r.UploadedFilename,
			UploadedPath:     r.UploadedPath,
			ReadOnly:         true,
			Status:           StatusPending,
		}
		if e.Source == SourceUpload {
			e.Status = StatusFetched
			if e.UploadedPath != "" {
				if text, err := os.ReadFile(e.UploadedPath); err == nil {
					e.USFMText = string(text)
				}
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Save writes the workspace file, creating its directory if needed.
func Save(path string, entries []Entry) error {
	records := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, entryRecord{
			ID:               e.ID,
			BookID:           e.BookID,
			Source:           e.Source,
			URL:              e.URL,
			UploadedFilename: e.UploadedFilename,
			UploadedPath:     e.UploadedPath,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding workspace: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}
