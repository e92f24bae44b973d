package app

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/gatewaytools/perfsync/internal/workspace"
)

func loadWorkspace() ([]workspace.Entry, error) {
	entries, err := workspace.Load(cfg.Defaults.Workspace)
	if err != nil {
		return nil, fmt.Errorf("loading workspace: %w", err)
	}
	return entries, nil
}

func saveWorkspace(entries []workspace.Entry) error {
	if err := workspace.Save(cfg.Defaults.Workspace, entries); err != nil {
		return fmt.Errorf("saving workspace: %w", err)
	}
	return nil
}

// statusGlyph maps an entry status to its one-character marker.
func statusGlyph(s workspace.Status) string {
	switch s {
	case workspace.StatusLoaded:
		return "✓"
	case workspace.StatusFailed:
		return "✗"
	case workspace.StatusFetched:
		return "~"
	default:
		return "·"
	}
}

func statusLabel(s workspace.Status) string {
	glyph := statusGlyph(s)
	switch s {
	case workspace.StatusLoaded:
		return color.GreenString(glyph)
	case workspace.StatusFailed:
		return color.RedString(glyph)
	case workspace.StatusFetched:
		return color.YellowString(glyph)
	default:
		return glyph
	}
}

// entryDetail is the origin shown next to an entry in listings.
func entryDetail(e workspace.Entry) string {
	switch e.Source {
	case workspace.SourceURL:
		return e.URL
	case workspace.SourceUpload:
		return e.UploadedFilename
	default:
		return "canonical"
	}
}

// resolveVariantName picks the variant for a sync: the flag wins, then
// the configured default.
func resolveVariantName(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	if configured != "" {
		return configured
	}
	return "literal"
}
