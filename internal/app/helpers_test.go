package app

import (
	"testing"

	"github.com/gatewaytools/perfsync/internal/workspace"
)

func TestStatusGlyph(t *testing.T) {
	cases := []struct {
		status workspace.Status
		want   string
	}{
		{workspace.StatusLoaded, "✓"},
		{workspace.StatusFailed, "✗"},
		{workspace.StatusFetched, "~"},
		{workspace.StatusPending, "·"},
	}
	for _, c := range cases {
		if got := statusGlyph(c.status); got != c.want {
			t.Errorf("statusGlyph(%q) = %q, want %q", c.status, got, c.want)
		}
	}
}

func TestEntryDetail(t *testing.T) {
	url, _ := workspace.NewURLEntry("https://example.org/01-GEN.usfm")
	if got := entryDetail(url); got != "https://example.org/01-GEN.usfm" {
		t.Errorf("entryDetail(url) = %q", got)
	}

	up, _ := workspace.NewUploadEntry("44-JHN.usfm", "/tmp/44-JHN.usfm", "\\id JHN\n")
	if got := entryDetail(up); got != "44-JHN.usfm" {
		t.Errorf("entryDetail(upload) = %q", got)
	}

	code, _ := workspace.NewCodeEntry("GEN")
	if got := entryDetail(code); got != "canonical" {
		t.Errorf("entryDetail(code) = %q", got)
	}
}

func TestResolveVariantName(t *testing.T) {
	cases := []struct {
		flag, configured, want string
	}{
		{"simplified", "literal", "simplified"},
		{"", "simplified", "simplified"},
		{"", "", "literal"},
	}
	for _, c := range cases {
		if got := resolveVariantName(c.flag, c.configured); got != c.want {
			t.Errorf("resolveVariantName(%q, %q) = %q, want %q", c.flag, c.configured, got, c.want)
		}
	}
}
