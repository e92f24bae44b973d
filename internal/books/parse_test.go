package books_test

import (
	"testing"

	"github.com/gatewaytools/perfsync/internal/books"
)

func TestCodeFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		// canonical filename tier
		{"en_ult/01-GEN.usfm", "GEN"},
		{"https://example.org/repo/44-JHN.usfm", "JHN"},
		{"https://example.org/repo/09-1sa.usfm", "1SA"},
		// marker-run tier: run is truncated to its trailing 3 characters
		{"https://example.org/files/my_translation_of_JHN.usfm", "JHN"},
		{"https://example.org/x/from-exodus.usfm", "dus"},
		// raw-tail tier: no separator-led letter run before .usfm
		{"https://example.org/abc123", "123"},
	}
	for _, c := range cases {
		if got := books.CodeFromURL(c.url); got != c.want {
			t.Errorf("CodeFromURL(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestCodeFromFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"01-GEN.usfm", "GEN"},
		{"titus.usfm", "tus"},
		// the letter run may include underscores
		{"my_JHN.usfm", "JHN"},
		// digit before .usfm defeats the marker run; trailing-10 then
		// trailing-3 fallback applies
		{"upload_42.usfm", "sfm"},
		{"x", "x"},
	}
	for _, c := range cases {
		if got := books.CodeFromFilename(c.name); got != c.want {
			t.Errorf("CodeFromFilename(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}
