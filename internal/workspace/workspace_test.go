package workspace_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/gatewaytools/perfsync/internal/workspace"
)

func TestNewURLEntry(t *testing.T) {
	e, err := workspace.NewURLEntry("https://git.door43.org/uW/en_ult/raw/branch/master/01-GEN.usfm")
	if err != nil {
		t.Fatalf("NewURLEntry: %v", err)
	}
	if e.BookID != "GEN" {
		t.Errorf("BookID = %q, want GEN", e.BookID)
	}
	if !regexp.MustCompile(`^GEN-[a-z]{3}-[a-z]{2}$`).MatchString(e.ID) {
		t.Errorf("ID = %q, want GEN-<3 letters>-<2 letters>", e.ID)
	}
	if e.Source != workspace.SourceURL || !e.ReadOnly {
		t.Errorf("entry = %+v", e)
	}
	if e.Status != workspace.StatusPending || !e.NeedsFetch() {
		t.Errorf("fresh URL entry should be pending and need a fetch")
	}
}

func TestNewURLEntry_Rejected(t *testing.T) {
	if _, err := workspace.NewURLEntry(""); err == nil {
		t.Error("empty URL should be rejected")
	}
}

func TestNewUploadEntry(t *testing.T) {
	e, err := workspace.NewUploadEntry("44-JHN.usfm", "/tmp/44-JHN.usfm", "\\id JHN\n\\c 1\n")
	if err != nil {
		t.Fatalf("NewUploadEntry: %v", err)
	}
	if e.ID != "44-JHN.usfm" {
		t.Errorf("ID = %q, want the uploaded filename", e.ID)
	}
	if e.BookID != "JHN" {
		t.Errorf("BookID = %q, want JHN", e.BookID)
	}
	if e.Status != workspace.StatusFetched {
		t.Errorf("Status = %q, want fetched", e.Status)
	}
	if e.NeedsFetch() {
		t.Error("upload entries never need a fetch")
	}
	if !e.NeedsSync() {
		t.Error("upload entries still need conversion and loading")
	}
}

func TestNewUploadEntry_Rejected(t *testing.T) {
	if _, err := workspace.NewUploadEntry("", "", "\\id GEN"); err == nil {
		t.Error("missing filename should be rejected")
	}
	if _, err := workspace.NewUploadEntry("x.usfm", "", ""); err == nil {
		t.Error("missing usfm text should be rejected")
	}
}

func TestNewCodeEntry(t *testing.T) {
	e, err := workspace.NewCodeEntry("jhn")
	if err != nil {
		t.Fatalf("NewCodeEntry: %v", err)
	}
	if e.BookID != "JHN" {
		t.Errorf("BookID = %q, want JHN", e.BookID)
	}
	if _, err := workspace.NewCodeEntry("ZZZ"); err == nil {
		t.Error("unknown code should be rejected")
	}
}

func TestAppend_CopyOnWrite(t *testing.T) {
	a, _ := workspace.NewCodeEntry("GEN")
	b, _ := workspace.NewCodeEntry("EXO")

	orig := []workspace.Entry{a}
	grown := workspace.Append(orig, b)

	if len(orig) != 1 {
		t.Fatalf("original list mutated: len=%d", len(orig))
	}
	if len(grown) != 2 || grown[1].BookID != "EXO" {
		t.Fatalf("grown = %d entries", len(grown))
	}
	// The new list must not share backing storage with the old one.
	grown[0].BookID = "XXX"
	if orig[0].BookID != "GEN" {
		t.Error("Append aliased the original backing array")
	}
}

func TestAppend_ReplacesSameID(t *testing.T) {
	a, _ := workspace.NewCodeEntry("GEN")
	updated := a
	updated.Status = workspace.StatusLoaded

	out := workspace.Append([]workspace.Entry{a}, updated)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Status != workspace.StatusLoaded {
		t.Error("entry with same ID was not replaced")
	}
}

func TestRemove(t *testing.T) {
	a, _ := workspace.NewCodeEntry("GEN")
	b, _ := workspace.NewCodeEntry("EXO")
	list := []workspace.Entry{a, b}

	out, removed := workspace.Remove(list, a.ID)
	if !removed || len(out) != 1 || out[0].ID != b.ID {
		t.Errorf("Remove: removed=%v out=%v", removed, out)
	}
	if len(list) != 2 {
		t.Error("Remove mutated the input list")
	}

	_, removed = workspace.Remove(list, "missing")
	if removed {
		t.Error("Remove reported success for a missing ID")
	}
}

func TestByID(t *testing.T) {
	a, _ := workspace.NewCodeEntry("GEN")
	list := []workspace.Entry{a}
	if e := workspace.ByID(list, a.ID); e == nil || e.BookID != "GEN" {
		t.Errorf("ByID = %v", e)
	}
	if workspace.ByID(list, "nope") != nil {
		t.Error("ByID found a missing entry")
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	wsPath := filepath.Join(dir, "workspace.yml")

	usfmPath := filepath.Join(dir, "44-JHN.usfm")
	if err := os.WriteFile(usfmPath, []byte("\\id JHN\n\\c 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	urlEntry, _ := workspace.NewURLEntry("https://example.org/01-GEN.usfm")
	upEntry, _ := workspace.NewUploadEntry("44-JHN.usfm", usfmPath, "\\id JHN\n\\c 1\n")
	entries := []workspace.Entry{urlEntry, upEntry}

	if err := workspace.Save(wsPath, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := workspace.Load(wsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(back))
	}

	if back[0].ID != urlEntry.ID || back[0].Status != workspace.StatusPending {
		t.Errorf("url entry after reload: %+v", back[0])
	}
	if back[1].USFMText == "" {
		t.Error("upload entry text was not re-read from its path")
	}
	if back[1].Status != workspace.StatusFetched {
		t.Errorf("upload entry status = %q, want fetched", back[1].Status)
	}
}

func TestLoad_Missing(t *testing.T) {
	entries, err := workspace.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty workspace, got %d entries", len(entries))
	}
}

func TestLoad_UploadPathGone(t *testing.T) {
	dir := t.TempDir()
	wsPath := filepath.Join(dir, "workspace.yml")
	up, _ := workspace.NewUploadEntry("x.usfm", filepath.Join(dir, "gone.usfm"), "\\id GEN\n")
	if err := workspace.Save(wsPath, []workspace.Entry{up}); err != nil {
		t.Fatal(err)
	}

	back, err := workspace.Load(wsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back[0].USFMText != "" {
		t.Error("text should be empty when the uploaded file is gone")
	}
}
