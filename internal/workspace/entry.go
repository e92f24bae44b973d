// Package workspace holds the user's working set of book requests: the
// ordered list of entries to be resolved against a remote repository and
// loaded into the document engine.
package workspace

import (
	"fmt"

	"github.com/gatewaytools/perfsync/internal/books"
	"github.com/gatewaytools/perfsync/internal/dcs"
	"github.com/gatewaytools/perfsync/internal/perf"
	"github.com/gatewaytools/perfsync/internal/util"
)

// Source says where an entry came from.
type Source string

const (
	// SourceURL is an entry added by USFM file URL.
	SourceURL Source = "url"
	// SourceUpload is an entry added from a local USFM file; its text is
	// already decoded and only needs conversion.
	SourceUpload Source = "upload"
	// SourceCode is an entry added by canonical book code (picker or
	// command argument).
	SourceCode Source = "code"
)

// Status tracks how far an entry has progressed through a sync pass.
// The synchronizer gates on Status, not on which fields happen to be set.
type Status string

const (
	// StatusPending needs a remote fetch.
	StatusPending Status = "pending"
	// StatusFetched has USFM text and needs conversion and loading.
	StatusFetched Status = "fetched"
	// StatusLoaded is converted and sideloaded into the engine.
	StatusLoaded Status = "loaded"
	// StatusFailed failed during the last pass; eligible again on the
	// next trigger.
	StatusFailed Status = "failed"
)

// Entry is one requested book.
type Entry struct {
	ID     string
	BookID string // 3-character code from the add-time heuristics
	Source Source

	URL              string // origin reference for SourceURL
	UploadedFilename string // origin reference for SourceUpload
	UploadedPath     string // local path the upload was read from

	USFMText string           // decoded text; empty until fetched
	Content  *dcs.FileContent // raw contents-API response; nil until fetched
	Perf     *perf.Document   // converted document; nil until converted

	Repo     string // repository the content was fetched from
	Type     string // version variant the entry was synchronized under
	ReadOnly bool

	Status Status
	Err    error // failure from the last pass, if any
}

// NewURLEntry creates an entry from a USFM file URL. The random owner and
// language tags only make the ID unique; they play no part in fetching.
func NewURLEntry(rawURL string) (Entry, error) {
	if rawURL == "" {
		return Entry{}, fmt.Errorf("workspace: url required")
	}
	bookID := books.CodeFromURL(rawURL)
	ownerTag := util.RandomLetters(3)
	langTag := util.RandomLetters(2)
	return Entry{
		ID:       fmt.Sprintf("%s-%s-%s", bookID, ownerTag, langTag),
		BookID:   bookID,
		Source:   SourceURL,
		URL:      rawURL,
		ReadOnly: true,
		Status:   StatusPending,
	}, nil
}

// NewUploadEntry creates an entry from an already-decoded USFM upload.
// path records where the text was read from so the workspace file can be
// reloaded in a later invocation.
func NewUploadEntry(filename, path, usfmText string) (Entry, error) {
	if filename == "" {
		return Entry{}, fmt.Errorf("workspace: filename required")
	}
	if usfmText == "" {
		return Entry{}, fmt.Errorf("workspace: usfm text required")
	}
	return Entry{
		ID:               filename,
		BookID:           books.CodeFromFilename(filename),
		Source:           SourceUpload,
		UploadedFilename: filename,
		UploadedPath:     path,
		USFMText:         usfmText,
		ReadOnly:         true,
		Status:           StatusFetched,
	}, nil
}

// NewCodeEntry creates an entry from a canonical book code.
func NewCodeEntry(code string) (Entry, error) {
	b := books.ByCode(code)
	if b == nil {
		return Entry{}, fmt.Errorf("workspace: unknown book code %q", code)
	}
	ownerTag := util.RandomLetters(3)
	langTag := util.RandomLetters(2)
	return Entry{
		ID:       fmt.Sprintf("%s-%s-%s", b.Code, ownerTag, langTag),
		BookID:   b.Code,
		Source:   SourceCode,
		ReadOnly: true,
		Status:   StatusPending,
	}, nil
}

// NeedsSync reports whether a pass should process this entry.
func (e *Entry) NeedsSync() bool {
	return e.Status != StatusLoaded
}

// NeedsFetch reports whether this entry still lacks remote content.
// Upload entries carry their text from the start and never fetch.
func (e *Entry) NeedsFetch() bool {
	return e.NeedsSync() && e.Source != SourceUpload && e.Content == nil
}
