// Package syncer reconciles the workspace's book requests against remote
// content: entries that are not yet populated are fetched, decoded,
// converted and sideloaded into the document engine, exactly once each.
package syncer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gatewaytools/perfsync/internal/books"
	"github.com/gatewaytools/perfsync/internal/dcs"
	"github.com/gatewaytools/perfsync/internal/perf"
	"github.com/gatewaytools/perfsync/internal/workspace"
)

// Variant selects the translation style a pass resolves against.
type Variant string

const (
	VariantLiteral    Variant = "literal"
	VariantSimplified Variant = "simplified"
)

// ParseVariant validates a user-supplied variant name.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(s)) {
	case VariantLiteral:
		return VariantLiteral, nil
	case VariantSimplified:
		return VariantSimplified, nil
	}
	return "", fmt.Errorf("unknown variant %q (want literal or simplified)", s)
}

// Selection is the read-only selection state a pass runs under.
type Selection struct {
	Owner      string
	Server     string
	LanguageID string
}

// ContentFetcher is the remote repository read surface. *dcs.Client
// satisfies it.
type ContentFetcher interface {
	GetContents(owner, repo, path string) (*dcs.FileContent, error)
}

// DocumentEngine is the store a pass loads converted documents into.
// *engine.Engine satisfies it.
type DocumentEngine interface {
	Sideload(code string, doc *perf.Document) error
	LocalBookCodes() []string
}

// ConvertFunc turns USFM text into a PERF document.
type ConvertFunc func(usfm string) (*perf.Document, error)

// Outcome is the result of processing one entry during a pass.
type Outcome struct {
	ID     string
	BookID string
	Repo   string
	Err    error
}

// Report collects the outcomes of one Sync call, which may span several
// coalesced passes.
type Report struct {
	Outcomes []Outcome
}

// Loaded returns the outcomes that completed.
func (r *Report) Loaded() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err == nil {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outcomes that did not complete.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithOnPublish registers a hook invoked with the new list every time the
// synchronizer publishes it (list mutations and pass completion). The UI
// layer uses this to reset its derived layout.
func WithOnPublish(fn func([]workspace.Entry)) Option {
	return func(s *Synchronizer) { s.onPublish = fn }
}

// Synchronizer is the single writer over the book-request list. Passes
// are serialized: a trigger arriving while a pass runs is parked in a
// single slot and honored with one extra pass.
type Synchronizer struct {
	fetcher ContentFetcher
	engine  DocumentEngine
	convert ConvertFunc

	onPublish func([]workspace.Entry)

	mu            sync.Mutex
	entries       []workspace.Entry
	selection     Selection
	authenticated bool
	trigger       Variant
	refresh       bool
	running       bool
	parked        Variant
}

// New creates a Synchronizer over the given collaborators.
func New(fetcher ContentFetcher, engine DocumentEngine, convert ConvertFunc, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		fetcher: fetcher,
		engine:  engine,
		convert: convert,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetSelection replaces the selection state and requests a refresh.
func (s *Synchronizer) SetSelection(sel Selection) {
	s.mu.Lock()
	s.selection = sel
	s.refresh = true
	s.mu.Unlock()
}

// SetAuthenticated records whether credentials are available. Passes do
// not run without them.
func (s *Synchronizer) SetAuthenticated(ok bool) {
	s.mu.Lock()
	s.authenticated = ok
	s.mu.Unlock()
}

// SetBooks replaces the request list and requests a refresh.
func (s *Synchronizer) SetBooks(entries []workspace.Entry) {
	s.mu.Lock()
	s.entries = copyEntries(entries)
	s.refresh = true
	published := copyEntries(s.entries)
	s.mu.Unlock()
	s.publish(published)
}

// RequestRefresh marks the list as needing reconciliation without
// changing it.
func (s *Synchronizer) RequestRefresh() {
	s.mu.Lock()
	s.refresh = true
	s.mu.Unlock()
}

// Books returns a snapshot of the current list.
func (s *Synchronizer) Books() []workspace.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEntries(s.entries)
}

// Trigger arms the synchronizer for the given variant. A trigger arriving
// while a pass is running is parked and coalesced into one extra pass.
func (s *Synchronizer) Trigger(v Variant) {
	s.mu.Lock()
	if s.running {
		s.parked = v
	} else {
		s.trigger = v
		s.refresh = true
	}
	s.mu.Unlock()
}

// Sync runs reconciliation passes until the synchronizer returns to idle.
// It returns nil when no pass was armed (no trigger, incomplete selection,
// missing credentials, or a pass already running elsewhere).
func (s *Synchronizer) Sync() *Report {
	var total *Report
	for {
		rep := s.runPass()
		if rep == nil {
			return total
		}
		if total == nil {
			total = &Report{}
		}
		total.Outcomes = append(total.Outcomes, rep.Outcomes...)
	}
}

// armedLocked reports whether a pass may start. Callers hold mu.
func (s *Synchronizer) armedLocked() bool {
	if s.trigger != VariantLiteral && s.trigger != VariantSimplified {
		return false
	}
	if s.selection.Owner == "" || s.selection.Server == "" || s.selection.LanguageID == "" {
		return false
	}
	return s.authenticated && s.refresh
}

func (s *Synchronizer) runPass() *Report {
	s.mu.Lock()
	if s.running || !s.armedLocked() {
		s.mu.Unlock()
		return nil
	}
	variant := s.trigger
	sel := s.selection
	snapshot := copyEntries(s.entries)
	s.running = true
	s.mu.Unlock()

	repo := sel.LanguageID + RepoSuffix(sel.Owner, variant)
	rep := &Report{}
	for i := range snapshot {
		e := &snapshot[i]
		if !e.NeedsSync() {
			continue
		}
		s.syncEntry(e, sel, repo, variant)
		rep.Outcomes = append(rep.Outcomes, Outcome{ID: e.ID, BookID: e.BookID, Repo: e.Repo, Err: e.Err})
	}

	s.mu.Lock()
	// Entries appended while the pass ran were not part of the snapshot;
	// keep them for the next pass instead of clobbering them on publish.
	s.entries = mergeAppended(snapshot, s.entries)
	s.trigger = ""
	s.refresh = false
	if s.parked != "" {
		s.trigger = s.parked
		s.refresh = true
		s.parked = ""
	}
	s.running = false
	published := copyEntries(s.entries)
	s.mu.Unlock()

	s.publish(published)
	return rep
}

// syncEntry advances one entry as far as it can get. Failures stay local
// to the entry; the pass carries on with its siblings.
func (s *Synchronizer) syncEntry(e *workspace.Entry, sel Selection, repo string, variant Variant) {
	e.Err = nil

	if e.NeedsFetch() {
		filename, found := books.Filename(e.BookID)
		if !found {
			e.USFMText = ""
			fail(e, fmt.Errorf("no canonical filename for book %q", e.BookID))
			return
		}
		fc, err := s.fetcher.GetContents(sel.Owner, repo, filename)
		if err != nil {
			e.USFMText = ""
			fail(e, fmt.Errorf("fetching %s/%s/%s: %w", sel.Owner, repo, filename, err))
			return
		}
		e.Content = fc
		e.Repo = repo

		text := fc.Content
		if fc.Encoding == "base64" {
			text, err = perf.DecodeBase64(fc.Content)
			if err != nil {
				e.Content = nil
				e.USFMText = ""
				fail(e, err)
				return
			}
		}
		e.USFMText = text
	}

	if e.USFMText == "" {
		e.Content = nil
		fail(e, errors.New("no USFM text to convert"))
		return
	}

	doc, err := s.convert(e.USFMText)
	if err != nil {
		// Drop the content so the next trigger refetches rather than
		// reconverting the same bytes.
		e.Content = nil
		fail(e, fmt.Errorf("converting %s: %w", e.BookID, err))
		return
	}
	e.Perf = doc

	if err := s.engine.Sideload(strings.ToUpper(e.BookID), doc); err != nil {
		fail(e, err)
		return
	}

	e.Type = string(variant)
	e.Status = workspace.StatusLoaded
}

// RepoSuffix returns the repository name suffix for an owner and variant.
// unfoldingWord publishes the canonical ULT/UST repos; every other owner
// uses the gateway-language GLT/GST naming.
func RepoSuffix(owner string, v Variant) string {
	if strings.EqualFold(owner, "unfoldingword") {
		if v == VariantLiteral {
			return "_ult"
		}
		return "_ust"
	}
	if v == VariantLiteral {
		return "_glt"
	}
	return "_gst"
}

func fail(e *workspace.Entry, err error) {
	e.Status = workspace.StatusFailed
	e.Err = err
}

func copyEntries(entries []workspace.Entry) []workspace.Entry {
	out := make([]workspace.Entry, len(entries))
	copy(out, entries)
	return out
}

// mergeAppended keeps the processed snapshot and re-appends entries that
// joined the live list after the snapshot was taken.
func mergeAppended(snapshot, live []workspace.Entry) []workspace.Entry {
	seen := make(map[string]bool, len(snapshot))
	for _, e := range snapshot {
		seen[e.ID] = true
	}
	out := snapshot
	for _, e := range live {
		if !seen[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

func (s *Synchronizer) publish(entries []workspace.Entry) {
	if s.onPublish != nil {
		s.onPublish(entries)
	}
}
