// Package engine is the in-memory PERF document store. Books are keyed by
// their 3-letter uppercase code; sideloading the same code again replaces
// the prior document and records it in a bounded per-book history.
package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gatewaytools/perfsync/internal/perf"
)

// DefaultHistorySize bounds the per-book undo history.
const DefaultHistorySize = 100

// Engine stores one PERF document per book code.
type Engine struct {
	mu          sync.RWMutex
	books       map[string]*bookState
	historySize int
}

type bookState struct {
	snapshots []*perf.Document
	pos       int // index of the current snapshot
}

// New creates an empty Engine. historySize <= 0 selects the default.
func New(historySize int) *Engine {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Engine{
		books:       map[string]*bookState{},
		historySize: historySize,
	}
}

// Sideload inserts a document under the given book code, replacing any
// prior document for that code. The code is normalized to uppercase and
// must be 3 characters.
func (e *Engine) Sideload(code string, doc *perf.Document) error {
	key := strings.ToUpper(strings.TrimSpace(code))
	if len(key) != 3 {
		return fmt.Errorf("engine: book code %q must be 3 characters", code)
	}
	if doc == nil {
		return fmt.Errorf("engine: nil document for %s", key)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	st, found := e.books[key]
	if !found {
		st = &bookState{}
		e.books[key] = st
	}

	// Sideloading truncates any redo tail, then appends.
	if len(st.snapshots) > 0 {
		st.snapshots = st.snapshots[:st.pos+1]
	}
	st.snapshots = append(st.snapshots, doc)
	if len(st.snapshots) > e.historySize {
		st.snapshots = st.snapshots[len(st.snapshots)-e.historySize:]
	}
	st.pos = len(st.snapshots) - 1
	return nil
}

// Read returns the current document for a book code, if loaded.
func (e *Engine) Read(code string) (*perf.Document, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	st, found := e.books[strings.ToUpper(code)]
	if !found || len(st.snapshots) == 0 {
		return nil, false
	}
	return st.snapshots[st.pos], true
}

// LocalBookCodes returns the sorted codes of all loaded books.
func (e *Engine) LocalBookCodes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	codes := make([]string, 0, len(e.books))
	for code := range e.books {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Undo steps a book back one snapshot. Returns the now-current document
// and whether a step was taken.
func (e *Engine) Undo(code string) (*perf.Document, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, found := e.books[strings.ToUpper(code)]
	if !found || st.pos == 0 {
		return nil, false
	}
	st.pos--
	return st.snapshots[st.pos], true
}

// Redo steps a book forward one snapshot after an Undo.
func (e *Engine) Redo(code string) (*perf.Document, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, found := e.books[strings.ToUpper(code)]
	if !found || st.pos >= len(st.snapshots)-1 {
		return nil, false
	}
	st.pos++
	return st.snapshots[st.pos], true
}
