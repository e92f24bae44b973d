// Package perf models PERF, the flat structured-document representation
// used as the in-memory editing format, and converts USFM text into it.
package perf

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is the PERF structure version documents declare.
const SchemaVersion = "0.3.0"

// Document is one PERF document, holding a single book.
type Document struct {
	Schema         Schema               `json:"schema"`
	Metadata       Metadata             `json:"metadata"`
	Sequences      map[string]*Sequence `json:"sequences"`
	MainSequenceID string               `json:"main_sequence_id"`
}

// Schema identifies the document structure flavor.
type Schema struct {
	Structure        string `json:"structure"`
	StructureVersion string `json:"structure_version"`
}

// Metadata carries the document-level header fields taken from USFM.
type Metadata struct {
	Document DocumentMeta `json:"document"`
}

// DocumentMeta holds the book header markers.
type DocumentMeta struct {
	BookCode string `json:"bookCode"`
	ID       string `json:"id,omitempty"`   // remainder of the \id line
	H        string `json:"h,omitempty"`    // running header
	Toc1     string `json:"toc1,omitempty"` // long table-of-contents name
	Toc2     string `json:"toc2,omitempty"`
	Toc3     string `json:"toc3,omitempty"`
	MT       string `json:"mt,omitempty"` // main title
}

// Sequence is an ordered run of blocks. Every document has one main
// sequence; headings and the like stay inline in this flat structure.
type Sequence struct {
	Type   string  `json:"type"`
	Blocks []Block `json:"blocks"`
}

// Block is one paragraph-level unit.
type Block struct {
	Type    string        `json:"type"`
	Subtype string        `json:"subtype"`
	Content []ContentItem `json:"content"`
}

// ContentItem is either a Text run or a Mark. Blocks hold mixed content,
// serialized as a JSON array of strings and objects.
type ContentItem interface {
	isContentItem()
}

// Text is a plain text run inside a block.
type Text string

func (Text) isContentItem() {}

// Mark is an inline marker, e.g. a chapter or verse milestone.
type Mark struct {
	Type    string            `json:"type"`
	Subtype string            `json:"subtype"`
	Atts    map[string]string `json:"atts,omitempty"`
}

func (Mark) isContentItem() {}

// UnmarshalJSON decodes the mixed string/object content array.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    string            `json:"type"`
		Subtype string            `json:"subtype"`
		Content []json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Type = raw.Type
	b.Subtype = raw.Subtype
	b.Content = nil
	for _, item := range raw.Content {
		if len(item) > 0 && item[0] == '"' {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return err
			}
			b.Content = append(b.Content, Text(s))
			continue
		}
		var m Mark
		if err := json.Unmarshal(item, &m); err != nil {
			return err
		}
		b.Content = append(b.Content, m)
	}
	return nil
}

// MainSequence returns the document's main sequence, or an error if the
// document is malformed.
func (d *Document) MainSequence() (*Sequence, error) {
	seq, found := d.Sequences[d.MainSequenceID]
	if !found {
		return nil, fmt.Errorf("perf: main sequence %q missing", d.MainSequenceID)
	}
	return seq, nil
}
