package perf

import (
	"bufio"
	"fmt"
	"strings"
)

// ToPERF converts USFM text to a PERF document. The scanner walks the
// markup line by line: header markers fill the document metadata,
// paragraph markers open blocks, and chapter/verse markers become inline
// milestones. Unknown markers keep their text and drop the marker itself.
func ToPERF(usfm string) (*Document, error) {
	if strings.TrimSpace(usfm) == "" {
		return nil, fmt.Errorf("perf: empty USFM input")
	}

	doc := &Document{
		Schema: Schema{
			Structure:        "flat",
			StructureVersion: SchemaVersion,
		},
		Sequences:      map[string]*Sequence{},
		MainSequenceID: "main",
	}
	main := &Sequence{Type: "main"}
	doc.Sequences["main"] = main

	var cur *Block
	flush := func() {
		if cur != nil && len(cur.Content) > 0 {
			main.Blocks = append(main.Blocks, *cur)
		}
		cur = nil
	}
	open := func(subtype string) {
		flush()
		cur = &Block{Type: "paragraph", Subtype: "usfm:" + subtype}
	}
	appendText := func(s string) {
		if s == "" {
			return
		}
		if cur == nil {
			open("p")
		}
		if n := len(cur.Content); n > 0 {
			if t, isText := cur.Content[n-1].(Text); isText {
				cur.Content[n-1] = Text(string(t) + " " + s)
				return
			}
		}
		cur.Content = append(cur.Content, Text(s))
	}

	sc := bufio.NewScanner(strings.NewReader(usfm))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "\\") {
			appendText(line)
			continue
		}

		marker, rest := splitMarker(line)
		switch marker {
		case "id":
			fields := strings.Fields(rest)
			if len(fields) > 0 {
				doc.Metadata.Document.BookCode = strings.ToUpper(fields[0])
				doc.Metadata.Document.ID = strings.TrimSpace(strings.TrimPrefix(rest, fields[0]))
			}
		case "h":
			doc.Metadata.Document.H = rest
		case "toc1":
			doc.Metadata.Document.Toc1 = rest
		case "toc2":
			doc.Metadata.Document.Toc2 = rest
		case "toc3":
			doc.Metadata.Document.Toc3 = rest
		case "mt", "mt1":
			doc.Metadata.Document.MT = rest
		case "ide", "usfm", "sts", "rem":
			// file-level markers with no PERF counterpart
		case "c":
			open("p")
			cur.Content = append(cur.Content, Mark{
				Type:    "mark",
				Subtype: "chapter",
				Atts:    map[string]string{"number": strings.TrimSpace(rest)},
			})
		case "v":
			num, text := rest, ""
			if i := strings.IndexAny(rest, " \t"); i >= 0 {
				num, text = rest[:i], strings.TrimSpace(rest[i+1:])
			}
			if cur == nil {
				open("p")
			}
			cur.Content = append(cur.Content, Mark{
				Type:    "mark",
				Subtype: "verses",
				Atts:    map[string]string{"number": num},
			})
			appendText(text)
		case "p", "m", "pi", "mi", "nb", "cls", "b":
			open(marker)
			appendText(rest)
		case "q", "q1", "q2", "q3", "q4", "qr", "qc", "d":
			open(marker)
			appendText(rest)
		case "s", "s1", "s2", "s3", "ms", "ms1", "mr", "sr", "r":
			flush()
			cur = &Block{Type: "paragraph", Subtype: "usfm:" + marker}
			appendText(rest)
			flush()
		default:
			appendText(rest)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("perf: scanning USFM: %w", err)
	}
	flush()

	if doc.Metadata.Document.BookCode == "" {
		return nil, fmt.Errorf("perf: no \\id marker in USFM input")
	}
	return doc, nil
}

// splitMarker splits a "\marker rest of line" into its parts.
func splitMarker(line string) (string, string) {
	line = strings.TrimPrefix(line, "\\")
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	return line, ""
}
