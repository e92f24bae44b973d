package books

import (
	"regexp"
	"strings"
)

// Heuristic book-code extraction for user-supplied names. Three tiers,
// tried in order:
//
//  1. canonical: the trailing path segment is an exact repository
//     filename ("NN-CCC.usfm", any case) — resolved through the table so
//     this tier can never disagree with Filename.
//  2. marker run: the letter/underscore run immediately before ".usfm"
//     (for URLs the run must follow a '-', '_' or '/' separator).
//  3. raw tail: the input's trailing 10 characters.
//
// Whatever a tier yields is truncated to its trailing 3 characters.

var (
	urlBookRe  = regexp.MustCompile(`[-_/]([A-Za-z_]+)\.usfm$`)
	fileBookRe = regexp.MustCompile(`([A-Za-z_]+)\.usfm$`)
)

// CodeFromURL extracts a 3-character book code from a USFM file URL.
func CodeFromURL(rawURL string) string {
	if code, found := codeFromCanonicalName(rawURL); found {
		return code
	}
	if m := urlBookRe.FindStringSubmatch(rawURL); m != nil {
		return tail(m[1], 3)
	}
	return tail(tail(rawURL, 10), 3)
}

// CodeFromFilename extracts a 3-character book code from an uploaded
// filename. Unlike CodeFromURL the marker run needs no leading separator.
func CodeFromFilename(name string) string {
	if code, found := codeFromCanonicalName(name); found {
		return code
	}
	if m := fileBookRe.FindStringSubmatch(name); m != nil {
		return tail(m[1], 3)
	}
	return tail(tail(name, 10), 3)
}

// codeFromCanonicalName matches the trailing path segment against the
// canonical filename table.
func codeFromCanonicalName(s string) (string, bool) {
	seg := s
	if i := strings.LastIndexAny(seg, "/\\"); i >= 0 {
		seg = seg[i+1:]
	}
	seg = strings.ToUpper(seg)
	for _, b := range canon {
		if seg == b.Num+"-"+b.Code+".USFM" {
			return b.Code, true
		}
	}
	return "", false
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
