// Package books holds the canonical table of Bible books and the
// heuristics for recovering a book code from arbitrary filenames and URLs.
package books

import "strings"

// Book is one canonical book of the Bible.
type Book struct {
	Code string // 3-letter canonical code, uppercase
	Num  string // USFM filename number prefix ("01" … "67"; 40 is unused)
	Name string
}

// canon lists the 66 books in canonical order. Filenames follow the
// unfoldingWord convention: Matthew starts at 41, leaving 40 unused.
var canon = []Book{
	{"GEN", "01", "Genesis"},
	{"EXO", "02", "Exodus"},
	{"LEV", "03", "Leviticus"},
	{"NUM", "04", "Numbers"},
	{"DEU", "05", "Deuteronomy"},
	{"JOS", "06", "Joshua"},
	{"JDG", "07", "Judges"},
	{"RUT", "08", "Ruth"},
	{"1SA", "09", "1 Samuel"},
	{"2SA", "10", "2 Samuel"},
	{"1KI", "11", "1 Kings"},
	{"2KI", "12", "2 Kings"},
	{"1CH", "13", "1 Chronicles"},
	{"2CH", "14", "2 Chronicles"},
	{"EZR", "15", "Ezra"},
	{"NEH", "16", "Nehemiah"},
	{"EST", "17", "Esther"},
	{"JOB", "18", "Job"},
	{"PSA", "19", "Psalms"},
	{"PRO", "20", "Proverbs"},
	{"ECC", "21", "Ecclesiastes"},
	{"SNG", "22", "Song of Songs"},
	{"ISA", "23", "Isaiah"},
	{"JER", "24", "Jeremiah"},
	{"LAM", "25", "Lamentations"},
	{"EZK", "26", "Ezekiel"},
	{"DAN", "27", "Daniel"},
	{"HOS", "28", "Hosea"},
	{"JOL", "29", "Joel"},
	{"AMO", "30", "Amos"},
	{"OBA", "31", "Obadiah"},
	{"JON", "32", "Jonah"},
	{"MIC", "33", "Micah"},
	{"NAM", "34", "Nahum"},
	{"HAB", "35", "Habakkuk"},
	{"ZEP", "36", "Zephaniah"},
	{"HAG", "37", "Haggai"},
	{"ZEC", "38", "Zechariah"},
	{"MAL", "39", "Malachi"},
	{"MAT", "41", "Matthew"},
	{"MRK", "42", "Mark"},
	{"LUK", "43", "Luke"},
	{"JHN", "44", "John"},
	{"ACT", "45", "Acts"},
	{"ROM", "46", "Romans"},
	{"1CO", "47", "1 Corinthians"},
	{"2CO", "48", "2 Corinthians"},
	{"GAL", "49", "Galatians"},
	{"EPH", "50", "Ephesians"},
	{"PHP", "51", "Philippians"},
	{"COL", "52", "Colossians"},
	{"1TH", "53", "1 Thessalonians"},
	{"2TH", "54", "2 Thessalonians"},
	{"1TI", "55", "1 Timothy"},
	{"2TI", "56", "2 Timothy"},
	{"TIT", "57", "Titus"},
	{"PHM", "58", "Philemon"},
	{"HEB", "59", "Hebrews"},
	{"JAS", "60", "James"},
	{"1PE", "61", "1 Peter"},
	{"2PE", "62", "2 Peter"},
	{"1JN", "63", "1 John"},
	{"2JN", "64", "2 John"},
	{"3JN", "65", "3 John"},
	{"JUD", "66", "Jude"},
	{"REV", "67", "Revelation"},
}

var byCode = func() map[string]Book {
	m := make(map[string]Book, len(canon))
	for _, b := range canon {
		m[b.Code] = b
	}
	return m
}()

// All returns the canonical books in order. The returned slice is a copy.
func All() []Book {
	out := make([]Book, len(canon))
	copy(out, canon)
	return out
}

// ByCode returns the canonical book for a code (any case), or nil.
func ByCode(code string) *Book {
	if b, found := byCode[strings.ToUpper(code)]; found {
		return &b
	}
	return nil
}

// IsValid reports whether code (any case) is a canonical book code.
func IsValid(code string) bool {
	_, found := byCode[strings.ToUpper(code)]
	return found
}

// Filename returns the repository USFM filename for a book code,
// e.g. "01-GEN.usfm" for GEN. This is the authoritative direction used
// when fetching; the add-time heuristics in parse.go are independent.
func Filename(code string) (string, bool) {
	b, found := byCode[strings.ToUpper(code)]
	if !found {
		return "", false
	}
	return b.Num + "-" + b.Code + ".usfm", true
}
