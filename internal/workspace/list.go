package workspace

// List operations are copy-on-write: consumers holding the old slice never
// observe a mutation, and a published list is always a fresh value.

// Append returns a new list with e added at the end. If an entry with the
// same ID exists it is replaced in place instead.
func Append(entries []Entry, e Entry) []Entry {
	out := make([]Entry, len(entries), len(entries)+1)
	copy(out, entries)
	for i := range out {
		if out[i].ID == e.ID {
			out[i] = e
			return out
		}
	}
	return append(out, e)
}

// Remove returns a new list without the entry of the given ID, and whether
// an entry was actually removed.
func Remove(entries []Entry, id string) ([]Entry, bool) {
	out := make([]Entry, 0, len(entries))
	removed := false
	for _, e := range entries {
		if e.ID == id {
			removed = true
			continue
		}
		out = append(out, e)
	}
	return out, removed
}

// ByID returns a pointer into entries for the given ID, or nil.
func ByID(entries []Entry, id string) *Entry {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i]
		}
	}
	return nil
}
