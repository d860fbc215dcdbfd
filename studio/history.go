package studio

import (
	"time"
)

// HistoryCap bounds the in-memory gallery; nothing is ever persisted.
const HistoryCap = 32

// Entry is one produced artwork. Vector outcomes carry SVG markup, raster
// outcomes carry encoded PNG bytes; the other field stays empty.
type Entry struct {
	Mode  Mode
	Label string
	SVG   string
	PNG   []byte
	At    time.Time
}

// History is a fixed-capacity list of recent entries, newest first.
type History struct {
	entries []Entry
}

// Add prepends e, evicting the oldest entry past capacity.
func (h *History) Add(e Entry) {
	h.entries = append(h.entries, Entry{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
	if len(h.entries) > HistoryCap {
		h.entries = h.entries[:HistoryCap]
	}
}

// Entries returns the gallery newest first. The backing array is shared,
// callers must not mutate it.
func (h *History) Entries() []Entry {
	return h.entries
}

// Len reports how many entries are held.
func (h *History) Len() int {
	return len(h.entries)
}

// Latest returns the newest entry, ok=false when the gallery is empty.
func (h *History) Latest() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[0], true
}
