package engine

import (
	"fmt"
	"time"
)

// DefaultHistoryLimit bounds the history log when no explicit limit is
// configured.
const DefaultHistoryLimit = 50

// Entry records one completed calculation.
type Entry struct {
	Left   string    `json:"left"`
	Op     Operator  `json:"op"`
	Right  string    `json:"right"`
	Result string    `json:"result"`
	At     time.Time `json:"at"`
}

// String renders the entry in display form, e.g. "7 + 3 = 10".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s", e.Left, e.Op, e.Right, e.Result)
}

// History is a bounded, most-recent-first log of completed
// calculations. Adding beyond the cap evicts the oldest entry.
type History struct {
	limit   int
	entries []Entry
}

func newHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

func (h *History) add(e Entry) {
	h.entries = append([]Entry{e}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }

// Limit returns the maximum number of retained entries.
func (h *History) Limit() int { return h.limit }

// Entries returns a copy of the log, most recent first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Strings returns the display form of every entry, most recent first.
func (h *History) Strings() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.String()
	}
	return out
}

// Clear drops all entries.
func (h *History) Clear() { h.entries = nil }
