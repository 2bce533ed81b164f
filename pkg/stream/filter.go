package stream

import "strings"

// Filter consumes raw fragments from the completion backend and emits
// only the text after the closing reasoning delimiter. Fragment
// boundaries are arbitrary: the delimiter may arrive split across two
// fragments, so the search always runs over the whole accumulated
// buffer, never just the newest fragment.
//
// A Filter belongs to exactly one in-flight request and is not safe for
// concurrent use.
type Filter struct {
	delimiter   string
	passthrough bool
	pending     string
}

// NewFilter creates a filter that discards everything up to and
// including the first occurrence of delimiter.
func NewFilter(delimiter string) *Filter {
	return &Filter{delimiter: delimiter}
}

// Feed advances the state machine with one incoming fragment and
// reports the fragment to emit, if any.
func (f *Filter) Feed(fragment string) (string, bool) {
	f.pending += fragment

	if f.passthrough {
		if f.pending == "" {
			return "", false
		}
		out := f.pending
		f.pending = ""
		return out, true
	}

	idx := strings.Index(f.pending, f.delimiter)
	if idx < 0 {
		// Still inside the reasoning segment. Nothing buffered here is
		// ever surfaced; it is discarded once the delimiter shows up.
		return "", false
	}

	// Tail is preserved byte-for-byte, leading whitespace included.
	tail := f.pending[idx+len(f.delimiter):]
	f.passthrough = true
	f.pending = ""

	if tail == "" {
		return "", false
	}
	return tail, true
}

// Passthrough reports whether the delimiter has been seen. A stream that
// ends while this is still false produced no visible output at all.
func (f *Filter) Passthrough() bool {
	return f.passthrough
}
