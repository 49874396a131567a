package model

import "strings"

// HeaderPair is a single name/value entry, byte-exact as supplied.
type HeaderPair struct {
	Name  string
	Value string
}

// Headers is an ordered sequence of name/value pairs. Unlike
// [net/http.Header] it preserves insertion order and the raw casing of
// names, and it allows duplicate names. Lookups are case-insensitive.
type Headers struct {
	pairs []HeaderPair
}

// NewHeaders builds a Headers from pairs in the given order.
func NewHeaders(pairs ...HeaderPair) *Headers {
	return &Headers{pairs: pairs}
}

// Add appends a pair, keeping any existing entries with the same name.
func (h *Headers) Add(name, value string) {
	h.pairs = append(h.pairs, HeaderPair{name, value})
}

// Set replaces the first entry matching name (case-insensitive) and
// drops the remaining duplicates. If no entry matches, the pair is
// appended.
func (h *Headers) Set(name, value string) {
	out := h.pairs[:0]
	replaced := false
	for _, p := range h.pairs {
		if !strings.EqualFold(p.Name, name) {
			out = append(out, p)
			continue
		}
		if !replaced {
			out = append(out, HeaderPair{p.Name, value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, HeaderPair{name, value})
	}
	h.pairs = out
}

// SetDefault appends the pair only when no entry with the same name
// exists yet.
func (h *Headers) SetDefault(name, value string) {
	if _, ok := h.Lookup(name); !ok {
		h.Add(name, value)
	}
}

// Get returns the first value for name, or "".
func (h *Headers) Get(name string) string {
	v, _ := h.Lookup(name)
	return v
}

// Lookup returns the first value for name and whether it was present.
func (h *Headers) Lookup(name string) (string, bool) {
	for _, p := range h.pairs {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// Values returns every value recorded under name, in insertion order.
func (h *Headers) Values(name string) []string {
	var vv []string
	for _, p := range h.pairs {
		if strings.EqualFold(p.Name, name) {
			vv = append(vv, p.Value)
		}
	}
	return vv
}

// Del removes every entry matching name.
func (h *Headers) Del(name string) {
	out := h.pairs[:0]
	for _, p := range h.pairs {
		if !strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	h.pairs = out
}

// Raw exposes the exact pairs in order, for diagnostics and for
// transports that write them to the wire verbatim.
func (h *Headers) Raw() []HeaderPair {
	return h.pairs
}

func (h *Headers) Len() int { return len(h.pairs) }

func (h *Headers) Clone() *Headers {
	if h == nil {
		return &Headers{}
	}
	return &Headers{pairs: append([]HeaderPair(nil), h.pairs...)}
}
