package internal

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/corvess/go-httpx/internal/transport"
)

// mountPattern is one of "all://", "scheme://" or "scheme://host".
// Scheme and host comparisons are case-insensitive.
type mountPattern struct {
	raw    string
	scheme string // "" matches every scheme
	host   string // "" matches every host
}

func parseMountPattern(raw string) (mountPattern, error) {
	scheme, host, ok := strings.Cut(raw, "://")
	if !ok || scheme == "" {
		return mountPattern{}, fmt.Errorf("httpx: malformed mount pattern %q", raw)
	}
	p := mountPattern{raw: raw, scheme: strings.ToLower(scheme), host: strings.ToLower(host)}
	if p.scheme == "all" {
		p.scheme = ""
	}
	return p, nil
}

func (p mountPattern) matches(u *url.URL) bool {
	if p.scheme != "" && p.scheme != u.Scheme {
		return false
	}
	return p.host == "" || p.host == u.Hostname()
}

// priority orders patterns most-specific-first: scheme+host beats
// bare scheme beats "all://"; longer hosts are tried before shorter
// ones so overlapping host patterns resolve to the closest match.
func (p mountPattern) priority() (int, int) {
	switch {
	case p.host != "":
		return 0, -len(p.host)
	case p.scheme != "":
		return 1, 0
	default:
		return 2, 0
	}
}

type mountEntry struct {
	pattern mountPattern
	tr      transport.Transport
}

// mountTable resolves URLs to transports. Resolution is pure: it only
// selects, it never opens connections.
type mountTable struct {
	entries []mountEntry
}

func newMountTable(mounts map[string]transport.Transport) (mountTable, error) {
	t := mountTable{}
	for raw, tr := range mounts {
		p, err := parseMountPattern(raw)
		if err != nil {
			return t, err
		}
		t.entries = append(t.entries, mountEntry{pattern: p, tr: tr})
	}
	sort.SliceStable(t.entries, func(i, j int) bool {
		pi, li := t.entries[i].pattern.priority()
		pj, lj := t.entries[j].pattern.priority()
		if pi != pj {
			return pi < pj
		}
		if li != lj {
			return li < lj
		}
		return t.entries[i].pattern.raw < t.entries[j].pattern.raw
	})
	return t, nil
}

// resolve returns the transport mounted for u, or nil when no pattern
// matches and the client's default transport should take over.
func (t mountTable) resolve(u *url.URL) transport.Transport {
	for _, e := range t.entries {
		if e.pattern.matches(u) {
			return e.tr
		}
	}
	return nil
}
