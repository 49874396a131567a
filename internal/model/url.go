package model

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// Merge resolves target against base and returns the URL a request
// should actually be dispatched to.
//
//   - an absolute target (scheme and host of its own) wins outright,
//     base is ignored even when set
//   - a root-relative target ("/x/y") keeps base's scheme and host but
//     replaces its path wholesale
//   - a relative target ("x/y", "../x/y") resolves against base's path
//     segment-wise, collapsing ".." segments
//
// base may be nil, in which case target must be absolute.
func Merge(base *url.URL, target string) (*url.URL, error) {
	ref, err := url.Parse(target)
	if err != nil {
		return nil, &InvalidURLError{URL: target, Reason: err.Error()}
	}
	if ref.Scheme != "" && ref.Host != "" {
		return normalize(ref)
	}
	if ref.Scheme != "" {
		// "http://" and friends: a scheme with nothing behind it
		return nil, &InvalidURLError{URL: target, Reason: "missing host"}
	}
	if base == nil {
		return nil, &InvalidURLError{URL: target, Reason: "relative URL with no base URL configured"}
	}

	// RFC 3986 merging resolves relative references against the base
	// directory, which would drop the last base path segment. The base
	// URL is a prefix, so it always acts as a directory here.
	b := *base
	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
		b.RawPath = ""
	}
	return normalize(b.ResolveReference(ref))
}

func normalize(u *url.URL) (*url.URL, error) {
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme == "" {
		return nil, &InvalidURLError{URL: u.String(), Reason: "missing scheme"}
	}
	host, err := normalizeHost(u.Hostname())
	if err != nil {
		return nil, &InvalidURLError{URL: u.String(), Reason: err.Error()}
	}
	if host == "" {
		return nil, &InvalidURLError{URL: u.String(), Reason: "missing host"}
	}
	if port := u.Port(); port != "" {
		u.Host = host + ":" + port
	} else {
		u.Host = host
	}
	return u, nil
}

// normalizeHost lowercases the host and converts internationalized
// names to their IDNA (punycode) form, the way they go onto the wire.
func normalizeHost(host string) (string, error) {
	ascii := true
	for i := 0; i < len(host); i++ {
		if host[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return strings.ToLower(host), nil
	}
	return idna.Lookup.ToASCII(host)
}
