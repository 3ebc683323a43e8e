package sitewalk

import (
	"net/url"
	"strings"
)

// Normalize canonicalizes a URL into a deduplication key:
// scheme://host followed by the path with a single trailing slash stripped,
// followed by "?query" when a query string is present. Fragments are
// dropped, so URLs differing only by trailing slash or fragment normalize
// identically. The key is used exclusively for deduplication, never for
// display.
//
// There is no error path: unparseable input is returned as-is. Whether the
// URL is actually fetchable is the Fetcher's concern.
func Normalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	key := u.Scheme + "://" + u.Host + strings.TrimSuffix(u.Path, "/")
	if u.RawQuery != "" {
		key += "?" + u.RawQuery
	}
	return key
}

// SameDomain reports whether the URL's host is baseHost itself or a
// subdomain of it. Unparseable URLs are never in-domain.
func SameDomain(raw, baseHost string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Host == baseHost || strings.HasSuffix(u.Host, "."+baseHost)
}

// BaseHost extracts the host a crawl matches discovered URLs against.
// The URL must be absolute and carry a host.
func BaseHost(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid seed URL %q: %v", raw, err)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "seed URL %q has no host", raw)
	}
	return u.Host, nil
}

// Path extracts the path component of a URL for reporting.
// The empty path (a bare host URL) reports as "/".
func Path(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
