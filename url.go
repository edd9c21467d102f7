package sitemapper

import (
	"net/url"
	"path"
	"strings"
)

// wwwPrefix is treated as insignificant when comparing hosts.
const wwwPrefix = "www."

// URL is a canonical, comparable page address.
//
// Scheme is "http" or "https". Host is lowercased and keeps any port and
// "www." prefix exactly as written, since that is the address to fetch.
// Path always starts with "/", has dot segments resolved and carries no
// trailing slash ("/" for the site root). Query strings and fragments are
// never part of a URL: links differing only by them are the same page.
type URL struct {
	Scheme string
	Host   string
	Path   string
}

// DedupKey identifies a page independently of scheme, "www." prefix and
// trailing slashes. Two URLs with equal keys are never fetched twice.
type DedupKey string

// ParseURL validates and canonicalizes an absolute URL such as a crawl seed.
// A scheme-relative URL ("//example.com/a") defaults to http.
// Returns EINVALID if the string is not an http(s) URL with a host.
func ParseURL(raw string) (URL, error) {
	u, err := parseRaw(raw)
	if err != nil {
		return URL{}, err
	}
	if u.Host == "" {
		return URL{}, Errorf(EINVALID, "url %q has no host", raw)
	}
	if u.Scheme == "" {
		u.Scheme = "http"
	}
	return canonicalize(u), nil
}

// ResolveURL canonicalizes a raw link found while crawling root's site.
// A missing scheme or host is taken from root, and relative paths are
// anchored at the site root. The result must be on root's host, ignoring a
// "www." prefix on either side; subdomains are out of scope.
// Returns EINVALID for links that cannot be crawled.
func ResolveURL(raw string, root URL) (URL, error) {
	u, err := parseRaw(raw)
	if err != nil {
		return URL{}, err
	}
	if u.Scheme == "" {
		u.Scheme = root.Scheme
	}
	if u.Host == "" {
		u.Host = root.Host
	}

	resolved := canonicalize(u)
	if !resolved.SameSite(root) {
		return URL{}, Errorf(EINVALID, "url %q is outside %s", raw, root.Host)
	}
	return resolved, nil
}

// parseRaw parses raw and applies the checks shared by ParseURL and ResolveURL.
func parseRaw(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, Errorf(EINVALID, "invalid url %q: %v", raw, err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	switch u.Scheme {
	case "http", "https", "":
	default:
		return nil, Errorf(EINVALID, "unsupported scheme %q in %q", u.Scheme, raw)
	}

	// Trailing slashes are insignificant, so "/" alone is as empty as "".
	if u.Host == "" && strings.TrimRight(u.Path, "/") == "" {
		return nil, Errorf(EINVALID, "url %q has neither host nor path", raw)
	}
	return u, nil
}

func canonicalize(u *url.URL) URL {
	return URL{
		Scheme: u.Scheme,
		Host:   strings.ToLower(u.Host),
		Path:   path.Clean("/" + u.Path),
	}
}

// IsZero reports whether u is the zero URL.
func (u URL) IsZero() bool {
	return u == URL{}
}

// String returns the absolute form of u. Parsing it with ParseURL yields u.
func (u URL) String() string {
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}).String()
}

// DedupKey returns the scheme-independent key used for deduplication:
// the host without "www." followed by "/" and the path without slashes at
// either end.
func (u URL) DedupKey() DedupKey {
	return DedupKey(stripWWW(u.Host) + "/" + strings.Trim(u.Path, "/"))
}

// SameSite reports whether u and other are on the same host, treating a
// "www." prefix as insignificant.
func (u URL) SameSite(other URL) bool {
	return stripWWW(u.Host) == stripWWW(other.Host)
}

// SitemapFileName returns the output file name for a crawl of root's site,
// e.g. "sitemap_example_com.xml".
func SitemapFileName(root URL) string {
	name := strings.NewReplacer(".", "_", ":", "_").Replace(stripWWW(root.Host))
	return "sitemap_" + name + ".xml"
}

func stripWWW(host string) string {
	return strings.TrimPrefix(host, wwwPrefix)
}
