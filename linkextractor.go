package sitemapper

// LinkExtractor turns a page body into the raw link strings it contains.
type LinkExtractor interface {
	// ExtractLinks returns href values in document order. Results may
	// contain duplicates, relative references, fragments or non-HTTP
	// schemes; callers canonicalize them with ResolveURL.
	ExtractLinks(html string) ([]string, error)
}
