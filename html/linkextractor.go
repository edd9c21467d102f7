// Package html extracts links from HTML documents with the streaming
// tokenizer from golang.org/x/net/html.
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/sitemapper"
	"golang.org/x/net/html"
)

var _ sitemapper.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts anchor hrefs in a single pass over the token
// stream without building a document tree. Malformed markup is tolerated
// the same way the tokenizer tolerates it.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns the href of every anchor in document order. Values
// are trimmed of surrounding whitespace; empty hrefs are skipped.
func (e *LinkExtractor) ExtractLinks(doc string) ([]string, error) {
	z := html.NewTokenizer(strings.NewReader(doc))

	links := []string{}
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, sitemapper.Errorf(sitemapper.EINVALID, "failed to tokenize HTML: %v", err)
			}
			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}
			if href, ok := hrefAttr(z); ok {
				links = append(links, href)
			}
		}
	}
}

// hrefAttr returns the first non-empty href attribute of the current tag.
func hrefAttr(z *html.Tokenizer) (string, bool) {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			href := strings.TrimSpace(string(val))
			return href, href != ""
		}
		if !more {
			return "", false
		}
	}
}
