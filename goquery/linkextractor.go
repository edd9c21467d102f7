// Package goquery extracts links from HTML documents using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitemapper"
)

var _ sitemapper.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts anchor hrefs by parsing the whole document into a
// tree and selecting every a[href].
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns the href of every anchor in document order. Values
// are trimmed of surrounding whitespace; empty hrefs are skipped.
// Duplicates are kept so the caller sees the page exactly as written.
func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitemapper.Errorf(sitemapper.EINVALID, "failed to parse HTML: %v", err)
	}

	links := []string{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		links = append(links, href)
	})
	return links, nil
}
