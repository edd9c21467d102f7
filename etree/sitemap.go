// Package etree reads and writes sitemap XML documents using beevik/etree.
package etree

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitemapper"
)

// Namespace is the XML namespace of the sitemap protocol.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var _ sitemapper.SitemapEncoder = (*SitemapEncoder)(nil)

// SitemapEncoder writes a <urlset> document with one <url><loc> entry per
// URL, in the order given.
type SitemapEncoder struct {
	// Indent is the number of spaces per nesting level. Zero writes the
	// document on a single line.
	Indent int
}

// NewSitemapEncoder creates a SitemapEncoder that indents with two spaces.
func NewSitemapEncoder() *SitemapEncoder {
	return &SitemapEncoder{Indent: 2}
}

// Encode writes the sitemap for urls to w. Special characters in URLs are
// escaped as XML entities.
func (e *SitemapEncoder) Encode(w io.Writer, urls []string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", Namespace)
	for _, u := range urls {
		urlset.CreateElement("url").CreateElement("loc").SetText(u)
	}

	if e.Indent > 0 {
		doc.Indent(e.Indent)
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing sitemap XML: %w", err)
	}
	return nil
}

// ParseSitemap reads the <loc> values of a <urlset> document in document
// order. A <sitemapindex> yields the locations of its child sitemaps.
func ParseSitemap(r io.Reader) ([]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, sitemapper.Errorf(sitemapper.EINVALID, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, sitemapper.Errorf(sitemapper.EINVALID, "empty sitemap XML")
	}

	child := "url"
	if root.Tag == "sitemapindex" {
		child = "sitemap"
	}

	urls := []string{}
	for _, el := range root.SelectElements(child) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
