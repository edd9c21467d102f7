package mock

import "github.com/fwojciec/sitemapper"

var _ sitemapper.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of sitemapper.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	return e.ExtractLinksFn(html)
}
