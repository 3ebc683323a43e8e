package mock

import "github.com/sitewalk/sitewalk"

var _ sitewalk.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of sitewalk.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
