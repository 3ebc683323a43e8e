// Package goquery provides a goquery-based implementation of
// sitewalk.LinkExtractor.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitewalk/sitewalk"
)

// tagConfig names a CSS selector and the attribute carrying its reference.
type tagConfig struct {
	selector string
	attr     string
}

// tagConfigs covers every element kind that references a URL: anchors,
// stylesheet/resource links, scripts, images, and form targets.
var tagConfigs = []tagConfig{
	{selector: "a[href]", attr: "href"},
	{selector: "link[href]", attr: "href"},
	{selector: "script[src]", attr: "src"},
	{selector: "img[src]", attr: "src"},
	{selector: "form[action]", attr: "action"},
}

// Ensure Extractor implements sitewalk.LinkExtractor at compile time.
var _ sitewalk.LinkExtractor = (*Extractor)(nil)

// Extractor extracts referenced URLs from HTML pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses HTML and returns the set of absolute URLs referenced
// by anchors, resource links, scripts, images, and forms. Relative URLs
// are resolved against baseURL and fragments are stripped. References with
// non-HTTP schemes (javascript:, mailto:, tel:, data:) or unparseable
// values are dropped silently. The result is deduplicated, in document
// order of first occurrence.
func (e *Extractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitewalk.Errorf(sitewalk.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitewalk.Errorf(sitewalk.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []string

	for _, config := range tagConfigs {
		doc.Find(config.selector).Each(func(_ int, sel *goquery.Selection) {
			ref, exists := sel.Attr(config.attr)
			if !exists || ref == "" {
				return
			}

			if isNonHTTPLink(ref) {
				return
			}

			resolved := resolveURL(base, ref)
			if resolved == "" {
				return
			}

			if _, ok := seen[resolved]; ok {
				return
			}
			seen[resolved] = struct{}{}
			links = append(links, resolved)
		})
	}

	return links, nil
}

// resolveURL resolves a reference against a base URL and strips the
// fragment. Returns empty string for unparseable references and for
// non-HTTP results (a relative "mailto:x" style ref resolves to a
// non-HTTP scheme).
func resolveURL(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// isNonHTTPLink checks if a reference uses a scheme that should be skipped.
func isNonHTTPLink(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(ref, "javascript:") ||
		strings.HasPrefix(ref, "mailto:") ||
		strings.HasPrefix(ref, "tel:") ||
		strings.HasPrefix(ref, "data:")
}
