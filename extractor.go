package sitewalk

// LinkExtractor extracts outbound references from page content.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the set of absolute URLs it
	// references. Relative URLs are resolved against baseURL, fragments
	// are stripped, and references that cannot be resolved to an
	// absolute HTTP URL are dropped silently.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
