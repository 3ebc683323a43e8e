package sitewalk

import "context"

// FetchResult holds the outcome of fetching one URL.
type FetchResult struct {
	// Body is the response body. It is populated for any HTTP response,
	// including error statuses, so links can still be extracted from
	// custom 404 pages and the like.
	Body string

	// StatusCode is the HTTP status of the final response after redirects.
	StatusCode int
}

// Fetcher retrieves pages over HTTP.
type Fetcher interface {
	// Fetch performs a GET request for the URL and returns the response.
	// An error is returned only for transport-level failures (DNS,
	// connect, timeout); an HTTP error status is a valid result.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
