package mock

import (
	"context"

	"github.com/sitewalk/sitewalk"
)

var _ sitewalk.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitewalk.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*sitewalk.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitewalk.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
