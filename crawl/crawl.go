// Package crawl implements the breadth-first crawl engine. A single
// coordinator owns the frontier and drives depth-level progression; within
// each level it fans entries out across a bounded worker pool and joins on
// the whole batch before advancing, so all depth-d work completes before
// any depth-(d+1) work is dispatched.
package crawl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sitewalk/sitewalk"
	"golang.org/x/sync/errgroup"
)

// Defaults for crawl configuration.
const (
	DefaultWorkers      = 10
	DefaultMaxDepth     = 3
	DefaultFetchTimeout = 10 * time.Second
)

// Crawler walks a host breadth-first from a seed URL.
type Crawler struct {
	Fetcher   sitewalk.Fetcher
	Extractor sitewalk.LinkExtractor

	// Workers bounds the number of fetches in flight. Defaults to
	// DefaultWorkers if zero or negative.
	Workers int

	// MaxDepth is the inclusive link-depth bound; the seed is depth 0.
	// Zero means only the seed is visited.
	MaxDepth int

	// Timeout applies per fetch. Defaults to DefaultFetchTimeout.
	Timeout time.Duration

	// MaxPages caps the total number of URLs dispatched to workers.
	// Zero means unlimited.
	MaxPages int

	// Logger receives debug-level crawl events. Optional.
	Logger *slog.Logger

	// Progress is called as URLs are fetched. Optional.
	Progress ProgressFunc
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressFetched ProgressType = iota
	ProgressFailed
)

// ProgressEvent reports one URL's outcome as it happens.
type ProgressEvent struct {
	Type   ProgressType
	URL    string
	Status int
	Depth  int
	Err    error
}

// ProgressFunc is a callback for streaming crawl progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of one crawl.
type Result struct {
	// SessionID identifies the crawl in logs.
	SessionID string

	// Seed is the URL the crawl started from.
	Seed string

	// BaseHost is the host discovered URLs were matched against.
	BaseHost string

	// Records are the discoveries, sorted by (path, status).
	Records []sitewalk.Record

	// Claimed is the number of distinct URLs claimed for processing.
	Claimed int

	// Interrupted is true when the crawl stopped on cancellation and
	// Records is a best-effort partial result.
	Interrupted bool
}

// Crawl walks the seed's host breadth-first and returns the discovered
// paths. A single URL's fetch failure never aborts the crawl; the only
// early exit is cancellation of ctx, which stops dispatching new work and
// returns the ledger's current snapshot with a nil error.
func (c *Crawler) Crawl(ctx context.Context, seedURL string) (*Result, error) {
	baseHost, err := sitewalk.BaseHost(seedURL)
	if err != nil {
		return nil, err
	}

	session := shortID()
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("session", session, "host", baseHost)

	registry := NewRegistry()
	ledger := NewLedger()
	frontier := NewFrontier()
	frontier.Push(seedURL, 0)

	dispatched := 0
	interrupted := false

	for {
		if ctx.Err() != nil {
			interrupted = true
			break
		}

		batch, depth, ok := frontier.PopLevel()
		if !ok {
			break
		}
		if depth > c.MaxDepth {
			// Depth bound is a hard cutoff; the batch is discarded.
			break
		}
		if c.MaxPages > 0 {
			if dispatched >= c.MaxPages {
				break
			}
			if rest := c.MaxPages - dispatched; len(batch) > rest {
				batch = batch[:rest]
			}
		}
		dispatched += len(batch)

		logger.Debug("dispatching level", "depth", depth, "batch", len(batch))
		links := c.runLevel(ctx, batch, registry, ledger, baseHost, logger)

		for _, link := range links {
			// Seen is a cheap pre-filter to keep the frontier small;
			// Claim at dispatch time remains the authoritative check.
			if registry.Seen(sitewalk.Normalize(link)) {
				continue
			}
			if !sitewalk.SameDomain(link, baseHost) {
				continue
			}
			frontier.Push(link, depth+1)
		}
	}

	logger.Debug("crawl finished", "claimed", registry.Len(), "records", ledger.Len(), "interrupted", interrupted)

	return &Result{
		SessionID:   session,
		Seed:        seedURL,
		BaseHost:    baseHost,
		Records:     ledger.Snapshot(),
		Claimed:     registry.Len(),
		Interrupted: interrupted,
	}, nil
}

// runLevel dispatches one depth-level batch across the worker pool, blocks
// until every worker completes, and returns the union of discovered links.
func (c *Crawler) runLevel(ctx context.Context, batch []Entry, registry *Registry, ledger *Ledger, baseHost string, logger *slog.Logger) []string {
	workers := c.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	resultCh := make(chan []string, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, entry := range batch {
		entry := entry
		g.Go(func() error {
			resultCh <- c.processEntry(gctx, entry, registry, ledger, baseHost, logger)
			return nil
		})
	}
	_ = g.Wait()
	close(resultCh)

	var links []string
	for set := range resultCh {
		links = append(links, set...)
	}
	return links
}

// processEntry handles one frontier entry: claim, fetch, record, extract.
// It returns the links discovered on the page, or nil when the entry lost
// its claim, was out-of-domain, or failed to fetch.
func (c *Crawler) processEntry(ctx context.Context, entry Entry, registry *Registry, ledger *Ledger, baseHost string, logger *slog.Logger) []string {
	if !registry.Claim(sitewalk.Normalize(entry.URL)) {
		return nil
	}

	// Out-of-domain URLs are claimed but neither fetched nor recorded;
	// the ledger holds one record per attempted in-domain URL.
	if !sitewalk.SameDomain(entry.URL, baseHost) {
		logger.Debug("skipping out-of-domain url", "url", entry.URL)
		return nil
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	path := sitewalk.Path(entry.URL)

	res, err := c.Fetcher.Fetch(fctx, entry.URL)
	if err != nil {
		if ctx.Err() != nil {
			// Crawl canceled; the in-flight fetch was abandoned, not dead.
			return nil
		}
		ledger.Record(sitewalk.Record{Path: path, Status: sitewalk.StatusNone})
		c.emit(ProgressEvent{Type: ProgressFailed, URL: entry.URL, Depth: entry.Depth, Err: err})
		logger.Debug("fetch failed", "url", entry.URL, "error", err)
		return nil
	}

	ledger.Record(sitewalk.Record{Path: path, Status: res.StatusCode})
	c.emit(ProgressEvent{Type: ProgressFetched, URL: entry.URL, Status: res.StatusCode, Depth: entry.Depth})

	// Links are extracted for any HTTP status; custom error pages still
	// reference real paths.
	links, err := c.Extractor.ExtractLinks(res.Body, entry.URL)
	if err != nil {
		logger.Debug("link extraction failed", "url", entry.URL, "error", err)
		return nil
	}
	return links
}

func (c *Crawler) emit(event ProgressEvent) {
	if c.Progress != nil {
		c.Progress(event)
	}
}

// shortID returns a compact session identifier for log correlation.
func shortID() string {
	return uuid.NewString()[:8]
}
