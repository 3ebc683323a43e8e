package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sitewalk/sitewalk"
)

const bannerWidth = 60

// printBanner prints the crawl header before any pages are fetched.
func printBanner(w io.Writer, seedURL, baseHost string, maxDepth int) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "Starting crawl: %s\n", seedURL)
	fmt.Fprintf(w, "Base domain: %s\n", baseHost)
	fmt.Fprintf(w, "Max depth: %d\n", maxDepth)
	fmt.Fprintf(w, "%s\n\n", rule)
}

// printReport prints the sorted discovery report. Records must already be
// sorted by (path, status).
func printReport(w io.Writer, records []sitewalk.Record) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "DISCOVERED PATHS (%d total)\n", len(records))
	fmt.Fprintf(w, "%s\n\n", rule)

	for _, rec := range records {
		indicator := "✗"
		if rec.OK() {
			indicator = "✓"
		}
		fmt.Fprintf(w, "  %s [%s] %s\n", indicator, rec.StatusLabel(), rec.Path)
	}
}

// writeRecords writes one tab-separated "status\tpath" line per record to
// the named file. Records must already be sorted by (path, status).
func writeRecords(path string, records []sitewalk.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	for _, rec := range records {
		if _, err := fmt.Fprintf(f, "%s\t%s\n", rec.StatusLabel(), rec.Path); err != nil {
			f.Close()
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	return f.Close()
}
