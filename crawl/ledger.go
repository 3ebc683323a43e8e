package crawl

import (
	"sync"

	"github.com/sitewalk/sitewalk"
)

// Ledger accumulates discovery records for reporting. Appends are safe for
// concurrent use; insertion order is unspecified and the report sorts
// before display. Records are not deduplicated.
type Ledger struct {
	mu      sync.Mutex
	records []sitewalk.Record
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends a discovery record.
func (l *Ledger) Record(rec sitewalk.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Snapshot returns a copy of the records sorted by (path, status).
// It is used for the final report and for the best-effort partial report
// on cancellation.
func (l *Ledger) Snapshot() []sitewalk.Record {
	l.mu.Lock()
	recs := make([]sitewalk.Record, len(l.records))
	copy(recs, l.records)
	l.mu.Unlock()

	sitewalk.SortRecords(recs)
	return recs
}
