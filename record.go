package sitewalk

import (
	"sort"
	"strconv"
)

// StatusNone marks a record whose fetch produced no HTTP response
// (network error, timeout, unreachable host).
const StatusNone = 0

// Record is one discovery: a path on the crawled host and the HTTP status
// its fetch returned. One record exists per distinct URL claimed for
// processing, regardless of fetch outcome. The same path may appear more
// than once when distinct query strings normalize to distinct keys.
type Record struct {
	Path   string
	Status int
}

// OK reports whether the record's status indicates success (2xx).
func (r Record) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// StatusLabel renders the status for display: the numeric code, or "ERR"
// when no response was received.
func (r Record) StatusLabel() string {
	if r.Status == StatusNone {
		return "ERR"
	}
	return strconv.Itoa(r.Status)
}

// SortRecords orders records by (path, status) ascending, the order used
// for the final report and file output.
func SortRecords(recs []Record) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Path != recs[j].Path {
			return recs[i].Path < recs[j].Path
		}
		return recs[i].Status < recs[j].Status
	})
}
