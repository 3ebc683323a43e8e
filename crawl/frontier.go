package crawl

import "github.com/sitewalk/sitewalk"

// Entry is one unit of pending work: a URL and its link distance from the
// seed. Entries are created when a discovered link survives filtering,
// consumed exactly once by a worker, and never mutated.
type Entry struct {
	URL   string
	Depth int
}

// Frontier is the queue of pending entries driving breadth-first
// traversal. It is owned solely by the crawl coordinator and is not safe
// for concurrent use; workers never touch it directly.
//
// Entries are pushed with nondecreasing depth by construction (the
// coordinator only enqueues at currentDepth+1), so the queue is always
// grouped by depth level.
type Frontier struct {
	entries []Entry
	seen    map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: make(map[string]struct{}),
	}
}

// Push adds a URL at the given depth. Returns false if a URL with the same
// normalized key was already pushed; each key enters the frontier at most
// once for the lifetime of a crawl.
func (f *Frontier) Push(url string, depth int) bool {
	key := sitewalk.Normalize(url)
	if _, ok := f.seen[key]; ok {
		return false
	}
	f.seen[key] = struct{}{}
	f.entries = append(f.entries, Entry{URL: url, Depth: depth})
	return true
}

// PopLevel removes and returns every entry at the minimum depth present,
// along with that depth. The bool result is false if the frontier is
// empty.
func (f *Frontier) PopLevel() ([]Entry, int, bool) {
	if len(f.entries) == 0 {
		return nil, 0, false
	}

	depth := f.entries[0].Depth
	n := 0
	for n < len(f.entries) && f.entries[n].Depth == depth {
		n++
	}

	batch := f.entries[:n:n]
	f.entries = f.entries[n:]
	return batch, depth, true
}

// Len returns the number of pending entries.
func (f *Frontier) Len() int {
	return len(f.entries)
}
