package crawl

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Registry is the visited set: the single source of truth for whether a
// normalized URL has been claimed for processing. It is safe for concurrent
// use by multiple goroutines and grows monotonically; a claimed key is
// never released.
//
// Keys are stored as xxhash64 digests of the normalized URL, which bounds
// memory per entry regardless of URL length.
type Registry struct {
	mu      sync.Mutex
	claimed map[uint64]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		claimed: make(map[uint64]struct{}),
	}
}

// Claim atomically inserts the key if absent. It returns true if this call
// performed the insertion, meaning the caller won exclusive right to
// process the URL; false if another caller already claimed it. Under N
// concurrent calls for the same key, exactly one returns true.
func (r *Registry) Claim(key string) bool {
	h := xxhash.Sum64String(key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.claimed[h]; ok {
		return false
	}
	r.claimed[h] = struct{}{}
	return true
}

// Seen reports whether the key has been claimed. This is a cheap
// pre-filter for frontier admission; Claim remains the authoritative check
// at dispatch time.
func (r *Registry) Seen(key string) bool {
	h := xxhash.Sum64String(key)

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.claimed[h]
	return ok
}

// Len returns the number of claimed keys.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.claimed)
}
