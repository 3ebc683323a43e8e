package crawl_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sitewalk/sitewalk/crawl"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Claim_wins_once_per_key(t *testing.T) {
	t.Parallel()

	r := crawl.NewRegistry()

	assert.True(t, r.Claim("https://example.com/a"), "first claim should win")
	assert.False(t, r.Claim("https://example.com/a"), "second claim should lose")
	assert.True(t, r.Claim("https://example.com/b"), "distinct key should win")
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_Claim_exactly_one_winner_under_concurrency(t *testing.T) {
	t.Parallel()

	r := crawl.NewRegistry()

	const claimers = 50
	var wins atomic.Int64
	var start, done sync.WaitGroup

	start.Add(1)
	done.Add(claimers)
	for i := 0; i < claimers; i++ {
		go func() {
			defer done.Done()
			start.Wait()
			if r.Claim("https://example.com/contested") {
				wins.Add(1)
			}
		}()
	}
	start.Done()
	done.Wait()

	assert.Equal(t, int64(1), wins.Load(), "exactly one concurrent claim should win")
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Seen_reports_claimed_keys(t *testing.T) {
	t.Parallel()

	r := crawl.NewRegistry()

	assert.False(t, r.Seen("https://example.com/a"))
	r.Claim("https://example.com/a")
	assert.True(t, r.Seen("https://example.com/a"))
	assert.False(t, r.Seen("https://example.com/b"))
}

func TestRegistry_concurrent_distinct_keys(t *testing.T) {
	t.Parallel()

	r := crawl.NewRegistry()

	const goroutines = 10
	const keysPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < keysPerGoroutine; j++ {
				assert.True(t, r.Claim(fmt.Sprintf("https://example.com/%d/%d", id, j)))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, goroutines*keysPerGoroutine, r.Len())
}
