package preview

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStates(t *testing.T) {
	c := NewCache()

	_, ok := c.Get("/a.pdf")
	assert.False(t, ok, "unseen path has no state")

	state, claimed := c.ClaimOrGet("/a.pdf")
	assert.True(t, claimed)
	assert.IsType(t, Loading{}, state)

	state, claimed = c.ClaimOrGet("/a.pdf")
	assert.False(t, claimed, "second claim must lose")
	assert.IsType(t, Loading{}, state)

	c.Put("/a.pdf", Loaded{Lines: []string{"x"}})
	got, ok := c.Get("/a.pdf")
	require.True(t, ok)
	assert.Equal(t, Loaded{Lines: []string{"x"}}, got)
}

func TestCacheClaimIsExclusiveUnderConcurrency(t *testing.T) {
	c := NewCache()
	const goroutines = 32

	var wg sync.WaitGroup
	wins := make(chan struct{}, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, claimed := c.ClaimOrGet("/doc.pdf"); claimed {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one claimant may win")
}

func TestCacheScrollSurvivesInvalidation(t *testing.T) {
	c := NewCache()
	c.Put("/f.txt", Loaded{})
	c.SetScroll("/f.txt", 42)

	c.Invalidate("/f.txt")

	_, ok := c.Get("/f.txt")
	assert.False(t, ok, "state must be forgotten")
	assert.Equal(t, 42, c.Scroll("/f.txt"), "scroll position must survive")
}

func TestCacheScrollClampsNegative(t *testing.T) {
	c := NewCache()
	c.SetScroll("/f", -5)
	assert.Equal(t, 0, c.Scroll("/f"))
}
