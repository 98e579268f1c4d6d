// Package preview builds the right-pane content for the selected
// entry: directory summaries, text windows with syntax highlighting,
// half-block image rendering, and asynchronously extracted PDF text.
package preview

import "sync"

// State is the lifecycle of one asynchronously produced preview.
// A path absent from the cache is the not-loaded state.
type State interface {
	isState()
}

// Loading marks a path claimed by a background worker.
type Loading struct{}

// Loaded carries the extracted text lines.
type Loaded struct {
	Lines []string
}

// Failed carries a human-readable extraction failure.
type Failed struct {
	Message string
}

func (Loading) isState() {}
func (Loaded) isState()  {}
func (Failed) isState()  {}

// Cache holds per-path async preview states and per-path scroll
// positions. Scroll positions live in their own map so cache
// invalidation never resets how far the user had scrolled.
type Cache struct {
	mu     sync.Mutex
	states map[string]State
	scroll map[string]int
}

func NewCache() *Cache {
	return &Cache{
		states: make(map[string]State),
		scroll: make(map[string]int),
	}
}

// Get returns the current state for path, or (nil, false) when the
// path has never been requested.
func (c *Cache) Get(path string) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.states[path]
	return s, ok
}

// ClaimOrGet marks path Loading when it has no state yet. The check
// and the mark happen under one lock acquisition so two callers can
// never both win the claim. Returns the state after the call and
// whether the caller won.
func (c *Cache) ClaimOrGet(path string) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.states[path]; ok {
		return s, false
	}
	c.states[path] = Loading{}
	return Loading{}, true
}

// Put stores the terminal state for path.
func (c *Cache) Put(path string, s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[path] = s
}

// Invalidate forgets the state for path so the next request reloads
// it. The scroll position survives.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.states, path)
}

// Scroll returns the saved scroll offset for path, zero by default.
func (c *Cache) Scroll(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scroll[path]
}

// SetScroll saves the scroll offset for path. Negative values clamp
// to zero.
func (c *Cache) SetScroll(path string, offset int) {
	if offset < 0 {
		offset = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scroll[path] = offset
}
