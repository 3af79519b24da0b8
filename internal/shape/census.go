package shape

// Census counts live shapes. The factory tracks every shape it hands out and
// the owning container releases them, so Live is the number of shapes that
// are generated and not yet discarded.
//
// A Census is not safe for concurrent use.
type Census struct {
	live   int
	byKind map[string]int
}

// NewCensus returns an empty census.
func NewCensus() *Census {
	return &Census{byKind: make(map[string]int)}
}

// Track records s as live.
func (c *Census) Track(s Shape) {
	c.live++
	if c.byKind == nil {
		c.byKind = make(map[string]int)
	}
	c.byKind[s.Kind()]++
}

// Release records s as discarded. Releasing more shapes than were tracked
// leaves the counters at zero.
func (c *Census) Release(s Shape) {
	if c.live > 0 {
		c.live--
	}
	if c.byKind[s.Kind()] > 0 {
		c.byKind[s.Kind()]--
	}
}

// Live returns the number of tracked, unreleased shapes.
func (c *Census) Live() int {
	return c.live
}

// LiveByKind returns the live count per kind. Kinds with no live shapes are
// omitted.
func (c *Census) LiveByKind() map[string]int {
	out := make(map[string]int, len(c.byKind))
	for k, n := range c.byKind {
		if n > 0 {
			out[k] = n
		}
	}
	return out
}
