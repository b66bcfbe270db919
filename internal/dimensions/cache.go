package dimensions

// Cache memoizes a measurement until it is invalidated. After invalidation
// the last known dimensions are still served if a fresh measurement comes
// back unmeasured, so callers never see a blank frame during a resize.
//
// Cache is not safe for concurrent use; the player only touches it from its
// event loop.
type Cache struct {
	measure func() Dimensions
	last    Dimensions
	valid   bool
}

// NewCache creates a cache around a measuring function
func NewCache(measure func() Dimensions) *Cache {
	return &Cache{measure: measure}
}

// Dimensions returns the cached dimensions, measuring if needed
func (c *Cache) Dimensions() Dimensions {
	if c.valid || c.measure == nil {
		return c.last
	}
	fresh := c.measure()
	if fresh.Measured() {
		c.last = fresh
		c.valid = true
	}
	return c.last
}

// Invalidate marks the cached dimensions as stale
func (c *Cache) Invalidate() {
	c.valid = false
}

// Stale reports whether the next call will try to remeasure
func (c *Cache) Stale() bool {
	return !c.valid
}
