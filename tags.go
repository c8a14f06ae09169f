package diagflags

import "sort"

// EnableDebug inserts tag into the set of enabled debug trace tags.
// Enabling a tag that is already enabled has no effect.
func (c *Controller) EnableDebug(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tags == nil {
		c.tags = make(map[string]struct{})
	}
	c.tags[tag] = struct{}{}
}

// DisableDebug removes tag from the set of enabled debug trace tags.
// Disabling a tag that is not enabled is a no-op, not an error.
func (c *Controller) DisableDebug(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.tags, tag)
}

// IsDebugEnabled reports whether tag is currently enabled.
//
// Matching is exact and case-sensitive. This is the hot-path query host code
// uses to decide whether to emit a trace, so it only takes a read lock.
func (c *Controller) IsDebugEnabled(tag string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.tags[tag]

	return ok
}

// DebugTags returns the currently enabled tags, sorted.
func (c *Controller) DebugTags() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tags := make([]string, 0, len(c.tags))
	for tag := range c.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

// ResetDebug discards every enabled tag, as if the controller were freshly
// created. Tags can be enabled again afterwards; no stale entries survive.
//
// It takes the write lock, so it never interleaves with concurrent
// EnableDebug or DisableDebug calls.
func (c *Controller) ResetDebug() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tags = nil
}
