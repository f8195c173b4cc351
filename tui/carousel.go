// ABOUTME: Cursor for paging through the properties sharing one map marker
// ABOUTME: Wraps around at both ends and clamps when the group shrinks
package tui

// Carousel tracks which property of a multi-property marker is showing.
type Carousel struct {
	index int
	size  int
}

// Reset points the carousel at the first of n entries.
func (c *Carousel) Reset(n int) {
	c.index = 0
	c.size = n
}

// Next advances one entry, wrapping from the last back to the first.
func (c *Carousel) Next() {
	if c.size <= 1 {
		return
	}
	c.index = (c.index + 1) % c.size
}

// Prev steps back one entry, wrapping from the first to the last.
func (c *Carousel) Prev() {
	if c.size <= 1 {
		return
	}
	c.index = (c.index - 1 + c.size) % c.size
}

// Clamp adjusts the cursor after the group changed size, keeping the
// position when it is still valid and snapping to the last entry otherwise.
func (c *Carousel) Clamp(n int) {
	c.size = n
	if n == 0 {
		c.index = 0
		return
	}
	if c.index >= n {
		c.index = n - 1
	}
}

// Index returns the current position.
func (c *Carousel) Index() int { return c.index }

// Size returns the number of entries being paged.
func (c *Carousel) Size() int { return c.size }
