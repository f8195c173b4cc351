// ABOUTME: Tests for the marker carousel cursor
// ABOUTME: Verifies wraparound in both directions and clamping on shrink
package tui

import "testing"

func TestCarouselWrapsForward(t *testing.T) {
	var c Carousel
	c.Reset(3)

	c.Next()
	c.Next()
	if c.Index() != 2 {
		t.Fatalf("expected index 2, got %d", c.Index())
	}
	c.Next()
	if c.Index() != 0 {
		t.Errorf("expected wrap to 0, got %d", c.Index())
	}
}

func TestCarouselWrapsBackward(t *testing.T) {
	var c Carousel
	c.Reset(3)

	c.Prev()
	if c.Index() != 2 {
		t.Errorf("expected wrap to last entry, got %d", c.Index())
	}
}

func TestCarouselSingleEntry(t *testing.T) {
	var c Carousel
	c.Reset(1)

	c.Next()
	c.Prev()
	if c.Index() != 0 {
		t.Errorf("single-entry carousel moved to %d", c.Index())
	}
}

func TestCarouselClampOnShrink(t *testing.T) {
	var c Carousel
	c.Reset(5)
	c.Next()
	c.Next()
	c.Next()
	c.Next() // index 4

	c.Clamp(2)
	if c.Index() != 1 {
		t.Errorf("expected clamp to 1, got %d", c.Index())
	}

	c.Clamp(0)
	if c.Index() != 0 {
		t.Errorf("expected clamp to 0 on empty, got %d", c.Index())
	}

	c.Reset(4)
	c.Next()
	c.Clamp(3)
	if c.Index() != 1 {
		t.Errorf("valid index must survive clamp, got %d", c.Index())
	}
}
