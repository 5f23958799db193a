package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentCache_AddAndLookup(t *testing.T) {
	c := NewContentCache(2)
	c.Add("data/0", 42)

	val, ok := c.Lookup("data/0")
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestContentCache_MissOnUnknownKey(t *testing.T) {
	c := NewContentCache(2)
	_, ok := c.Lookup("data/0")
	assert.False(t, ok)
}

func TestContentCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewContentCache(2)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3) // evicts "a"

	_, ok := c.Lookup("a")
	assert.False(t, ok, "least-recently-used entry should have been evicted")

	_, ok = c.Lookup("b")
	assert.True(t, ok)
	_, ok = c.Lookup("c")
	assert.True(t, ok)
}

func TestContentCache_LookupRefreshesRecency(t *testing.T) {
	c := NewContentCache(2)
	c.Add("a", 1)
	c.Add("b", 2)

	c.Lookup("a") // "a" is now most-recent; "b" is least-recent
	c.Add("c", 3) // should evict "b", not "a"

	_, ok := c.Lookup("b")
	assert.False(t, ok)
	_, ok = c.Lookup("a")
	assert.True(t, ok)
}

func TestContentCache_ZeroLimitNeverCaches(t *testing.T) {
	c := NewContentCache(0)
	c.Add("a", 1)

	_, ok := c.Lookup("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestContentCache_Flush(t *testing.T) {
	c := NewContentCache(2)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Flush()

	assert.Equal(t, 0, c.Size())
	_, ok := c.Lookup("a")
	assert.False(t, ok)
}

func TestContentCache_EvictionSequence(t *testing.T) {
	c := NewContentCache(5)
	for i := 0; i < 5; i++ {
		c.Add(fmt.Sprintf("data/%d", i), i)
	}
	for i := 0; i < 5; i++ {
		_, ok := c.Lookup(fmt.Sprintf("data/%d", i))
		assert.True(t, ok)
	}

	c.Add("data/5", 5)
	_, ok := c.Lookup("data/0")
	assert.False(t, ok, "data/0 should have been evicted as least-recently-used")
	for i := 1; i <= 5; i++ {
		_, hit := c.Lookup(fmt.Sprintf("data/%d", i))
		assert.True(t, hit)
	}

	// Lookup reseats data/1 as most-recent, so the next eviction takes data/2.
	c.Lookup("data/1")
	c.Add("data/6", 6)
	_, ok = c.Lookup("data/2")
	assert.False(t, ok)
	_, ok = c.Lookup("data/1")
	assert.True(t, ok)

	// Re-adding data/3 reseats it, so the next eviction takes data/4.
	c.Add("data/3", 3)
	c.Add("data/7", 7)
	_, ok = c.Lookup("data/4")
	assert.False(t, ok)
	_, ok = c.Lookup("data/3")
	assert.True(t, ok)
	assert.LessOrEqual(t, c.Size(), 5)
}

func TestContentCache_ReaddingExistingKeyDoesNotGrowSize(t *testing.T) {
	c := NewContentCache(2)
	c.Add("a", 1)
	c.Add("a", 2)

	assert.Equal(t, 1, c.Size())
	val, _ := c.Lookup("a")
	assert.Equal(t, 2, val)
}
