package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_PutGet(t *testing.T) {
	c := New[string](time.Minute)
	c.Put(Key("goa"), "sunny")

	v, ok := c.Get(Key("goa"))
	assert.True(t, ok)
	assert.Equal(t, "sunny", v)
}

func TestCache_MissReturnsZeroValue(t *testing.T) {
	c := New[int](time.Minute)
	v, ok := c.Get(Key("absent"))
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestCache_ExpiredEntryEvictedOnGet(t *testing.T) {
	now := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	c := NewWithClock[string](time.Minute, func() time.Time { return now })

	c.Put(Key("goa"), "sunny")
	now = now.Add(2 * time.Minute)

	_, ok := c.Get(Key("goa"))
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_PutSweepsExpired(t *testing.T) {
	now := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	c := NewWithClock[string](time.Minute, func() time.Time { return now })

	c.Put(Key("a"), "1")
	c.Put(Key("b"), "2")
	now = now.Add(2 * time.Minute)
	c.Put(Key("c"), "3")

	assert.Equal(t, 1, c.Len())
}

func TestCache_FreshEntrySurvives(t *testing.T) {
	now := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	c := NewWithClock[string](time.Minute, func() time.Time { return now })

	c.Put(Key("goa"), "sunny")
	now = now.Add(30 * time.Second)

	v, ok := c.Get(Key("goa"))
	assert.True(t, ok)
	assert.Equal(t, "sunny", v)
}

func TestKey_StableAndSeparatorAware(t *testing.T) {
	assert.Equal(t, Key("goa", "weather"), Key("goa", "weather"))
	assert.NotEqual(t, Key("goa", "weather"), Key("goaweather"))
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}
