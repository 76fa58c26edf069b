package vahan_test

import (
	"testing"
	"time"

	"github.com/kalyug-papa-bolo/vahan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("returns stored page within TTL", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := vahan.NewCache(5*time.Minute, vahan.WithCacheClock(clock.Now))

		c.Put("DL01AB1234", "<html>page</html>")
		clock.Advance(4 * time.Minute)

		html, ok := c.Get("DL01AB1234")
		require.True(t, ok)
		assert.Equal(t, "<html>page</html>", html)
	})

	t.Run("misses after TTL", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := vahan.NewCache(5*time.Minute, vahan.WithCacheClock(clock.Now))

		c.Put("DL01AB1234", "<html>page</html>")
		clock.Advance(5 * time.Minute)

		_, ok := c.Get("DL01AB1234")
		assert.False(t, ok)
		assert.Zero(t, c.Len(), "stale entry is evicted on read")
	})

	t.Run("keys are canonicalized", func(t *testing.T) {
		t.Parallel()

		c := vahan.NewCache(time.Minute)
		c.Put(" dl01ab1234 ", "<html>page</html>")

		_, ok := c.Get("DL01AB1234")
		assert.True(t, ok)
	})

	t.Run("disabled when TTL is zero", func(t *testing.T) {
		t.Parallel()

		c := vahan.NewCache(0)
		c.Put("DL01AB1234", "<html>page</html>")

		_, ok := c.Get("DL01AB1234")
		assert.False(t, ok)
	})

	t.Run("nil cache is safe", func(t *testing.T) {
		t.Parallel()

		var c *vahan.Cache
		c.Put("DL01AB1234", "x")

		_, ok := c.Get("DL01AB1234")
		assert.False(t, ok)
		assert.Zero(t, c.Len())
	})
}
