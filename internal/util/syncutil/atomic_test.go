package syncutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtomic(t *testing.T) {
	t.Run("LoadEmpty", func(t *testing.T) {
		a := &Atomic[string]{}
		assert.Equal(t, "", a.Load())
	})

	t.Run("NewAtomic", func(t *testing.T) {
		a := NewAtomic(42)
		assert.Equal(t, 42, a.Load())
	})

	t.Run("StoreAndLoad_String", func(t *testing.T) {
		a := &Atomic[string]{}
		a.Store("test value")
		assert.Equal(t, "test value", a.Load())
	})

	t.Run("StoreAndLoad_Time", func(t *testing.T) {
		now := time.Now()
		a := &Atomic[time.Time]{}
		a.Store(now)
		assert.True(t, now.Equal(a.Load()))
	})

	t.Run("Swap", func(t *testing.T) {
		a := NewAtomic("old")
		prev := a.Swap("new")
		assert.Equal(t, "old", prev)
		assert.Equal(t, "new", a.Load())
	})

	t.Run("SwapEmpty", func(t *testing.T) {
		a := &Atomic[int]{}
		prev := a.Swap(7)
		assert.Equal(t, 0, prev)
		assert.Equal(t, 7, a.Load())
	})

	t.Run("ConcurrentStores", func(t *testing.T) {
		a := &Atomic[int]{}

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func(v int) {
				defer wg.Done()
				a.Store(v)
			}(i)
		}
		wg.Wait()

		val := a.Load()
		assert.GreaterOrEqual(t, val, 0)
		assert.Less(t, val, 100)
	})
}
