package github

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestKeyedCache(t *testing.T) {
	t.Run("second get returns the identical instance without fetch", func(t *testing.T) {
		cache := newKeyedCache[string, *record]()
		var fetches int

		first := gt.R1(cache.getOrFetch("k", func() (*record, error) {
			fetches++
			return &record{ID: 1}, nil
		})).NoError(t)

		second := gt.R1(cache.getOrFetch("k", func() (*record, error) {
			fetches++
			return &record{ID: 2}, nil
		})).NoError(t)

		gt.V(t, fetches).Equal(1)
		gt.True(t, first == second)
	})

	t.Run("fetch error is not cached", func(t *testing.T) {
		cache := newKeyedCache[string, *record]()

		_, err := cache.getOrFetch("k", func() (*record, error) {
			return nil, goerr.New("boom")
		})
		gt.Error(t, err)

		got := gt.R1(cache.getOrFetch("k", func() (*record, error) {
			return &record{ID: 7}, nil
		})).NoError(t)
		gt.V(t, got.ID).Equal(7)
	})

	t.Run("putIfAbsent keeps the first instance canonical", func(t *testing.T) {
		cache := newKeyedCache[int, *record]()

		first := cache.putIfAbsent(1, &record{ID: 1})
		second := cache.putIfAbsent(1, &record{ID: 1})
		gt.True(t, first == second)

		cached := gt.R1(cache.getOrFetch(1, func() (*record, error) {
			t.Fatal("fetch must not run for a cached key")
			return nil, nil
		})).NoError(t)
		gt.True(t, cached == first)
	})
}
