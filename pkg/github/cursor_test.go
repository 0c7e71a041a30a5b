package github

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type record struct {
	ID    int
	bound bool
}

// pageServer simulates a paginated endpoint: locators are "p0", "p1", ...
func pageServer(pages [][]int) PageFunc[record] {
	return func(ctx context.Context, locator string) ([]*record, string, error) {
		var idx int
		for i := range pages {
			if locator == pageLocator(i) {
				idx = i
			}
		}
		records := make([]*record, 0, len(pages[idx]))
		for _, id := range pages[idx] {
			records = append(records, &record{ID: id})
		}
		next := ""
		if idx+1 < len(pages) {
			next = pageLocator(idx + 1)
		}
		return records, next, nil
	}
}

func pageLocator(i int) string {
	return string(rune('a' + i))
}

func bindAll(page []*record) {
	for _, r := range page {
		r.bound = true
	}
}

func TestCursor(t *testing.T) {
	ctx := context.Background()

	t.Run("yields all records across pages in order", func(t *testing.T) {
		cursor := newCursor(pageServer([][]int{{1, 2}, {3}}), pageLocator(0), bindAll)

		var got []int
		for {
			ok, err := cursor.HasNext(ctx)
			gt.NoError(t, err)
			if !ok {
				break
			}
			r := gt.R1(cursor.Next(ctx)).NoError(t)
			gt.True(t, r.bound)
			got = append(got, r.ID)
		}

		gt.V(t, got).Equal([]int{1, 2, 3})
	})

	t.Run("next after exhaustion fails with iteration done", func(t *testing.T) {
		cursor := newCursor(pageServer([][]int{{1, 2}, {3}}), pageLocator(0), bindAll)

		records := gt.R1(cursor.Collect(ctx)).NoError(t)
		gt.V(t, len(records)).Equal(3)

		_, err := cursor.Next(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrIterationDone))

		// permanently exhausted
		_, err = cursor.Next(ctx)
		gt.True(t, errors.Is(err, types.ErrIterationDone))
	})

	t.Run("empty collection", func(t *testing.T) {
		cursor := newCursor(pageServer([][]int{{}}), pageLocator(0), bindAll)

		ok := gt.R1(cursor.HasNext(ctx)).NoError(t)
		gt.True(t, !ok)

		_, err := cursor.Next(ctx)
		gt.True(t, errors.Is(err, types.ErrIterationDone))
	})

	t.Run("skips empty middle page", func(t *testing.T) {
		cursor := newCursor(pageServer([][]int{{1}, {}, {2}}), pageLocator(0), bindAll)

		var got []int
		for {
			ok, err := cursor.HasNext(ctx)
			gt.NoError(t, err)
			if !ok {
				break
			}
			r := gt.R1(cursor.Next(ctx)).NoError(t)
			got = append(got, r.ID)
		}
		gt.V(t, got).Equal([]int{1, 2})
	})

	t.Run("bind hook runs once per page before records are yielded", func(t *testing.T) {
		var hookCalls int
		cursor := newCursor(pageServer([][]int{{1, 2}, {3}}), pageLocator(0), func(page []*record) {
			hookCalls++
			bindAll(page)
		})

		for {
			ok, err := cursor.HasNext(ctx)
			gt.NoError(t, err)
			if !ok {
				break
			}
			r := gt.R1(cursor.Next(ctx)).NoError(t)
			gt.True(t, r.bound)
		}
		gt.V(t, hookCalls).Equal(2)
	})

	t.Run("fetches lazily, at most one page ahead", func(t *testing.T) {
		var fetches int
		fetch := pageServer([][]int{{1, 2}, {3}})
		counting := func(ctx context.Context, locator string) ([]*record, string, error) {
			fetches++
			return fetch(ctx, locator)
		}

		cursor := newCursor(counting, pageLocator(0), bindAll)
		gt.V(t, fetches).Equal(0)

		gt.R1(cursor.Next(ctx)).NoError(t)
		gt.R1(cursor.Next(ctx)).NoError(t)
		gt.V(t, fetches).Equal(1)

		gt.R1(cursor.Next(ctx)).NoError(t)
		gt.V(t, fetches).Equal(2)
	})

	t.Run("propagates fetch error", func(t *testing.T) {
		wantErr := goerr.New("boom")
		cursor := newCursor(func(ctx context.Context, locator string) ([]*record, string, error) {
			return nil, "", wantErr
		}, pageLocator(0), bindAll)

		_, err := cursor.HasNext(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, wantErr))

		_, err = cursor.Next(ctx)
		gt.True(t, errors.Is(err, wantErr))
	})
}
