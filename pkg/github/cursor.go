package github

import (
	"context"
	"errors"

	"github.com/m-mizutani/ghrepo/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PageFunc fetches one page of records from locator and returns the locator
// of the next page. An empty next locator means the sequence is exhausted.
type PageFunc[T any] func(ctx context.Context, locator string) (records []*T, next string, err error)

// Cursor walks a paginated collection lazily, fetching at most one page ahead
// of consumption. It is forward-only and not restartable; call the owning
// list method again to iterate from the first page.
//
// A bind hook runs exactly once per fetched page, before any record of that
// page is yielded, so no record leaves the cursor without its owning context.
type Cursor[T any] struct {
	fetch    PageFunc[T]
	bindPage func([]*T)
	locator  string
	buf      []*T
}

func newCursor[T any](fetch PageFunc[T], first string, bindPage func([]*T)) *Cursor[T] {
	return &Cursor[T]{
		fetch:    fetch,
		bindPage: bindPage,
		locator:  first,
	}
}

// HasNext reports whether another record is available. When the buffer is
// empty but a next-page locator exists, it fetches until a non-empty page
// arrives or the server stops returning a next page. Records are never
// reported available without having been retrieved.
func (x *Cursor[T]) HasNext(ctx context.Context) (bool, error) {
	for len(x.buf) == 0 && x.locator != "" {
		if err := x.fill(ctx); err != nil {
			return false, err
		}
	}
	return len(x.buf) > 0, nil
}

// Next returns the next record in server order. Once the sequence is
// exhausted it returns types.ErrIterationDone, permanently.
func (x *Cursor[T]) Next(ctx context.Context) (*T, error) {
	ok, err := x.HasNext(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, goerr.Wrap(types.ErrIterationDone, "cursor is exhausted")
	}

	record := x.buf[0]
	x.buf = x.buf[1:]
	return record, nil
}

// Collect drains the remaining records into a slice.
func (x *Cursor[T]) Collect(ctx context.Context) ([]*T, error) {
	var records []*T
	for {
		record, err := x.Next(ctx)
		if err != nil {
			if errors.Is(err, types.ErrIterationDone) {
				return records, nil
			}
			return nil, err
		}
		records = append(records, record)
	}
}

// repoPageFunc adapts the transport's page fetch to a typed PageFunc scoped
// to one repository. Methods cannot carry type parameters, hence the free
// function.
func repoPageFunc[T any](repo *Repository) PageFunc[T] {
	return func(ctx context.Context, locator string) ([]*T, string, error) {
		if err := repo.requireBound(); err != nil {
			return nil, "", err
		}
		var page []*T
		next, err := repo.t.FetchPage(ctx, locator, &page)
		if err != nil {
			return nil, "", err
		}
		return page, next, nil
	}
}

func (x *Cursor[T]) fill(ctx context.Context) error {
	records, next, err := x.fetch(ctx, x.locator)
	if err != nil {
		return err
	}
	x.locator = next
	if x.bindPage != nil {
		x.bindPage(records)
	}
	x.buf = records
	return nil
}
