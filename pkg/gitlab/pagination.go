package gitlab

import (
	"context"
	"fmt"
)

// PageFetcher fetches a single page of a collection. Implementations build
// the request from the path, the caller's query, and the page descriptor,
// and return the decoded elements in server order.
type PageFetcher[T any] interface {
	FetchPage(ctx context.Context, path string, query *Query, page *PageOptions) ([]T, error)
}

// PageFetcherFunc adapts a function to the PageFetcher interface.
type PageFetcherFunc[T any] func(ctx context.Context, path string, query *Query, page *PageOptions) ([]T, error)

// FetchPage implements PageFetcher.
func (f PageFetcherFunc[T]) FetchPage(ctx context.Context, path string, query *Query, page *PageOptions) ([]T, error) {
	return f(ctx, path, query, page)
}

// normalizePagination resolves a caller-supplied descriptor to a concrete
// starting page and per-page size. The page size is clamped to
// [1, MaxPerPage]: the server truncates oversized pages to MaxPerPage
// without erroring, and walking with an unclamped size would mistake the
// first truncated page for the end of the collection.
func normalizePagination(opts *PageOptions) (page, perPage int) {
	if opts == nil {
		opts = NewPageOptions()
	}

	page = opts.Page
	if page == 0 {
		page = 1
	}

	perPage = opts.PerPage

	switch {
	case perPage == 0, perPage > MaxPerPage:
		perPage = MaxPerPage
	case perPage < 1:
		perPage = 1
	}

	return page, perPage
}

// FetchAllPages walks a paginated collection sequentially and concatenates
// every page, preserving server order. The walk stops when a page comes back
// empty or shorter than the requested page size — the API exposes no
// explicit "has more" signal, so a full page always forces one more request.
// Pages are never fetched in parallel or out of order: concurrent cursor
// advancement over a mutating collection could duplicate or skip elements.
//
// If any page fetch fails the partial accumulator is discarded and the
// error is returned.
func FetchAllPages[T any](ctx context.Context, fetcher PageFetcher[T], path string, query *Query, opts *PageOptions) ([]T, error) {
	page, perPage := normalizePagination(opts)

	var all []T

	for {
		items, err := fetcher.FetchPage(ctx, path, query, &PageOptions{Page: page, PerPage: perPage})
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		all = append(all, items...)

		if len(items) < perPage {
			return all, nil
		}

		page++
	}
}

// PageIterator iterates over the elements of a paginated collection,
// fetching pages lazily as they are consumed.
type PageIterator[T any] struct {
	ctx     context.Context
	fetcher PageFetcher[T]
	path    string
	query   *Query
	page    int
	perPage int

	buffer []T
	index  int
	done   bool
	err    error
}

// NewPageIterator creates an iterator over the collection at path. A nil
// opts starts at the first page with the maximum page size.
func NewPageIterator[T any](ctx context.Context, fetcher PageFetcher[T], path string, query *Query, opts *PageOptions) *PageIterator[T] {
	page, perPage := normalizePagination(opts)

	return &PageIterator[T]{
		ctx:     ctx,
		fetcher: fetcher,
		path:    path,
		query:   query,
		page:    page,
		perPage: perPage,
	}
}

// HasNext reports whether another element is available, fetching the next
// page when the current buffer is exhausted.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.index < len(it.buffer) {
		return true
	}

	if it.done {
		return false
	}

	it.fetchNext()

	return it.err == nil && it.index < len(it.buffer)
}

// Next returns the next element. When the collection is exhausted it
// returns ErrNoMoreItems; a fetch failure is returned as-is.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All consumes the remaining elements into a slice, preserving order.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, item)
	}

	if it.err != nil {
		return nil, it.err
	}

	return all, nil
}

// ForEach applies fn to each remaining element, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return it.err
}

func (it *PageIterator[T]) fetchNext() {
	items, err := it.fetcher.FetchPage(it.ctx, it.path, it.query, &PageOptions{Page: it.page, PerPage: it.perPage})
	if err != nil {
		it.err = fmt.Errorf("fetching page %d: %w", it.page, err)
		it.done = true

		return
	}

	it.buffer = items
	it.index = 0
	it.page++

	// A short or empty page is the end of the collection.
	if len(items) < it.perPage {
		it.done = true
	}
}

// PageResult carries one fetched page or the error that ended the stream.
type PageResult[T any] struct {
	Items []T
	Page  int
	Err   error
}

// StreamPages fetches pages sequentially and delivers each on the returned
// channel. The channel is closed after the final page, after an error
// (delivered as the last result), or when ctx is cancelled.
func StreamPages[T any](ctx context.Context, fetcher PageFetcher[T], path string, query *Query, opts *PageOptions) <-chan PageResult[T] {
	page, perPage := normalizePagination(opts)

	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		for {
			items, err := fetcher.FetchPage(ctx, path, query, &PageOptions{Page: page, PerPage: perPage})

			result := PageResult[T]{Items: items, Page: page, Err: err}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}

			if err != nil || len(items) < perPage {
				return
			}

			page++
		}
	}()

	return results
}
