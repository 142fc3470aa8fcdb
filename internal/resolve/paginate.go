package resolve

import (
	"context"
	"fmt"
)

const (
	// PageSize is the number of items requested per page (the Helix maximum).
	PageSize = 100

	// DefaultMaxPages bounds a listing at 100k items. A remote that keeps
	// handing out cursors past that is treated as broken.
	DefaultMaxPages = 1000
)

// PageFunc fetches one page starting at cursor. An empty next cursor marks
// the last page.
type PageFunc[T any] func(ctx context.Context, cursor string, first int) (items []T, next string, err error)

// Paginate follows cursors until the listing is exhausted and returns every
// item in the order served. Pages are fetched one at a time. The first failing
// fetch aborts the listing. maxPages <= 0 means DefaultMaxPages.
func Paginate[T any](ctx context.Context, fetch PageFunc[T], maxPages int) ([]T, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var (
		all    []T
		cursor string
	)
	for page := 1; ; page++ {
		if page > maxPages {
			return nil, fmt.Errorf("%w (limit %d)", ErrTooManyPages, maxPages)
		}

		items, next, err := fetch(ctx, cursor, PageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}
		all = append(all, items...)

		if next == "" {
			return all, nil
		}
		cursor = next
	}
}
