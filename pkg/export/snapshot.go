// Package export materializes the remote catalog into local artifacts: a
// SQLite database, a markdown report with charts, or a plain CSV download.
package export

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/model"
)

// snapshotPageSize is the page size used when draining the catalog.
const snapshotPageSize = 100

// Source is the subset of the API client the exporters need.
type Source interface {
	ListBooks(ctx context.Context, q model.ListQuery) (model.BookPage, error)
	Statistics(ctx context.Context) (model.Statistics, error)
}

// Snapshot is a point-in-time copy of the whole catalog.
type Snapshot struct {
	Books   []model.Book
	Stats   model.Statistics
	TakenAt time.Time
}

// Fetch drains every page of the catalog plus the statistics. Statistics and
// the first page go out immediately; the remaining pages are fetched in
// parallel once the first reply reveals how many there are.
func Fetch(ctx context.Context, src Source, logger *log.Logger) (*Snapshot, error) {
	snap := &Snapshot{TakenAt: time.Now()}

	q := model.DefaultListQuery()
	q.PerPage = snapshotPageSize

	var first model.BookPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := src.Statistics(gctx)
		if err != nil {
			return fmt.Errorf("fetch statistics: %w", err)
		}
		snap.Stats = stats
		return nil
	})
	g.Go(func() error {
		page, err := src.ListBooks(gctx, q)
		if err != nil {
			return fmt.Errorf("fetch page 1: %w", err)
		}
		first = page
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages := first.Pagination.Pages
	if pages <= 1 {
		snap.Books = first.Books
		return snap, nil
	}

	rest := make([][]model.Book, pages+1)
	var mu sync.Mutex

	g, gctx = errgroup.WithContext(ctx)
	for p := 2; p <= pages; p++ {
		p := p
		g.Go(func() error {
			pq := q
			pq.Page = p
			page, err := src.ListBooks(gctx, pq)
			if err != nil {
				return fmt.Errorf("fetch page %d: %w", p, err)
			}
			mu.Lock()
			rest[p] = page.Books
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.Books = first.Books
	for p := 2; p <= pages; p++ {
		snap.Books = append(snap.Books, rest[p]...)
	}
	if logger != nil {
		logger.Printf("snapshot: %d books across %d pages", len(snap.Books), pages)
	}
	return snap, nil
}
