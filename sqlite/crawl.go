package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/sitemapper"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitemapper.CrawlService = (*CrawlService)(nil)

// CrawlService implements sitemapper.CrawlService using SQLite.
type CrawlService struct {
	db *DB
}

// NewCrawlService creates a new CrawlService.
func NewCrawlService(db *DB) *CrawlService {
	return &CrawlService{db: db}
}

const crawlColumns = `id, seed_url, host, max_depth, max_links_per_page, levels, fetched, failed,
	unfetched, max_depth_reached, canceled, output_path, started_at, finished_at`

// CreateCrawl records a crawl and its URLs in a single transaction.
// Missing timestamps default to the current time.
func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *sitemapper.Crawl) error {
	if crawl.StartedAt.IsZero() {
		crawl.StartedAt = time.Now().UTC()
	}
	if crawl.FinishedAt.IsZero() {
		crawl.FinishedAt = crawl.StartedAt
	}
	if err := crawl.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO crawls (`+crawlColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, crawl.SeedURL, crawl.Host, crawl.MaxDepth, crawl.MaxLinksPerPage,
		crawl.Levels, crawl.Fetched, crawl.Failed, crawl.Unfetched,
		crawl.MaxDepthReached, crawl.Canceled, crawl.OutputPath,
		formatTime(crawl.StartedAt), formatTime(crawl.FinishedAt))
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO crawl_urls (crawl_id, position, url) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, u := range crawl.URLs {
		if _, err := stmt.ExecContext(ctx, id, i, u); err != nil {
			return fmt.Errorf("failed to insert url %s: %w", u, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	crawl.ID = id
	return nil
}

// FindCrawlByID retrieves a crawl with its URLs in recorded order.
func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*sitemapper.Crawl, error) {
	crawl, err := scanCrawl(s.db.QueryRowContext(ctx, `
		SELECT `+crawlColumns+`
		FROM crawls
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitemapper.Errorf(sitemapper.ENOTFOUND, "crawl not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT url FROM crawl_urls WHERE crawl_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crawl.URLs = []string{}
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		crawl.URLs = append(crawl.URLs, u)
	}

	return crawl, rows.Err()
}

// FindCrawls retrieves crawls matching the filter, newest first.
func (s *CrawlService) FindCrawls(ctx context.Context, filter sitemapper.CrawlFilter) ([]*sitemapper.Crawl, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + crawlColumns + " FROM crawls WHERE 1=1")

	if filter.Host != nil {
		query.WriteString(" AND host = ?")
		args = append(args, *filter.Host)
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")

	if filter.Offset > 0 && filter.Limit <= 0 {
		// SQLite requires a LIMIT before OFFSET.
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crawls := []*sitemapper.Crawl{}
	for rows.Next() {
		crawl, err := scanCrawl(rows)
		if err != nil {
			return nil, err
		}
		crawls = append(crawls, crawl)
	}

	return crawls, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCrawl(row scanner) (*sitemapper.Crawl, error) {
	var crawl sitemapper.Crawl
	var startedAt, finishedAt string

	if err := row.Scan(&crawl.ID, &crawl.SeedURL, &crawl.Host, &crawl.MaxDepth, &crawl.MaxLinksPerPage,
		&crawl.Levels, &crawl.Fetched, &crawl.Failed, &crawl.Unfetched,
		&crawl.MaxDepthReached, &crawl.Canceled, &crawl.OutputPath,
		&startedAt, &finishedAt); err != nil {
		return nil, err
	}

	var err error
	if crawl.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if crawl.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &crawl, nil
}
