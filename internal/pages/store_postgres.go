package pages

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"incubator/internal/incubator/metrics"
	"incubator/internal/prefix"
)

// PostgresIndex reads page existence from the wiki's page table:
//
//	page(page_namespace integer, page_title text)
//
// with titles stored in DB key form.
type PostgresIndex struct {
	db      *sql.DB
	table   string
	metrics *metrics.Metrics
}

// PostgresOption configures a PostgresIndex.
type PostgresOption func(*PostgresIndex)

// WithTable overrides the page table name, e.g. for a prefixed schema.
func WithTable(table string) PostgresOption {
	return func(p *PostgresIndex) {
		p.table = pq.QuoteIdentifier(table)
	}
}

// WithPostgresMetrics records lookup durations.
func WithPostgresMetrics(m *metrics.Metrics) PostgresOption {
	return func(p *PostgresIndex) {
		p.metrics = m
	}
}

// NewPostgresIndex constructs a PostgreSQL-backed page index.
func NewPostgresIndex(db *sql.DB, opts ...PostgresOption) *PostgresIndex {
	p := &PostgresIndex{db: db, table: "page"}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

func (p *PostgresIndex) Exists(ctx context.Context, page prefix.Title) (bool, error) {
	defer p.metrics.ObservePageLookup(time.Now())

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE page_namespace = $1 AND page_title = $2)`, p.table)
	var exists bool
	if err := p.db.QueryRowContext(ctx, query, page.Namespace, DBKey(page.Text)).Scan(&exists); err != nil {
		return false, fmt.Errorf("check page exists: %w", err)
	}
	return exists, nil
}

func (p *PostgresIndex) ExistingAmong(ctx context.Context, namespace int, titles []string) (map[string]bool, error) {
	defer p.metrics.ObservePageLookup(time.Now())

	keys := make([]string, len(titles))
	for i, t := range titles {
		keys[i] = DBKey(t)
	}
	query := fmt.Sprintf(`SELECT page_title FROM %s WHERE page_namespace = $1 AND page_title = ANY($2)`, p.table)
	rows, err := p.db.QueryContext(ctx, query, namespace, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("list existing pages: %w", err)
	}
	defer rows.Close()

	found := make(map[string]bool, len(keys))
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan page title: %w", err)
		}
		found[title] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}
	return found, nil
}

// Health pings the database.
func (p *PostgresIndex) Health(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
