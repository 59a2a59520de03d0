package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/faq"
)

const faqColumns = `id, title, content, sort_order, is_visible, created_at`

type FAQRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFAQRepository(pool *pgxpool.Pool, log *slog.Logger) *FAQRepository {
	return &FAQRepository{
		pool: pool,
		log:  log.With("component", "faq_repository"),
	}
}

func (r *FAQRepository) List(ctx context.Context) ([]faq.FAQ, error) {
	const query = `SELECT ` + faqColumns + ` FROM faqs ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list faqs", "error", err)
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	items := make([]faq.FAQ, 0)
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}

	return items, rows.Err()
}

func (r *FAQRepository) Create(ctx context.Context, in faq.Input) (faq.FAQ, error) {
	const query = `
		INSERT INTO faqs (title, content, sort_order, is_visible)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + faqColumns

	f, err := scanFAQ(r.pool.QueryRow(ctx, query, in.Title, in.Content, in.SortOrder, in.IsVisible))
	if err != nil {
		r.log.Error("failed to create faq", "title", in.Title, "error", err)
		return faq.FAQ{}, fmt.Errorf("create faq: %w", err)
	}

	return f, nil
}

func (r *FAQRepository) Update(ctx context.Context, id int, in faq.Input) (faq.FAQ, error) {
	const query = `
		UPDATE faqs SET title = $1, content = $2, sort_order = $3, is_visible = $4
		WHERE id = $5
		RETURNING ` + faqColumns

	f, err := scanFAQ(r.pool.QueryRow(ctx, query, in.Title, in.Content, in.SortOrder, in.IsVisible, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return faq.FAQ{}, faq.ErrNotFound
		}
		r.log.Error("failed to update faq", "faq_id", id, "error", err)
		return faq.FAQ{}, fmt.Errorf("update faq: %w", err)
	}

	return f, nil
}

func (r *FAQRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM faqs WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete faq", "faq_id", id, "error", err)
		return fmt.Errorf("delete faq: %w", err)
	}

	if result.RowsAffected() == 0 {
		return faq.ErrNotFound
	}

	return nil
}

func scanFAQ(row pgx.Row) (faq.FAQ, error) {
	var f faq.FAQ
	err := row.Scan(&f.ID, &f.Title, &f.Content, &f.SortOrder, &f.IsVisible, &f.CreatedAt)
	return f, err
}
