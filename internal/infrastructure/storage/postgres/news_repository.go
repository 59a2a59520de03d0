package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/news"
)

const newsColumns = `id, title, content, publish_date, created_at`

type NewsRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNewsRepository(pool *pgxpool.Pool, log *slog.Logger) *NewsRepository {
	return &NewsRepository{
		pool: pool,
		log:  log.With("component", "news_repository"),
	}
}

func (r *NewsRepository) List(ctx context.Context) ([]news.News, error) {
	const query = `SELECT ` + newsColumns + ` FROM news ORDER BY publish_date DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list news", "error", err)
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	items := make([]news.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	return items, rows.Err()
}

func (r *NewsRepository) Create(ctx context.Context, in news.Input) (news.News, error) {
	const query = `
		INSERT INTO news (title, content, publish_date)
		VALUES ($1, $2, $3)
		RETURNING ` + newsColumns

	n, err := scanNews(r.pool.QueryRow(ctx, query, in.Title, in.Content, in.PublishDate))
	if err != nil {
		r.log.Error("failed to create news", "title", in.Title, "error", err)
		return news.News{}, fmt.Errorf("create news: %w", err)
	}

	return n, nil
}

func (r *NewsRepository) Update(ctx context.Context, id int, in news.Input) (news.News, error) {
	const query = `
		UPDATE news SET title = $1, content = $2, publish_date = $3
		WHERE id = $4
		RETURNING ` + newsColumns

	n, err := scanNews(r.pool.QueryRow(ctx, query, in.Title, in.Content, in.PublishDate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return news.News{}, news.ErrNotFound
		}
		r.log.Error("failed to update news", "news_id", id, "error", err)
		return news.News{}, fmt.Errorf("update news: %w", err)
	}

	return n, nil
}

func (r *NewsRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM news WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete news", "news_id", id, "error", err)
		return fmt.Errorf("delete news: %w", err)
	}

	if result.RowsAffected() == 0 {
		return news.ErrNotFound
	}

	return nil
}

func scanNews(row pgx.Row) (news.News, error) {
	var n news.News
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.PublishDate, &n.CreatedAt)
	return n, err
}
