package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/batch"
)

const batchColumns = `id, good_name, makeshop_identifier, kakaku_product_id, jancode,
	       batch_type, is_enabled, min_price_threshold`

type BatchRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewBatchRepository(pool *pgxpool.Pool, log *slog.Logger) *BatchRepository {
	return &BatchRepository{
		pool: pool,
		log:  log.With("component", "batch_repository"),
	}
}

func (r *BatchRepository) Create(ctx context.Context, in batch.CreateInput) (batch.Batch, error) {
	const query = `
		INSERT INTO batches (good_name, makeshop_identifier, kakaku_product_id, jancode,
		                     batch_type, is_enabled, min_price_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + batchColumns

	row := r.pool.QueryRow(ctx, query,
		in.GoodName, in.MakeshopIdentifier, in.KakakuProductID, in.Jancode,
		in.BatchType, in.IsEnabled, in.MinPriceThreshold)

	b, err := scanBatch(row)
	if err != nil {
		if isUniqueViolation(err) {
			return batch.Batch{}, batch.ErrConflict
		}
		r.log.Error("failed to create batch", "makeshop_identifier", in.MakeshopIdentifier, "error", err)
		return batch.Batch{}, fmt.Errorf("create batch: %w", err)
	}

	return b, nil
}

func (r *BatchRepository) List(ctx context.Context, filter batch.ListFilter) ([]batch.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches`

	var conditions []string
	var args []interface{}
	argIndex := 1

	appendCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argIndex))
		args = append(args, value)
		argIndex++
	}

	if filter.GoodName != nil {
		appendCondition("good_name LIKE $%d", "%"+*filter.GoodName+"%")
	}
	if filter.MakeshopIdentifier != nil {
		appendCondition("makeshop_identifier LIKE $%d", "%"+*filter.MakeshopIdentifier+"%")
	}
	if filter.KakakuProductID != nil {
		appendCondition("kakaku_product_id LIKE $%d", "%"+*filter.KakakuProductID+"%")
	}
	if filter.BatchType != nil {
		appendCondition("batch_type = $%d", *filter.BatchType)
	}
	if filter.IsEnabled != nil {
		appendCondition("is_enabled = $%d", *filter.IsEnabled)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY id OFFSET $%d LIMIT $%d", argIndex, argIndex+1)
	args = append(args, filter.Skip, filter.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list batches", "error", err)
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	return scanBatches(rows)
}

func (r *BatchRepository) Get(ctx context.Context, id int) (batch.Batch, error) {
	const query = `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`

	b, err := scanBatch(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return batch.Batch{}, batch.ErrNotFound
		}
		r.log.Error("failed to get batch", "batch_id", id, "error", err)
		return batch.Batch{}, fmt.Errorf("get batch: %w", err)
	}

	return b, nil
}

// Update applies only the fields set in the patch, building the SET clause
// field by field. An empty patch degenerates to a plain read.
func (r *BatchRepository) Update(ctx context.Context, id int, in batch.UpdateInput) (batch.Batch, error) {
	if in.Empty() {
		return r.Get(ctx, id)
	}

	var sets []string
	var args []interface{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if in.GoodName != nil {
		appendSet("good_name", *in.GoodName)
	}
	if in.MakeshopIdentifier != nil {
		appendSet("makeshop_identifier", *in.MakeshopIdentifier)
	}
	if in.KakakuProductID != nil {
		appendSet("kakaku_product_id", *in.KakakuProductID)
	}
	if in.Jancode != nil {
		appendSet("jancode", *in.Jancode)
	}
	if in.BatchType != nil {
		appendSet("batch_type", *in.BatchType)
	}
	if in.IsEnabled != nil {
		appendSet("is_enabled", *in.IsEnabled)
	}
	if in.MinPriceThreshold != nil {
		appendSet("min_price_threshold", *in.MinPriceThreshold)
	}

	query := fmt.Sprintf("UPDATE batches SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), argIndex, batchColumns)
	args = append(args, id)

	b, err := scanBatch(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return batch.Batch{}, batch.ErrNotFound
		}
		if isUniqueViolation(err) {
			return batch.Batch{}, batch.ErrConflict
		}
		r.log.Error("failed to update batch", "batch_id", id, "error", err)
		return batch.Batch{}, fmt.Errorf("update batch: %w", err)
	}

	return b, nil
}

func (r *BatchRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM batches WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete batch", "batch_id", id, "error", err)
		return fmt.Errorf("delete batch: %w", err)
	}

	if result.RowsAffected() == 0 {
		return batch.ErrNotFound
	}

	return nil
}

func (r *BatchRepository) FindByIdentifiers(ctx context.Context, makeshopID, kakakuID string) (batch.Batch, error) {
	const query = `SELECT ` + batchColumns + `
		FROM batches WHERE makeshop_identifier = $1 AND kakaku_product_id = $2`

	b, err := scanBatch(r.pool.QueryRow(ctx, query, makeshopID, kakakuID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return batch.Batch{}, batch.ErrNotFound
		}
		r.log.Error("failed to find batch by identifiers", "makeshop_identifier", makeshopID, "error", err)
		return batch.Batch{}, fmt.Errorf("find batch by identifiers: %w", err)
	}

	return b, nil
}

func scanBatches(rows pgx.Rows) ([]batch.Batch, error) {
	batches := make([]batch.Batch, 0)

	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, rows.Err()
}

func scanBatch(row pgx.Row) (batch.Batch, error) {
	var b batch.Batch
	err := row.Scan(
		&b.ID, &b.GoodName, &b.MakeshopIdentifier, &b.KakakuProductID,
		&b.Jancode, &b.BatchType, &b.IsEnabled, &b.MinPriceThreshold,
	)
	return b, err
}

// isUniqueViolation reports a violated unique constraint (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports a violated foreign key (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
