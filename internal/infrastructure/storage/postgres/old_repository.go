package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/old"
)

const oldColumns = `id, good_name, makeshop_identifier, kakaku_product_id, batch_type,
	       is_enabled, min_price_threshold, good_status, missing_info,
	       accessories_info, detail_comment, serial_number`

type OldRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewOldRepository(pool *pgxpool.Pool, log *slog.Logger) *OldRepository {
	return &OldRepository{
		pool: pool,
		log:  log.With("component", "old_repository"),
	}
}

func (r *OldRepository) Create(ctx context.Context, in old.CreateInput) (old.Record, error) {
	const query = `
		INSERT INTO old_records (good_name, makeshop_identifier, kakaku_product_id, batch_type,
		                         is_enabled, min_price_threshold, good_status, missing_info,
		                         accessories_info, detail_comment, serial_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + oldColumns

	row := r.pool.QueryRow(ctx, query,
		in.GoodName, in.MakeshopIdentifier, in.KakakuProductID, in.BatchType,
		in.IsEnabled, in.MinPriceThreshold, in.GoodStatus, in.MissingInfo,
		in.AccessoriesInfo, in.DetailComment, in.SerialNumber)

	rec, err := scanOld(row)
	if err != nil {
		if isUniqueViolation(err) {
			return old.Record{}, old.ErrConflict
		}
		r.log.Error("failed to create old record", "makeshop_identifier", in.MakeshopIdentifier, "error", err)
		return old.Record{}, fmt.Errorf("create old record: %w", err)
	}

	return rec, nil
}

func (r *OldRepository) List(ctx context.Context, filter old.ListFilter) ([]old.Record, error) {
	query := `SELECT ` + oldColumns + ` FROM old_records`

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
	if filter.GoodStatus != nil {
		appendCondition("good_status = $%d", *filter.GoodStatus)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY id OFFSET $%d LIMIT $%d", argIndex, argIndex+1)
	args = append(args, filter.Skip, filter.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list old records", "error", err)
		return nil, fmt.Errorf("list old records: %w", err)
	}
	defer rows.Close()

	return scanOlds(rows)
}

func (r *OldRepository) Get(ctx context.Context, id int) (old.Record, error) {
	const query = `SELECT ` + oldColumns + ` FROM old_records WHERE id = $1`

	rec, err := scanOld(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return old.Record{}, old.ErrNotFound
		}
		r.log.Error("failed to get old record", "old_id", id, "error", err)
		return old.Record{}, fmt.Errorf("get old record: %w", err)
	}

	return rec, nil
}

func (r *OldRepository) Update(ctx context.Context, id int, in old.UpdateInput) (old.Record, error) {
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
	if in.BatchType != nil {
		appendSet("batch_type", *in.BatchType)
	}
	if in.IsEnabled != nil {
		appendSet("is_enabled", *in.IsEnabled)
	}
	if in.MinPriceThreshold != nil {
		appendSet("min_price_threshold", *in.MinPriceThreshold)
	}
	if in.GoodStatus != nil {
		appendSet("good_status", *in.GoodStatus)
	}
	if in.MissingInfo != nil {
		appendSet("missing_info", *in.MissingInfo)
	}
	if in.AccessoriesInfo != nil {
		appendSet("accessories_info", *in.AccessoriesInfo)
	}
	if in.DetailComment != nil {
		appendSet("detail_comment", *in.DetailComment)
	}
	if in.SerialNumber != nil {
		appendSet("serial_number", *in.SerialNumber)
	}

	query := fmt.Sprintf("UPDATE old_records SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), argIndex, oldColumns)
	args = append(args, id)

	rec, err := scanOld(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return old.Record{}, old.ErrNotFound
		}
		if isUniqueViolation(err) {
			return old.Record{}, old.ErrConflict
		}
		r.log.Error("failed to update old record", "old_id", id, "error", err)
		return old.Record{}, fmt.Errorf("update old record: %w", err)
	}

	return rec, nil
}

func (r *OldRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM old_records WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete old record", "old_id", id, "error", err)
		return fmt.Errorf("delete old record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return old.ErrNotFound
	}

	return nil
}

func (r *OldRepository) FindByIdentifiers(ctx context.Context, makeshopID, kakakuID string) (old.Record, error) {
	const query = `SELECT ` + oldColumns + `
		FROM old_records WHERE makeshop_identifier = $1 AND kakaku_product_id = $2`

	rec, err := scanOld(r.pool.QueryRow(ctx, query, makeshopID, kakakuID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return old.Record{}, old.ErrNotFound
		}
		r.log.Error("failed to find old record by identifiers", "makeshop_identifier", makeshopID, "error", err)
		return old.Record{}, fmt.Errorf("find old record by identifiers: %w", err)
	}

	return rec, nil
}

func scanOlds(rows pgx.Rows) ([]old.Record, error) {
	records := make([]old.Record, 0)

	for rows.Next() {
		rec, err := scanOld(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func scanOld(row pgx.Row) (old.Record, error) {
	var rec old.Record
	err := row.Scan(
		&rec.ID, &rec.GoodName, &rec.MakeshopIdentifier, &rec.KakakuProductID,
		&rec.BatchType, &rec.IsEnabled, &rec.MinPriceThreshold, &rec.GoodStatus,
		&rec.MissingInfo, &rec.AccessoriesInfo, &rec.DetailComment, &rec.SerialNumber,
	)
	return rec, err
}
