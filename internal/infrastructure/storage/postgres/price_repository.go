package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/price"
)

const priceColumns = `id, category_id, repair_type_id, model_name, price,
	       price_suffix, is_visible, sort_order, updated_at`

type PriceRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPriceRepository(pool *pgxpool.Pool, log *slog.Logger) *PriceRepository {
	return &PriceRepository{
		pool: pool,
		log:  log.With("component", "price_repository"),
	}
}

// List orders by sort_order descending with newest rows first on ties, the
// order the storefront renders price tables in.
func (r *PriceRepository) List(ctx context.Context, filter price.Filter) ([]price.Price, error) {
	query := `SELECT ` + priceColumns + ` FROM repair_prices`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argIndex))
		args = append(args, *filter.CategoryID)
		argIndex++
	}
	if filter.RepairTypeID != nil {
		conditions = append(conditions, fmt.Sprintf("repair_type_id = $%d", argIndex))
		args = append(args, *filter.RepairTypeID)
		argIndex++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY sort_order DESC, id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list prices", "error", err)
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()

	prices := make([]price.Price, 0)
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}

	return prices, rows.Err()
}

func (r *PriceRepository) Create(ctx context.Context, in price.Input) (price.Price, error) {
	const query = `
		INSERT INTO repair_prices (category_id, repair_type_id, model_name, price,
		                           price_suffix, is_visible, sort_order, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + priceColumns

	row := r.pool.QueryRow(ctx, query,
		in.CategoryID, in.RepairTypeID, in.ModelName, in.Price,
		in.PriceSuffix, in.IsVisible, in.SortOrder)

	p, err := scanPrice(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return price.Price{}, price.ErrInvalidReference
		}
		r.log.Error("failed to create price", "model_name", in.ModelName, "error", err)
		return price.Price{}, fmt.Errorf("create price: %w", err)
	}

	return p, nil
}

func (r *PriceRepository) Replace(ctx context.Context, id int, in price.Input) (price.Price, error) {
	const query = `
		UPDATE repair_prices
		SET category_id = $1, repair_type_id = $2, model_name = $3, price = $4,
		    price_suffix = $5, is_visible = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + priceColumns

	row := r.pool.QueryRow(ctx, query,
		in.CategoryID, in.RepairTypeID, in.ModelName, in.Price,
		in.PriceSuffix, in.IsVisible, in.SortOrder, id)

	p, err := scanPrice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return price.Price{}, price.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return price.Price{}, price.ErrInvalidReference
		}
		r.log.Error("failed to replace price", "price_id", id, "error", err)
		return price.Price{}, fmt.Errorf("replace price: %w", err)
	}

	return p, nil
}

func (r *PriceRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM repair_prices WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete price", "price_id", id, "error", err)
		return fmt.Errorf("delete price: %w", err)
	}

	if result.RowsAffected() == 0 {
		return price.ErrNotFound
	}

	return nil
}

func scanPrice(row pgx.Row) (price.Price, error) {
	var p price.Price
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.RepairTypeID, &p.ModelName, &p.Price,
		&p.PriceSuffix, &p.IsVisible, &p.SortOrder, &p.UpdatedAt,
	)
	return p, err
}
