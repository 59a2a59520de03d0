package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/catalog"
)

// CatalogRepository serves both catalog tables. The two halves are identical
// except for the table name and the not-found sentinel.
type CatalogRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCatalogRepository(pool *pgxpool.Pool, log *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		pool: pool,
		log:  log.With("component", "catalog_repository"),
	}
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	const query = `SELECT id, name, sort_order FROM categories ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list categories", "error", err)
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]catalog.Category, 0)
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, in catalog.Input) (catalog.Category, error) {
	const query = `INSERT INTO categories (name, sort_order) VALUES ($1, $2) RETURNING id, name, sort_order`

	var c catalog.Category
	err := r.pool.QueryRow(ctx, query, in.Name, in.SortOrder).Scan(&c.ID, &c.Name, &c.SortOrder)
	if err != nil {
		r.log.Error("failed to create category", "name", in.Name, "error", err)
		return catalog.Category{}, fmt.Errorf("create category: %w", err)
	}

	return c, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, id int, in catalog.Input) (catalog.Category, error) {
	const query = `UPDATE categories SET name = $1, sort_order = $2 WHERE id = $3 RETURNING id, name, sort_order`

	var c catalog.Category
	err := r.pool.QueryRow(ctx, query, in.Name, in.SortOrder, id).Scan(&c.ID, &c.Name, &c.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Category{}, catalog.ErrCategoryNotFound
		}
		r.log.Error("failed to update category", "category_id", id, "error", err)
		return catalog.Category{}, fmt.Errorf("update category: %w", err)
	}

	return c, nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id int) error {
	const query = `DELETE FROM categories WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete category", "category_id", id, "error", err)
		return fmt.Errorf("delete category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return catalog.ErrCategoryNotFound
	}

	return nil
}

func (r *CatalogRepository) ListRepairTypes(ctx context.Context) ([]catalog.RepairType, error) {
	const query = `SELECT id, name, sort_order FROM repair_types ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list repair types", "error", err)
		return nil, fmt.Errorf("list repair types: %w", err)
	}
	defer rows.Close()

	repairTypes := make([]catalog.RepairType, 0)
	for rows.Next() {
		var rt catalog.RepairType
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.SortOrder); err != nil {
			return nil, fmt.Errorf("scan repair type: %w", err)
		}
		repairTypes = append(repairTypes, rt)
	}

	return repairTypes, rows.Err()
}

func (r *CatalogRepository) CreateRepairType(ctx context.Context, in catalog.Input) (catalog.RepairType, error) {
	const query = `INSERT INTO repair_types (name, sort_order) VALUES ($1, $2) RETURNING id, name, sort_order`

	var rt catalog.RepairType
	err := r.pool.QueryRow(ctx, query, in.Name, in.SortOrder).Scan(&rt.ID, &rt.Name, &rt.SortOrder)
	if err != nil {
		r.log.Error("failed to create repair type", "name", in.Name, "error", err)
		return catalog.RepairType{}, fmt.Errorf("create repair type: %w", err)
	}

	return rt, nil
}

func (r *CatalogRepository) UpdateRepairType(ctx context.Context, id int, in catalog.Input) (catalog.RepairType, error) {
	const query = `UPDATE repair_types SET name = $1, sort_order = $2 WHERE id = $3 RETURNING id, name, sort_order`

	var rt catalog.RepairType
	err := r.pool.QueryRow(ctx, query, in.Name, in.SortOrder, id).Scan(&rt.ID, &rt.Name, &rt.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.RepairType{}, catalog.ErrRepairTypeNotFound
		}
		r.log.Error("failed to update repair type", "repair_type_id", id, "error", err)
		return catalog.RepairType{}, fmt.Errorf("update repair type: %w", err)
	}

	return rt, nil
}

func (r *CatalogRepository) DeleteRepairType(ctx context.Context, id int) error {
	const query = `DELETE FROM repair_types WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete repair type", "repair_type_id", id, "error", err)
		return fmt.Errorf("delete repair type: %w", err)
	}

	if result.RowsAffected() == 0 {
		return catalog.ErrRepairTypeNotFound
	}

	return nil
}
