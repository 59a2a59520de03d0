package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/siteconfig"
)

const siteConfigColumns = `id, hero_title, hero_content, hero_image_url, hero_video_url,
	       line_url, x_url, company_address, business_hours`

type SiteConfigRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSiteConfigRepository(pool *pgxpool.Pool, log *slog.Logger) *SiteConfigRepository {
	return &SiteConfigRepository{
		pool: pool,
		log:  log.With("component", "siteconfig_repository"),
	}
}

func (r *SiteConfigRepository) Get(ctx context.Context) (siteconfig.Config, error) {
	const query = `SELECT ` + siteConfigColumns + ` FROM site_config WHERE id = $1`

	c, err := scanSiteConfig(r.pool.QueryRow(ctx, query, siteconfig.SingletonID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Error("site config row missing")
			return siteconfig.Config{}, siteconfig.ErrNotProvisioned
		}
		r.log.Error("failed to get site config", "error", err)
		return siteconfig.Config{}, fmt.Errorf("get site config: %w", err)
	}

	return c, nil
}

func (r *SiteConfigRepository) Upsert(ctx context.Context, in siteconfig.Input) (siteconfig.Config, error) {
	const query = `
		INSERT INTO site_config (id, hero_title, hero_content, hero_image_url, hero_video_url,
		                         line_url, x_url, company_address, business_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			hero_title = EXCLUDED.hero_title,
			hero_content = EXCLUDED.hero_content,
			hero_image_url = EXCLUDED.hero_image_url,
			hero_video_url = EXCLUDED.hero_video_url,
			line_url = EXCLUDED.line_url,
			x_url = EXCLUDED.x_url,
			company_address = EXCLUDED.company_address,
			business_hours = EXCLUDED.business_hours
		RETURNING ` + siteConfigColumns

	row := r.pool.QueryRow(ctx, query,
		siteconfig.SingletonID, in.HeroTitle, in.HeroContent, in.HeroImageURL, in.HeroVideoURL,
		in.LineURL, in.XURL, in.CompanyAddress, in.BusinessHours)

	c, err := scanSiteConfig(row)
	if err != nil {
		r.log.Error("failed to upsert site config", "error", err)
		return siteconfig.Config{}, fmt.Errorf("upsert site config: %w", err)
	}

	return c, nil
}

func scanSiteConfig(row pgx.Row) (siteconfig.Config, error) {
	var c siteconfig.Config
	err := row.Scan(
		&c.ID, &c.HeroTitle, &c.HeroContent, &c.HeroImageURL, &c.HeroVideoURL,
		&c.LineURL, &c.XURL, &c.CompanyAddress, &c.BusinessHours,
	)
	return c, err
}
