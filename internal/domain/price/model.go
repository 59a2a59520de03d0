package price

import (
	"time"

	"github.com/shopspring/decimal"

	"phonefix/internal/domain/catalog"
)

// Price is one repair price cell: a (category, repair type, model) triple
// with its amount. UpdatedAt is refreshed on every write to the row.
type Price struct {
	ID           int             `json:"id"`
	CategoryID   int             `json:"category_id"`
	RepairTypeID int             `json:"repair_type_id"`
	ModelName    string          `json:"model_name"`
	Price        decimal.Decimal `json:"price"`
	PriceSuffix  string          `json:"price_suffix"`
	IsVisible    bool            `json:"is_visible"`
	SortOrder    int             `json:"sort_order"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Input is the full row shape. Upsert and PUT both overwrite every field, so
// there is no partial variant here.
type Input struct {
	CategoryID   int
	RepairTypeID int
	ModelName    string
	Price        decimal.Decimal
	PriceSuffix  string
	IsVisible    bool
	SortOrder    int
}

type Filter struct {
	CategoryID   *int
	RepairTypeID *int
}

// List is the public price-list payload: the whole catalog plus all prices,
// assembled in one response for the storefront.
type List struct {
	Categories  []catalog.Category   `json:"categories"`
	RepairTypes []catalog.RepairType `json:"repair_types"`
	Prices      []Price              `json:"prices"`
}
