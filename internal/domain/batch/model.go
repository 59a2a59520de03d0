package batch

// Batch is one product-sync job configuration. The pair
// (MakeshopIdentifier, KakakuProductID) is unique across the table.
type Batch struct {
	ID                 int     `json:"id"`
	GoodName           string  `json:"good_name"`
	MakeshopIdentifier string  `json:"makeshop_identifier"`
	KakakuProductID    string  `json:"kakaku_product_id"`
	Jancode            *string `json:"jancode,omitempty"`
	BatchType          int     `json:"batch_type"`
	IsEnabled          bool    `json:"is_enabled"`
	MinPriceThreshold  *int    `json:"min_price_threshold,omitempty"`
}

type CreateInput struct {
	GoodName           string
	MakeshopIdentifier string
	KakakuProductID    string
	Jancode            *string
	BatchType          int
	IsEnabled          bool
	MinPriceThreshold  *int
}

// UpdateInput carries only the fields present in a PATCH body; nil fields are
// left untouched in the stored row.
type UpdateInput struct {
	GoodName           *string
	MakeshopIdentifier *string
	KakakuProductID    *string
	Jancode            *string
	BatchType          *int
	IsEnabled          *bool
	MinPriceThreshold  *int
}

// Empty reports whether the patch touches no fields at all.
func (u UpdateInput) Empty() bool {
	return u.GoodName == nil && u.MakeshopIdentifier == nil && u.KakakuProductID == nil &&
		u.Jancode == nil && u.BatchType == nil && u.IsEnabled == nil && u.MinPriceThreshold == nil
}

// ListFilter combines pagination with the optional filters of the list
// endpoint. String filters are substring matches, the rest are exact.
type ListFilter struct {
	Skip               int
	Limit              int
	GoodName           *string
	MakeshopIdentifier *string
	KakakuProductID    *string
	BatchType          *int
	IsEnabled          *bool
}
