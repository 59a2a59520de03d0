package old

// Record is a legacy ("old") sync configuration: the batch core fields plus
// the second-hand item details the old pipeline tracked per unit.
type Record struct {
	ID                 int     `json:"id"`
	GoodName           string  `json:"good_name"`
	MakeshopIdentifier string  `json:"makeshop_identifier"`
	KakakuProductID    string  `json:"kakaku_product_id"`
	BatchType          int     `json:"batch_type"`
	IsEnabled          bool    `json:"is_enabled"`
	MinPriceThreshold  *int    `json:"min_price_threshold,omitempty"`
	GoodStatus         *string `json:"good_status,omitempty"`
	MissingInfo        *string `json:"missing_info,omitempty"`
	AccessoriesInfo    *string `json:"accessories_info,omitempty"`
	DetailComment      *string `json:"detail_comment,omitempty"`
	SerialNumber       *string `json:"serial_number,omitempty"`
}

type CreateInput struct {
	GoodName           string
	MakeshopIdentifier string
	KakakuProductID    string
	BatchType          int
	IsEnabled          bool
	MinPriceThreshold  *int
	GoodStatus         *string
	MissingInfo        *string
	AccessoriesInfo    *string
	DetailComment      *string
	SerialNumber       *string
}

type UpdateInput struct {
	GoodName           *string
	MakeshopIdentifier *string
	KakakuProductID    *string
	BatchType          *int
	IsEnabled          *bool
	MinPriceThreshold  *int
	GoodStatus         *string
	MissingInfo        *string
	AccessoriesInfo    *string
	DetailComment      *string
	SerialNumber       *string
}

func (u UpdateInput) Empty() bool {
	return u.GoodName == nil && u.MakeshopIdentifier == nil && u.KakakuProductID == nil &&
		u.BatchType == nil && u.IsEnabled == nil && u.MinPriceThreshold == nil &&
		u.GoodStatus == nil && u.MissingInfo == nil && u.AccessoriesInfo == nil &&
		u.DetailComment == nil && u.SerialNumber == nil
}

type ListFilter struct {
	Skip               int
	Limit              int
	GoodName           *string
	MakeshopIdentifier *string
	KakakuProductID    *string
	BatchType          *int
	IsEnabled          *bool
	GoodStatus         *string
}
