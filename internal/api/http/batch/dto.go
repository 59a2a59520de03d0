package batch

import "phonefix/internal/domain/batch"

type createInput struct {
	Body CreateRequest
}

type CreateRequest struct {
	GoodName           string  `json:"good_name" maxLength:"500" example:"iPhone 13 128GB"`
	MakeshopIdentifier string  `json:"makeshop_identifier" maxLength:"255" example:"shop_product_A123"`
	KakakuProductID    string  `json:"kakaku_product_id" maxLength:"255" example:"kakaku_id_Z789"`
	Jancode            *string `json:"jancode,omitempty" maxLength:"255" example:"4901234567890" doc:"JAN code"`
	BatchType          int     `json:"batch_type" minimum:"1" maximum:"255" doc:"1=price update, 2=stock sync"`
	IsEnabled          *bool   `json:"is_enabled,omitempty" doc:"Defaults to true"`
	MinPriceThreshold  *int    `json:"min_price_threshold,omitempty" minimum:"0"`
}

type listInput struct {
	Skip               int     `query:"skip" minimum:"0" default:"0"`
	Limit              int     `query:"limit" minimum:"1" maximum:"1000" default:"1000"`
	GoodName           *string `query:"good_name" doc:"Substring match"`
	MakeshopIdentifier *string `query:"makeshop_identifier" doc:"Substring match"`
	KakakuProductID    *string `query:"kakaku_product_id" doc:"Substring match"`
	BatchType          *int    `query:"batch_type"`
	IsEnabled          *bool   `query:"is_enabled"`
}

type listOutput struct {
	Body []batch.Batch
}

type getInput struct {
	ID int `path:"id" example:"1"`
}

type getOutput struct {
	Body batch.Batch
}

type updateInput struct {
	ID   int `path:"id" example:"1"`
	Body UpdateRequest
}

// UpdateRequest is the PATCH body: every field optional, absent fields are
// left unchanged.
type UpdateRequest struct {
	GoodName           *string `json:"good_name,omitempty" maxLength:"500"`
	MakeshopIdentifier *string `json:"makeshop_identifier,omitempty" maxLength:"255"`
	KakakuProductID    *string `json:"kakaku_product_id,omitempty" maxLength:"255"`
	Jancode            *string `json:"jancode,omitempty" maxLength:"255"`
	BatchType          *int    `json:"batch_type,omitempty" minimum:"1" maximum:"255"`
	IsEnabled          *bool   `json:"is_enabled,omitempty"`
	MinPriceThreshold  *int    `json:"min_price_threshold,omitempty" minimum:"0"`
}

type deleteInput struct {
	ID int `path:"id" example:"1"`
}

type deleteOutput struct {
	Status int
}
