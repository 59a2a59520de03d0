package old

import "phonefix/internal/domain/old"

type createInput struct {
	Body CreateRequest
}

type CreateRequest struct {
	GoodName           string  `json:"good_name" maxLength:"500" example:"iPhone 11 64GB used"`
	MakeshopIdentifier string  `json:"makeshop_identifier" maxLength:"255"`
	KakakuProductID    string  `json:"kakaku_product_id" maxLength:"255"`
	BatchType          int     `json:"batch_type" minimum:"1" maximum:"255"`
	IsEnabled          *bool   `json:"is_enabled,omitempty" doc:"Defaults to true"`
	MinPriceThreshold  *int    `json:"min_price_threshold,omitempty" minimum:"0"`
	GoodStatus         *string `json:"good_status,omitempty" maxLength:"255" example:"rank B"`
	MissingInfo        *string `json:"missing_info,omitempty" maxLength:"500"`
	AccessoriesInfo    *string `json:"accessories_info,omitempty" maxLength:"500"`
	DetailComment      *string `json:"detail_comment,omitempty"`
	SerialNumber       *string `json:"serial_number,omitempty" maxLength:"255"`
}

type listInput struct {
	Skip               int     `query:"skip" minimum:"0" default:"0"`
	Limit              int     `query:"limit" minimum:"1" maximum:"1000" default:"1000"`
	GoodName           *string `query:"good_name" doc:"Substring match"`
	MakeshopIdentifier *string `query:"makeshop_identifier" doc:"Substring match"`
	KakakuProductID    *string `query:"kakaku_product_id" doc:"Substring match"`
	BatchType          *int    `query:"batch_type"`
	IsEnabled          *bool   `query:"is_enabled"`
	GoodStatus         *string `query:"good_status" doc:"Exact match"`
}

type listOutput struct {
	Body []old.Record
}

type getInput struct {
	ID int `path:"id" example:"1"`
}

type getOutput struct {
	Body old.Record
}

type updateInput struct {
	ID   int `path:"id" example:"1"`
	Body UpdateRequest
}

type UpdateRequest struct {
	GoodName           *string `json:"good_name,omitempty" maxLength:"500"`
	MakeshopIdentifier *string `json:"makeshop_identifier,omitempty" maxLength:"255"`
	KakakuProductID    *string `json:"kakaku_product_id,omitempty" maxLength:"255"`
	BatchType          *int    `json:"batch_type,omitempty" minimum:"1" maximum:"255"`
	IsEnabled          *bool   `json:"is_enabled,omitempty"`
	MinPriceThreshold  *int    `json:"min_price_threshold,omitempty" minimum:"0"`
	GoodStatus         *string `json:"good_status,omitempty" maxLength:"255"`
	MissingInfo        *string `json:"missing_info,omitempty" maxLength:"500"`
	AccessoriesInfo    *string `json:"accessories_info,omitempty" maxLength:"500"`
	DetailComment      *string `json:"detail_comment,omitempty"`
	SerialNumber       *string `json:"serial_number,omitempty" maxLength:"255"`
}

type deleteInput struct {
	ID int `path:"id" example:"1"`
}

type deleteOutput struct {
	Status int
}
