package price

import "phonefix/internal/domain/price"

type listInput struct {
	CategoryID   *int `query:"category_id"`
	RepairTypeID *int `query:"repair_type_id"`
}

type listOutput struct {
	Body []price.Price
}

type priceListOutput struct {
	Body price.List
}

type upsertInput struct {
	PriceID *int `query:"price_id" doc:"When set, overwrite that row instead of creating one"`
	Body    PriceRequest
}

type PriceRequest struct {
	CategoryID   int     `json:"category_id" example:"1"`
	RepairTypeID int     `json:"repair_type_id" example:"2"`
	ModelName    string  `json:"model_name" maxLength:"255" example:"iPhone 13"`
	Price        float64 `json:"price" minimum:"0" example:"12800"`
	PriceSuffix  *string `json:"price_suffix,omitempty" maxLength:"50" doc:"Defaults to the tax-included suffix"`
	IsVisible    *bool   `json:"is_visible,omitempty" doc:"Defaults to true"`
	SortOrder    *int    `json:"sort_order,omitempty" minimum:"0" doc:"Defaults to 0"`
}

type updateInput struct {
	ID   int `path:"id" example:"1"`
	Body PriceRequest
}

type priceOutput struct {
	Body price.Price
}

type deleteInput struct {
	ID int `path:"id" example:"1"`
}

type messageOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message" example:"deleted"`
}
