package catalog

import "phonefix/internal/domain/catalog"

type categoryListOutput struct {
	Body []catalog.Category
}

type categoryInput struct {
	Body CategoryRequest
}

type CategoryRequest struct {
	Name      string `json:"name" maxLength:"255" example:"iPhone"`
	SortOrder int    `json:"sort_order" minimum:"0" example:"10"`
}

type categoryOutput struct {
	Body catalog.Category
}

type categoryUpdateInput struct {
	ID   int `path:"id" example:"1"`
	Body CategoryRequest
}

type repairTypeListOutput struct {
	Body []catalog.RepairType
}

type repairTypeInput struct {
	Body RepairTypeRequest
}

type RepairTypeRequest struct {
	Name      string `json:"name" maxLength:"255" example:"Screen replacement"`
	SortOrder int    `json:"sort_order" minimum:"0" example:"10"`
}

type repairTypeOutput struct {
	Body catalog.RepairType
}

type repairTypeUpdateInput struct {
	ID   int `path:"id" example:"1"`
	Body RepairTypeRequest
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
