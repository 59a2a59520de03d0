package faq

import "phonefix/internal/domain/faq"

type listOutput struct {
	Body []faq.FAQ
}

type createInput struct {
	Body FAQRequest
}

type FAQRequest struct {
	Title     string `json:"title" maxLength:"255" example:"How long does a screen repair take?"`
	Content   string `json:"content" example:"Most screen repairs are done within an hour."`
	SortOrder *int   `json:"sort_order,omitempty" minimum:"0" doc:"Defaults to 0"`
	IsVisible *bool  `json:"is_visible,omitempty" doc:"Defaults to true"`
}

type updateInput struct {
	ID   int `path:"id" example:"1"`
	Body FAQRequest
}

type faqOutput struct {
	Body faq.FAQ
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
