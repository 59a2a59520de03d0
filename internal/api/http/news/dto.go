package news

import "phonefix/internal/domain/news"

type listOutput struct {
	Body []news.News
}

type createInput struct {
	Body NewsRequest
}

type NewsRequest struct {
	Title       string `json:"title" maxLength:"255" example:"Summer hours"`
	Content     string `json:"content" example:"We close at 18:00 through August."`
	PublishDate string `json:"publish_date" format:"date" example:"2025-08-01" doc:"Calendar date, YYYY-MM-DD"`
}

type updateInput struct {
	ID   int `path:"id" example:"1"`
	Body NewsRequest
}

type newsOutput struct {
	Body news.News
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
