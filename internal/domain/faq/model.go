package faq

import "time"

type FAQ struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SortOrder int       `json:"sort_order"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
}

type Input struct {
	Title     string
	Content   string
	SortOrder int
	IsVisible bool
}
