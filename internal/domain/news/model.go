package news

import "time"

// News is one public announcement. PublishDate carries a calendar date only;
// the time component is always midnight UTC.
type News struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishDate time.Time `json:"publish_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type Input struct {
	Title       string
	Content     string
	PublishDate time.Time
}
