package siteconfig

// Config is the singleton site configuration row. Exactly one row with
// SingletonID exists; it is seeded by the initial migration.
type Config struct {
	ID             int     `json:"id"`
	HeroTitle      string  `json:"hero_title"`
	HeroContent    string  `json:"hero_content"`
	HeroImageURL   *string `json:"hero_image_url,omitempty"`
	HeroVideoURL   *string `json:"hero_video_url,omitempty"`
	LineURL        *string `json:"line_url,omitempty"`
	XURL           *string `json:"x_url,omitempty"`
	CompanyAddress *string `json:"company_address,omitempty"`
	BusinessHours  *string `json:"business_hours,omitempty"`
}

type Input struct {
	HeroTitle      string
	HeroContent    string
	HeroImageURL   *string
	HeroVideoURL   *string
	LineURL        *string
	XURL           *string
	CompanyAddress *string
	BusinessHours  *string
}

const SingletonID = 1
