package siteconfig

import "phonefix/internal/domain/siteconfig"

type getOutput struct {
	Body siteconfig.Config
}

type updateInput struct {
	Body ConfigRequest
}

type ConfigRequest struct {
	HeroTitle      string  `json:"hero_title" maxLength:"255" example:"Fast phone repairs"`
	HeroContent    string  `json:"hero_content" example:"Same-day screen and battery service."`
	HeroImageURL   *string `json:"hero_image_url,omitempty" maxLength:"500" format:"uri"`
	HeroVideoURL   *string `json:"hero_video_url,omitempty" maxLength:"500" format:"uri"`
	LineURL        *string `json:"line_url,omitempty" maxLength:"500" format:"uri"`
	XURL           *string `json:"x_url,omitempty" maxLength:"500" format:"uri"`
	CompanyAddress *string `json:"company_address,omitempty" maxLength:"500"`
	BusinessHours  *string `json:"business_hours,omitempty" maxLength:"255"`
}
