package siteconfig

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/siteconfig"
)

type Handler struct {
	service   siteconfig.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service siteconfig.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*getOutput, error) {
	cfg, err := h.service.Get(ctx)
	if err != nil {
		if errors.Is(err, siteconfig.ErrNotProvisioned) {
			h.log.Error("site config row missing, run migrations")
			return nil, huma.Error500InternalServerError("Site configuration is not provisioned")
		}
		return nil, err
	}

	return &getOutput{Body: cfg}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*getOutput, error) {
	cfg, err := h.service.Update(ctx, siteconfig.Input{
		HeroTitle:      input.Body.HeroTitle,
		HeroContent:    input.Body.HeroContent,
		HeroImageURL:   input.Body.HeroImageURL,
		HeroVideoURL:   input.Body.HeroVideoURL,
		LineURL:        input.Body.LineURL,
		XURL:           input.Body.XURL,
		CompanyAddress: input.Body.CompanyAddress,
		BusinessHours:  input.Body.BusinessHours,
	})
	if err != nil {
		return nil, err
	}

	return &getOutput{Body: cfg}, nil
}
