package faq

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/faq"
)

type Handler struct {
	service   faq.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service faq.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: items}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*faqOutput, error) {
	f, err := h.service.Create(ctx, toDomainInput(input.Body))
	if err != nil {
		return nil, err
	}

	return &faqOutput{Body: f}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*faqOutput, error) {
	f, err := h.service.Update(ctx, input.ID, toDomainInput(input.Body))
	if err != nil {
		if errors.Is(err, faq.ErrNotFound) {
			return nil, huma.Error404NotFound("FAQ not found")
		}
		return nil, err
	}

	return &faqOutput{Body: f}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*messageOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, faq.ErrNotFound) {
			return nil, huma.Error404NotFound("FAQ not found")
		}
		return nil, err
	}

	return &messageOutput{Body: MessageResponse{Message: "FAQ deleted"}}, nil
}

func toDomainInput(req FAQRequest) faq.Input {
	in := faq.Input{
		Title:     req.Title,
		Content:   req.Content,
		IsVisible: true,
	}
	if req.SortOrder != nil {
		in.SortOrder = *req.SortOrder
	}
	if req.IsVisible != nil {
		in.IsVisible = *req.IsVisible
	}
	return in
}
