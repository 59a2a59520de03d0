package news

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/news"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service   news.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service news.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
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

func (h *Handler) create(ctx context.Context, input *createInput) (*newsOutput, error) {
	in, err := toDomainInput(input.Body)
	if err != nil {
		return nil, err
	}

	n, err := h.service.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	return &newsOutput{Body: n}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*newsOutput, error) {
	in, err := toDomainInput(input.Body)
	if err != nil {
		return nil, err
	}

	n, err := h.service.Update(ctx, input.ID, in)
	if err != nil {
		if errors.Is(err, news.ErrNotFound) {
			return nil, huma.Error404NotFound("News not found")
		}
		return nil, err
	}

	return &newsOutput{Body: n}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*messageOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, news.ErrNotFound) {
			return nil, huma.Error404NotFound("News not found")
		}
		return nil, err
	}

	return &messageOutput{Body: MessageResponse{Message: "News deleted"}}, nil
}

func toDomainInput(req NewsRequest) (news.Input, error) {
	publishDate, err := time.Parse(dateLayout, req.PublishDate)
	if err != nil {
		return news.Input{}, huma.Error422UnprocessableEntity("publish_date must be YYYY-MM-DD")
	}

	return news.Input{
		Title:       req.Title,
		Content:     req.Content,
		PublishDate: publishDate,
	}, nil
}
