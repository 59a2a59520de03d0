package price

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/price"
)

const defaultPriceSuffix = "税込"

type Handler struct {
	service   price.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service price.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	// /prices/list before /prices/{id} so the literal segment wins.
	huma.Register(api, h.priceListOp(), h.priceList)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.upsertOp(), h.upsert)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	prices, err := h.service.List(ctx, price.Filter{
		CategoryID:   input.CategoryID,
		RepairTypeID: input.RepairTypeID,
	})
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: prices}, nil
}

func (h *Handler) priceList(ctx context.Context, _ *struct{}) (*priceListOutput, error) {
	list, err := h.service.PriceList(ctx)
	if err != nil {
		return nil, err
	}

	return &priceListOutput{Body: list}, nil
}

func (h *Handler) upsert(ctx context.Context, input *upsertInput) (*priceOutput, error) {
	p, err := h.service.Upsert(ctx, toDomainInput(input.Body), input.PriceID)
	if err != nil {
		return nil, mapError(err)
	}

	return &priceOutput{Body: p}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*priceOutput, error) {
	p, err := h.service.Update(ctx, input.ID, toDomainInput(input.Body))
	if err != nil {
		return nil, mapError(err)
	}

	return &priceOutput{Body: p}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*messageOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &messageOutput{Body: MessageResponse{Message: "Price deleted"}}, nil
}

func toDomainInput(req PriceRequest) price.Input {
	in := price.Input{
		CategoryID:   req.CategoryID,
		RepairTypeID: req.RepairTypeID,
		ModelName:    req.ModelName,
		Price:        decimal.NewFromFloat(req.Price),
		PriceSuffix:  defaultPriceSuffix,
		IsVisible:    true,
	}
	if req.PriceSuffix != nil {
		in.PriceSuffix = *req.PriceSuffix
	}
	if req.IsVisible != nil {
		in.IsVisible = *req.IsVisible
	}
	if req.SortOrder != nil {
		in.SortOrder = *req.SortOrder
	}
	return in
}

func mapError(err error) error {
	switch {
	case errors.Is(err, price.ErrNotFound):
		return huma.Error404NotFound("Price not found")
	case errors.Is(err, price.ErrInvalidReference):
		return huma.Error422UnprocessableEntity("Unknown category or repair type")
	default:
		return err
	}
}
