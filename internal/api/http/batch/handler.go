package batch

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/batch"
)

type Handler struct {
	service    batch.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service batch.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*getOutput, error) {
	in := batch.CreateInput{
		GoodName:           input.Body.GoodName,
		MakeshopIdentifier: input.Body.MakeshopIdentifier,
		KakakuProductID:    input.Body.KakakuProductID,
		Jancode:            input.Body.Jancode,
		BatchType:          input.Body.BatchType,
		IsEnabled:          true,
		MinPriceThreshold:  input.Body.MinPriceThreshold,
	}
	if input.Body.IsEnabled != nil {
		in.IsEnabled = *input.Body.IsEnabled
	}

	b, err := h.service.Create(ctx, in)
	if err != nil {
		if errors.Is(err, batch.ErrConflict) {
			return nil, huma.Error409Conflict("Batch configuration already exists for this identifier pair")
		}
		return nil, err
	}

	return &getOutput{Body: b}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	batches, err := h.service.List(ctx, batch.ListFilter{
		Skip:               input.Skip,
		Limit:              input.Limit,
		GoodName:           input.GoodName,
		MakeshopIdentifier: input.MakeshopIdentifier,
		KakakuProductID:    input.KakakuProductID,
		BatchType:          input.BatchType,
		IsEnabled:          input.IsEnabled,
	})
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: batches}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	b, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			return nil, huma.Error404NotFound("Batch configuration not found")
		}
		return nil, err
	}

	return &getOutput{Body: b}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*getOutput, error) {
	b, err := h.service.Update(ctx, input.ID, batch.UpdateInput{
		GoodName:           input.Body.GoodName,
		MakeshopIdentifier: input.Body.MakeshopIdentifier,
		KakakuProductID:    input.Body.KakakuProductID,
		Jancode:            input.Body.Jancode,
		BatchType:          input.Body.BatchType,
		IsEnabled:          input.Body.IsEnabled,
		MinPriceThreshold:  input.Body.MinPriceThreshold,
	})
	if err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			return nil, huma.Error404NotFound("Batch configuration not found")
		}
		if errors.Is(err, batch.ErrConflict) {
			return nil, huma.Error409Conflict("Batch configuration already exists for this identifier pair")
		}
		return nil, err
	}

	return &getOutput{Body: b}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, batch.ErrNotFound) {
			return nil, huma.Error404NotFound("Batch configuration not found")
		}
		return nil, err
	}

	return &deleteOutput{Status: http.StatusNoContent}, nil
}
