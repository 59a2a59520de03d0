package old

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/old"
)

type Handler struct {
	service    old.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service old.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
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
	in := old.CreateInput{
		GoodName:           input.Body.GoodName,
		MakeshopIdentifier: input.Body.MakeshopIdentifier,
		KakakuProductID:    input.Body.KakakuProductID,
		BatchType:          input.Body.BatchType,
		IsEnabled:          true,
		MinPriceThreshold:  input.Body.MinPriceThreshold,
		GoodStatus:         input.Body.GoodStatus,
		MissingInfo:        input.Body.MissingInfo,
		AccessoriesInfo:    input.Body.AccessoriesInfo,
		DetailComment:      input.Body.DetailComment,
		SerialNumber:       input.Body.SerialNumber,
	}
	if input.Body.IsEnabled != nil {
		in.IsEnabled = *input.Body.IsEnabled
	}

	rec, err := h.service.Create(ctx, in)
	if err != nil {
		if errors.Is(err, old.ErrConflict) {
			return nil, huma.Error409Conflict("Record already exists for this identifier pair")
		}
		return nil, err
	}

	return &getOutput{Body: rec}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	records, err := h.service.List(ctx, old.ListFilter{
		Skip:               input.Skip,
		Limit:              input.Limit,
		GoodName:           input.GoodName,
		MakeshopIdentifier: input.MakeshopIdentifier,
		KakakuProductID:    input.KakakuProductID,
		BatchType:          input.BatchType,
		IsEnabled:          input.IsEnabled,
		GoodStatus:         input.GoodStatus,
	})
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: records}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	rec, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, old.ErrNotFound) {
			return nil, huma.Error404NotFound("Record not found")
		}
		return nil, err
	}

	return &getOutput{Body: rec}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*getOutput, error) {
	rec, err := h.service.Update(ctx, input.ID, old.UpdateInput{
		GoodName:           input.Body.GoodName,
		MakeshopIdentifier: input.Body.MakeshopIdentifier,
		KakakuProductID:    input.Body.KakakuProductID,
		BatchType:          input.Body.BatchType,
		IsEnabled:          input.Body.IsEnabled,
		MinPriceThreshold:  input.Body.MinPriceThreshold,
		GoodStatus:         input.Body.GoodStatus,
		MissingInfo:        input.Body.MissingInfo,
		AccessoriesInfo:    input.Body.AccessoriesInfo,
		DetailComment:      input.Body.DetailComment,
		SerialNumber:       input.Body.SerialNumber,
	})
	if err != nil {
		if errors.Is(err, old.ErrNotFound) {
			return nil, huma.Error404NotFound("Record not found")
		}
		if errors.Is(err, old.ErrConflict) {
			return nil, huma.Error409Conflict("Record already exists for this identifier pair")
		}
		return nil, err
	}

	return &getOutput{Body: rec}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, old.ErrNotFound) {
			return nil, huma.Error404NotFound("Record not found")
		}
		return nil, err
	}

	return &deleteOutput{Status: http.StatusNoContent}, nil
}
