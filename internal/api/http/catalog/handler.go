package catalog

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"phonefix/internal/domain/catalog"
)

// Handler serves both catalog levels. The list endpoints stay public for the
// storefront; mutations require a token.
type Handler struct {
	service   catalog.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service catalog.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	// repair-types before {id} so chi does not swallow the literal segment.
	huma.Register(api, h.listRepairTypesOp(), h.listRepairTypes)
	huma.Register(api, h.createRepairTypeOp(), h.createRepairType)
	huma.Register(api, h.updateRepairTypeOp(), h.updateRepairType)
	huma.Register(api, h.deleteRepairTypeOp(), h.deleteRepairType)

	huma.Register(api, h.listCategoriesOp(), h.listCategories)
	huma.Register(api, h.createCategoryOp(), h.createCategory)
	huma.Register(api, h.updateCategoryOp(), h.updateCategory)
	huma.Register(api, h.deleteCategoryOp(), h.deleteCategory)
}

func (h *Handler) listCategories(ctx context.Context, _ *struct{}) (*categoryListOutput, error) {
	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &categoryListOutput{Body: categories}, nil
}

func (h *Handler) createCategory(ctx context.Context, input *categoryInput) (*categoryOutput, error) {
	c, err := h.service.CreateCategory(ctx, catalog.Input{
		Name:      input.Body.Name,
		SortOrder: input.Body.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	return &categoryOutput{Body: c}, nil
}

func (h *Handler) updateCategory(ctx context.Context, input *categoryUpdateInput) (*categoryOutput, error) {
	c, err := h.service.UpdateCategory(ctx, input.ID, catalog.Input{
		Name:      input.Body.Name,
		SortOrder: input.Body.SortOrder,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			return nil, huma.Error404NotFound("Category not found")
		}
		return nil, err
	}

	return &categoryOutput{Body: c}, nil
}

func (h *Handler) deleteCategory(ctx context.Context, input *deleteInput) (*messageOutput, error) {
	if err := h.service.DeleteCategory(ctx, input.ID); err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			return nil, huma.Error404NotFound("Category not found")
		}
		return nil, err
	}

	return &messageOutput{Body: MessageResponse{Message: "Category deleted"}}, nil
}

func (h *Handler) listRepairTypes(ctx context.Context, _ *struct{}) (*repairTypeListOutput, error) {
	repairTypes, err := h.service.ListRepairTypes(ctx)
	if err != nil {
		return nil, err
	}

	return &repairTypeListOutput{Body: repairTypes}, nil
}

func (h *Handler) createRepairType(ctx context.Context, input *repairTypeInput) (*repairTypeOutput, error) {
	rt, err := h.service.CreateRepairType(ctx, catalog.Input{
		Name:      input.Body.Name,
		SortOrder: input.Body.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	return &repairTypeOutput{Body: rt}, nil
}

func (h *Handler) updateRepairType(ctx context.Context, input *repairTypeUpdateInput) (*repairTypeOutput, error) {
	rt, err := h.service.UpdateRepairType(ctx, input.ID, catalog.Input{
		Name:      input.Body.Name,
		SortOrder: input.Body.SortOrder,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrRepairTypeNotFound) {
			return nil, huma.Error404NotFound("Repair type not found")
		}
		return nil, err
	}

	return &repairTypeOutput{Body: rt}, nil
}

func (h *Handler) deleteRepairType(ctx context.Context, input *deleteInput) (*messageOutput, error) {
	if err := h.service.DeleteRepairType(ctx, input.ID); err != nil {
		if errors.Is(err, catalog.ErrRepairTypeNotFound) {
			return nil, huma.Error404NotFound("Repair type not found")
		}
		return nil, err
	}

	return &messageOutput{Body: MessageResponse{Message: "Repair type deleted"}}, nil
}
