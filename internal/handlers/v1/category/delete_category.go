package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /v1/categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	op := operation("delete-category", http.MethodDelete, "/v1/categories/{id}", "Delete category")
	op.Description = "Deletes a category the caller owns. Categories still used by transactions report 409."
	huma.Register(api, op, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *IDParam) (*struct{}, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	categoryID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.DeleteCategory(ctx, userID, categoryID); err != nil {
		return nil, common.ServiceError(ctx, err, "Category", "failed to delete category")
	}
	return nil, nil
}
