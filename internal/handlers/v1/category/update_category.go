package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateCategoryBody changes only the fields it carries.
type UpdateCategoryBody struct {
	Name *string `json:"name,omitempty" minLength:"1" maxLength:"50" doc:"New name"`
	Type *string `json:"type,omitempty" enum:"income,expense" doc:"New type"`
}

type UpdateCategoryInput struct {
	IDParam
	Body UpdateCategoryBody
}

type UpdateCategoryOutput struct {
	Body Category
}

type categoryUpdater interface {
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, patch service.CategoryPatch) (service.Category, error)
}

// UpdateCategoryHandler handles PUT /v1/categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	op := operation("update-category", http.MethodPut, "/v1/categories/{id}", "Update category")
	op.Description = "Updates a category the caller owns. Shared categories cannot be changed."
	huma.Register(api, op, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	categoryID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	var patch service.CategoryPatch
	if input.Body.Name != nil {
		patch.Name.Set(*input.Body.Name)
	}
	if input.Body.Type != nil {
		patch.Type.Set(service.CategoryType(*input.Body.Type))
	}

	updated, err := h.CategoryService.UpdateCategory(ctx, userID, categoryID, patch)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Category", "failed to update category")
	}
	return &UpdateCategoryOutput{Body: fromService(updated)}, nil
}
