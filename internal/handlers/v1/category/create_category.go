package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"50" doc:"Category name"`
	Type string `json:"type" required:"true" enum:"income,expense" doc:"income or expense"`
}

type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type CreateCategoryOutput struct {
	Body Category
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, input service.CategoryInput) (service.Category, error)
}

// CreateCategoryHandler handles POST /v1/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	op := operation("create-category", http.MethodPost, "/v1/categories", "Create category")
	op.DefaultStatus = http.StatusCreated
	huma.Register(api, op, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.CategoryService.CreateCategory(ctx, userID, service.CategoryInput{
		Name: input.Body.Name,
		Type: service.CategoryType(input.Body.Type),
	})
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Category", "failed to create category")
	}
	return &CreateCategoryOutput{Body: fromService(created)}, nil
}
