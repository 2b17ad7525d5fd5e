package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type GetCategoryOutput struct {
	Body Category
}

type categoryGetter interface {
	GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (service.Category, error)
}

// GetCategoryHandler handles GET /v1/categories/{id}.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, operation("get-category", http.MethodGet, "/v1/categories/{id}", "Get category"), h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *IDParam) (*GetCategoryOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	categoryID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Category", "failed to load category")
	}
	return &GetCategoryOutput{Body: fromService(category)}, nil
}
