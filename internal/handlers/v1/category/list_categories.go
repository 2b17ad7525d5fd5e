package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListCategoriesInput struct {
	common.PageParams
}

type ListCategoriesOutput struct {
	Body []Category
}

type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID, page service.Page) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	op := operation("list-categories", http.MethodGet, "/v1/categories", "List categories")
	op.Description = "Returns the caller's categories and the shared ones, ordered by name."
	huma.Register(api, op, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.ListCategories(ctx, userID, input.Page())
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Category", "failed to list categories")
	}
	logging.AddData(ctx, "categoryCount", len(categories))

	body := make([]Category, len(categories))
	for i, c := range categories {
		body[i] = fromService(c)
	}
	return &ListCategoriesOutput{Body: body}, nil
}
