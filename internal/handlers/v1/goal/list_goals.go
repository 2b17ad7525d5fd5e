package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListGoalsInput struct {
	common.PageParams
}

type ListGoalsOutput struct {
	Body []Goal
}

type goalLister interface {
	ListGoals(ctx context.Context, userID uuid.UUID, page service.Page) ([]service.Goal, error)
}

// ListGoalsHandler handles GET /v1/goals.
type ListGoalsHandler struct {
	GoalService goalLister
}

func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, operation("list-goals", http.MethodGet, "/v1/goals", "List goals"), h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}

	goals, err := h.GoalService.ListGoals(ctx, userID, input.Page())
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Goal", "failed to list goals")
	}

	body := make([]Goal, len(goals))
	for i, g := range goals {
		body[i] = fromService(g)
	}
	return &ListGoalsOutput{Body: body}, nil
}
