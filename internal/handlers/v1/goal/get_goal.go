package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type GetGoalOutput struct {
	Body Goal
}

type goalGetter interface {
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (service.Goal, error)
}

// GetGoalHandler handles GET /v1/goals/{id}.
type GetGoalHandler struct {
	GoalService goalGetter
}

func NewGetGoalHandler(svc goalGetter) *GetGoalHandler {
	return &GetGoalHandler{GoalService: svc}
}

func (h *GetGoalHandler) Register(api huma.API) {
	huma.Register(api, operation("get-goal", http.MethodGet, "/v1/goals/{id}", "Get goal"), h.handle)
}

func (h *GetGoalHandler) handle(ctx context.Context, input *IDParam) (*GetGoalOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	goalID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	g, err := h.GoalService.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Goal", "failed to load goal")
	}
	return &GetGoalOutput{Body: fromService(g)}, nil
}
