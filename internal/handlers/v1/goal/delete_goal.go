package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

type goalDeleter interface {
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
}

// DeleteGoalHandler handles DELETE /v1/goals/{id}.
type DeleteGoalHandler struct {
	GoalService goalDeleter
}

func NewDeleteGoalHandler(svc goalDeleter) *DeleteGoalHandler {
	return &DeleteGoalHandler{GoalService: svc}
}

func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, operation("delete-goal", http.MethodDelete, "/v1/goals/{id}", "Delete goal"), h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *IDParam) (*struct{}, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	goalID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.GoalService.DeleteGoal(ctx, userID, goalID); err != nil {
		return nil, common.ServiceError(ctx, err, "Goal", "failed to delete goal")
	}
	return nil, nil
}
