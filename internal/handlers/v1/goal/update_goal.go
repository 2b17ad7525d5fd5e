package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateGoalBody changes only the fields it carries.
type UpdateGoalBody struct {
	Name          *string `json:"name,omitempty" minLength:"1" maxLength:"100" doc:"New name"`
	TargetAmount  *string `json:"target_amount,omitempty" doc:"New target amount"`
	CurrentAmount *string `json:"current_amount,omitempty" doc:"New saved amount"`
	Deadline      *string `json:"deadline,omitempty" doc:"New deadline"`
}

type UpdateGoalInput struct {
	IDParam
	Body UpdateGoalBody
}

type UpdateGoalOutput struct {
	Body Goal
}

type goalUpdater interface {
	UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, patch service.GoalPatch) (service.Goal, error)
}

// UpdateGoalHandler handles PUT /v1/goals/{id}.
type UpdateGoalHandler struct {
	GoalService goalUpdater
}

func NewUpdateGoalHandler(svc goalUpdater) *UpdateGoalHandler {
	return &UpdateGoalHandler{GoalService: svc}
}

func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, operation("update-goal", http.MethodPut, "/v1/goals/{id}", "Update goal"), h.handle)
}

func parseUpdateGoalBody(body UpdateGoalBody) (service.GoalPatch, error) {
	var patch service.GoalPatch
	if body.Name != nil {
		patch.Name.Set(*body.Name)
	}
	if body.TargetAmount != nil {
		target, err := parseAmount("target_amount", *body.TargetAmount)
		if err != nil {
			return patch, err
		}
		patch.TargetAmount.Set(target)
	}
	if body.CurrentAmount != nil {
		current, err := parseAmount("current_amount", *body.CurrentAmount)
		if err != nil {
			return patch, err
		}
		patch.CurrentAmount.Set(current)
	}
	if body.Deadline != nil {
		deadline, err := parseDeadline(*body.Deadline)
		if err != nil {
			return patch, err
		}
		if deadline != nil {
			patch.Deadline.Set(*deadline)
		}
	}
	return patch, nil
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	goalID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := parseUpdateGoalBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.GoalService.UpdateGoal(ctx, userID, goalID, patch)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Goal", "failed to update goal")
	}
	return &UpdateGoalOutput{Body: fromService(updated)}, nil
}
