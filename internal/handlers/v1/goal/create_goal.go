package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateGoalBody is the request body for creating a goal.
type CreateGoalBody struct {
	Name          string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Goal name"`
	TargetAmount  string `json:"target_amount" required:"true" doc:"Decimal amount to reach, must be positive"`
	CurrentAmount string `json:"current_amount,omitempty" doc:"Decimal amount saved so far, defaults to 0"`
	Deadline      string `json:"deadline,omitempty" doc:"Optional deadline"`
}

type CreateGoalInput struct {
	Body CreateGoalBody
}

type CreateGoalOutput struct {
	Body Goal
}

type goalCreator interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, input service.GoalInput) (service.Goal, error)
}

// CreateGoalHandler handles POST /v1/goals.
type CreateGoalHandler struct {
	GoalService goalCreator
}

func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

func (h *CreateGoalHandler) Register(api huma.API) {
	op := operation("create-goal", http.MethodPost, "/v1/goals", "Create goal")
	op.DefaultStatus = http.StatusCreated
	huma.Register(api, op, h.handle)
}

func parseCreateGoalBody(body CreateGoalBody) (service.GoalInput, error) {
	input := service.GoalInput{Name: body.Name}

	var err error
	if input.TargetAmount, err = parseAmount("target_amount", body.TargetAmount); err != nil {
		return input, err
	}
	if body.CurrentAmount != "" {
		if input.CurrentAmount, err = parseAmount("current_amount", body.CurrentAmount); err != nil {
			return input, err
		}
	}
	if input.Deadline, err = parseDeadline(body.Deadline); err != nil {
		return input, err
	}
	return input, nil
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	goalInput, err := parseCreateGoalBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.GoalService.CreateGoal(ctx, userID, goalInput)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Goal", "failed to create goal")
	}
	return &CreateGoalOutput{Body: fromService(created)}, nil
}
