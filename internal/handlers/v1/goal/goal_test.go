package goal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockGoalService struct {
	mock.Mock
}

func (m *mockGoalService) CreateGoal(ctx context.Context, userID uuid.UUID, input service.GoalInput) (service.Goal, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(service.Goal), args.Error(1)
}

func (m *mockGoalService) ListGoals(ctx context.Context, userID uuid.UUID, page service.Page) ([]service.Goal, error) {
	args := m.Called(ctx, userID, page)
	goals, _ := args.Get(0).([]service.Goal)
	return goals, args.Error(1)
}

func (m *mockGoalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (service.Goal, error) {
	args := m.Called(ctx, userID, goalID)
	return args.Get(0).(service.Goal), args.Error(1)
}

func (m *mockGoalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, patch service.GoalPatch) (service.Goal, error) {
	args := m.Called(ctx, userID, goalID, patch)
	return args.Get(0).(service.Goal), args.Error(1)
}

func (m *mockGoalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	return m.Called(ctx, userID, goalID).Error(0)
}

func newTestAPI(t *testing.T, svc *mockGoalService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.ContextWithUserID(ctx.Context(), userID)))
	})
	NewCreateGoalHandler(svc).Register(api)
	NewListGoalsHandler(svc).Register(api)
	NewGetGoalHandler(svc).Register(api)
	NewUpdateGoalHandler(svc).Register(api)
	NewDeleteGoalHandler(svc).Register(api)
	return api
}

func TestParseCreateGoalBody(t *testing.T) {
	input, err := parseCreateGoalBody(CreateGoalBody{
		Name:         "Car",
		TargetAmount: "15000",
		Deadline:     "2026-06-30",
	})

	require.NoError(t, err)
	assert.True(t, input.TargetAmount.Equal(decimal.NewFromInt(15000)))
	assert.True(t, input.CurrentAmount.IsZero())
	require.NotNil(t, input.Deadline)
	assert.True(t, input.Deadline.Equal(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)))
}

func TestParseCreateGoalBody_BadAmount(t *testing.T) {
	_, err := parseCreateGoalBody(CreateGoalBody{Name: "Car", TargetAmount: "a lot"})
	assert.Error(t, err)
}

func TestHTTP_CreateGoal(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())
	svc := new(mockGoalService)
	svc.On("CreateGoal", mock.Anything, userID, mock.MatchedBy(func(in service.GoalInput) bool {
		return in.Name == "Holiday" && in.TargetAmount.Equal(decimal.NewFromInt(2000)) && in.Deadline == nil
	})).Return(service.Goal{
		ID:            goalID,
		Name:          "Holiday",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.Zero,
		UserID:        userID,
	}, nil)

	resp := newTestAPI(t, svc, userID).Post("/v1/goals", CreateGoalBody{Name: "Holiday", TargetAmount: "2000"})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body Goal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, goalID.String(), body.ID)
	assert.Equal(t, "2000", body.TargetAmount)
	assert.Nil(t, body.Deadline)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateGoal_NonPositiveTarget(t *testing.T) {
	svc := new(mockGoalService)
	svc.On("CreateGoal", mock.Anything, mock.Anything, mock.Anything).
		Return(service.Goal{}, fmt.Errorf("%w: target amount must be positive", service.ErrInvalidArgument))

	resp := newTestAPI(t, svc, uuid.Must(uuid.NewV4())).Post("/v1/goals", CreateGoalBody{Name: "Holiday", TargetAmount: "0"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListGoals(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	svc := new(mockGoalService)
	svc.On("ListGoals", mock.Anything, userID, service.Page{}).Return([]service.Goal{}, nil)

	resp := newTestAPI(t, svc, userID).Get("/v1/goals")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_GetGoal_NotFound(t *testing.T) {
	svc := new(mockGoalService)
	svc.On("GetGoal", mock.Anything, mock.Anything, mock.Anything).
		Return(service.Goal{}, fmt.Errorf("op: %w", service.ErrNotFound))

	resp := newTestAPI(t, svc, uuid.Must(uuid.NewV4())).Get("/v1/goals/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateGoal_CurrentAmount(t *testing.T) {
	userID, goalID := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	svc := new(mockGoalService)
	svc.On("UpdateGoal", mock.Anything, userID, goalID, mock.MatchedBy(func(p service.GoalPatch) bool {
		current, ok := p.CurrentAmount.Get()
		return ok && current.Equal(decimal.NewFromInt(250)) && p.Name.IsUnset() && p.Deadline.IsUnset()
	})).Return(service.Goal{ID: goalID, CurrentAmount: decimal.NewFromInt(250)}, nil)

	current := "250"
	resp := newTestAPI(t, svc, userID).Put("/v1/goals/"+goalID.String(), UpdateGoalBody{CurrentAmount: &current})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteGoal(t *testing.T) {
	userID, goalID := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	svc := new(mockGoalService)
	svc.On("DeleteGoal", mock.Anything, userID, goalID).Return(nil)

	resp := newTestAPI(t, svc, userID).Delete("/v1/goals/" + goalID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
