package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// GoalService stores savings goals. It does not track progress.
type GoalService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

func NewGoalService(store *storage.Storage, processor ActionProcessor) *GoalService {
	return &GoalService{storage: store, processor: processor}
}

func validateGoalName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 1 || n > 100 {
		return "", invalid("goal name must be between 1 and 100 characters")
	}
	return name, nil
}

func validateGoalAmounts(target, current *decimal.Decimal) error {
	if target != nil {
		if !target.IsPositive() {
			return invalid("target amount must be positive")
		}
		if err := checkAmountColumn("target amount", *target); err != nil {
			return err
		}
	}
	if current != nil {
		if current.IsNegative() {
			return invalid("current amount must not be negative")
		}
		if err := checkAmountColumn("current amount", *current); err != nil {
			return err
		}
	}
	return nil
}

func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, input GoalInput) (Goal, error) {
	name, err := validateGoalName(input.Name)
	if err != nil {
		return Goal{}, err
	}
	if err := validateGoalAmounts(&input.TargetAmount, &input.CurrentAmount); err != nil {
		return Goal{}, err
	}

	action := &actions.CreateGoal{Create: sqlconfig.GoalCreate{
		UserID:        userID,
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      input.Deadline,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return Goal{}, storageError("GoalService.CreateGoal", err)
	}
	return goalFromStorage(action.Created), nil
}

func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID, page Page) ([]Goal, error) {
	page, err := page.normalize()
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Goals.List(ctx, &sqlconfig.GoalFilter{
		UserID: userID,
		Limit:  page.Limit,
		Offset: page.Skip,
	})
	if err != nil {
		return nil, storageError("GoalService.ListGoals", err)
	}

	goals := make([]Goal, len(rows))
	for i, row := range rows {
		goals[i] = goalFromStorage(row)
	}
	return goals, nil
}

func (s *GoalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (Goal, error) {
	row, err := s.storage.Goals.FindByID(ctx, userID, goalID)
	if err != nil {
		return Goal{}, storageError("GoalService.GetGoal", err)
	}
	return goalFromStorage(row), nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, patch GoalPatch) (Goal, error) {
	action := &actions.UpdateGoal{UserID: userID, GoalID: goalID}
	if name, ok := patch.Name.Get(); ok {
		name, err := validateGoalName(name)
		if err != nil {
			return Goal{}, err
		}
		action.Update.Name.Set(name)
	}
	if target, ok := patch.TargetAmount.Get(); ok {
		if err := validateGoalAmounts(&target, nil); err != nil {
			return Goal{}, err
		}
		action.Update.TargetAmount.Set(target)
	}
	if current, ok := patch.CurrentAmount.Get(); ok {
		if err := validateGoalAmounts(nil, &current); err != nil {
			return Goal{}, err
		}
		action.Update.CurrentAmount.Set(current)
	}
	action.Update.Deadline = patch.Deadline

	if err := s.processor.Process(ctx, action); err != nil {
		return Goal{}, storageError("GoalService.UpdateGoal", err)
	}
	return goalFromStorage(action.Updated), nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	action := &actions.DeleteGoal{UserID: userID, GoalID: goalID}
	if err := s.processor.Process(ctx, action); err != nil {
		return storageError("GoalService.DeleteGoal", err)
	}
	return nil
}
