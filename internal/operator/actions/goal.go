package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateGoal struct {
	Create sqlconfig.GoalCreate

	Created *sqlconfig.Goal
}

func (g *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Goals.Insert(ctx, &g.Create)
	if err != nil {
		return err
	}
	g.Created = created
	return nil
}

type UpdateGoal struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Update sqlconfig.GoalUpdate

	Updated *sqlconfig.Goal
}

func (g *UpdateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Goals.Update(ctx, g.UserID, g.GoalID, &g.Update)
	if err != nil {
		return err
	}
	g.Updated = updated
	return nil
}

type DeleteGoal struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

func (g *DeleteGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Goals.Delete(ctx, g.UserID, g.GoalID)
}
