package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type RegisterUser struct {
	Username     string
	Email        string
	PasswordHash string

	CreatedID uuid.UUID
}

func (r *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	taken, err := writer.Users.ExistsByUsernameOrEmail(ctx, r.Username, r.Email)
	if err != nil {
		return err
	}
	if taken {
		return sqlconfig.ErrDuplicate
	}

	id, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	})
	if err != nil {
		return err
	}
	r.CreatedID = id
	return nil
}
