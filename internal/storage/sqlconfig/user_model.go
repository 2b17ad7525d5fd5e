package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record.
type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username     string
	Email        string
	PasswordHash string
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --output . --outpkg sqlconfig --filename mock_IUserTable.go --with-expecter
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
}
