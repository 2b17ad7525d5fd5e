package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*UsersTable)(nil)

var userColumns = []any{"id", "username", "email", "password_hash", "created_at"}

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findOne(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

// FindByUsername retrieves a user by their unique username.
func (t *UsersTable) FindByUsername(ctx context.Context, username string) (*User, error) {
	return t.findOne(ctx, psql.Quote("username").EQ(psql.Arg(username)))
}

// ExistsByUsernameOrEmail reports whether either identifier is taken.
func (t *UsersTable) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From(psql.Quote("users")),
		sm.Where(psql.Or(
			psql.Quote("username").EQ(psql.Arg(username)),
			psql.Quote("email").EQ(psql.Arg(email)),
		)),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, classify(err)
	}
	return count > 0, nil
}

// Insert creates a new user and returns its generated ID.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(psql.Quote("users"), "username", "email", "password_hash"),
		im.Values(psql.Arg(create.Username), psql.Arg(create.Email), psql.Arg(create.PasswordHash)),
		im.Returning(psql.Quote("id")),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, classify(err)
	}
	return id, nil
}

func (t *UsersTable) findOne(ctx context.Context, where bob.Expression) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From(psql.Quote("users")),
		sm.Where(where),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, classify(err)
	}
	row.CreatedAt = row.CreatedAt.UTC()
	return &row, nil
}
