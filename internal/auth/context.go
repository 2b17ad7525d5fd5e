package auth

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type userIDKey struct{}

// ContextWithUserID returns a copy of ctx carrying the authenticated user.
func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}
