// Package common holds the pieces every v1 handler shares: resolving the
// authenticated user, parsing date query parameters and translating service
// errors into HTTP errors.
package common

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/timeutil"
)

const unauthorizedMessage = "Could not validate credentials"

// UserID returns the user the auth middleware attached to ctx.
func UserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, unauthorized()
	}
	return userID, nil
}

// ParseDate parses an optional date query parameter. Empty means unset.
func ParseDate(name, value string) (*time.Time, error) {
	parsed, err := timeutil.ParseOptional(value)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return parsed, nil
}

// ServiceError translates err into an HTTP error. resource names the thing
// that was looked up for 404s; failure is the message used for 500s.
func ServiceError(ctx context.Context, err error, resource, failure string) error {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorized()
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, resource+" not found")
	case errors.Is(err, service.ErrConflict):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logging.AddData(ctx, "error", err.Error())
		return huma.NewError(http.StatusServiceUnavailable, failure)
	default:
		logging.AddData(ctx, "error", err.Error())
		return huma.NewError(http.StatusInternalServerError, failure)
	}
}

func unauthorized() error {
	return huma.ErrorWithHeaders(
		huma.NewError(http.StatusUnauthorized, unauthorizedMessage),
		http.Header{"WWW-Authenticate": {"Bearer"}},
	)
}

// FormatTime renders t the way every v1 response does.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatOptionalTime is FormatTime for nullable columns.
func FormatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}

// PageParams are the skip/limit query parameters shared by list endpoints.
// A zero limit selects the service default.
type PageParams struct {
	Skip  int `query:"skip" minimum:"0" doc:"Number of items to skip"`
	Limit int `query:"limit" minimum:"0" maximum:"1000" doc:"Maximum number of items to return, default 100"`
}

func (p PageParams) Page() service.Page {
	return service.Page{Skip: p.Skip, Limit: p.Limit}
}

// ParseID parses a resource id taken from the path.
func ParseID(name, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return id, nil
}
