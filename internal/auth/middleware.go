package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// SecurityScheme is the OpenAPI security scheme name for bearer tokens.
const SecurityScheme = "bearer"

// Required marks an operation as needing a bearer token.
var Required = []map[string][]string{{SecurityScheme: {}}}

// Authenticator resolves a bearer token to an existing user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// NewSecurityScheme describes bearer authentication in the OpenAPI document.
func NewSecurityScheme() *huma.SecurityScheme {
	return &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
}

// Middleware authenticates every operation that declares a security
// requirement. Operations without one pass through untouched.
func Middleware(api huma.API, authenticator Authenticator) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		token, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			unauthorized(api, ctx)
			return
		}

		userID, err := authenticator.Authenticate(ctx.Context(), token)
		if err != nil {
			logrus.WithError(err).Debug("Auth.Middleware.rejected")
			unauthorized(api, ctx)
			return
		}

		logging.AddData(ctx.Context(), "userID", userID.String())
		next(huma.WithContext(ctx, ContextWithUserID(ctx.Context(), userID)))
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(api huma.API, ctx huma.Context) {
	ctx.SetHeader("WWW-Authenticate", "Bearer")
	_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "Could not validate credentials")
}
