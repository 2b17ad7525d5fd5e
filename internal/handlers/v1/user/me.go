package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// MeOutput is the Huma output for the current user endpoint.
type MeOutput struct {
	Body User
}

type userGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (service.User, error)
}

// MeHandler handles GET /v1/auth/me.
type MeHandler struct {
	UserService userGetter
}

func NewMeHandler(svc userGetter) *MeHandler {
	return &MeHandler{UserService: svc}
}

func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "me",
		Method:      http.MethodGet,
		Path:        "/v1/auth/me",
		Summary:     "Current user",
		Description: "Returns the user the bearer token belongs to.",
		Tags:        []string{"Auth"},
		Security:    auth.Required,
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *struct{}) (*MeOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}

	me, err := h.UserService.Me(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "User", "failed to load user")
	}
	return &MeOutput{Body: fromService(me)}, nil
}
