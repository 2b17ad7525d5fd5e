package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// RegisterBody is the request body for creating an account.
type RegisterBody struct {
	Username string `json:"username" required:"true" minLength:"3" maxLength:"50" doc:"Login name"`
	Email    string `json:"email" required:"true" maxLength:"255" doc:"Email address"`
	Password string `json:"password" required:"true" minLength:"8" maxLength:"72" doc:"Plain text password"`
}

// RegisterInput is the Huma input for registration.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registration.
type RegisterOutput struct {
	Body User
}

type userRegistrar interface {
	Register(ctx context.Context, username, email, password string) (service.User, error)
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	UserService userRegistrar
}

func NewRegisterHandler(svc userRegistrar) *RegisterHandler {
	return &RegisterHandler{UserService: svc}
}

func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/v1/auth/register",
		Summary:       "Register",
		Description:   "Creates a user. Usernames and emails are unique.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	created, err := h.UserService.Register(ctx, input.Body.Username, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "User", "failed to register user")
	}
	return &RegisterOutput{Body: fromService(created)}, nil
}
