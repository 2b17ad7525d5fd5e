package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// LoginBody is the request body for exchanging credentials for a token.
type LoginBody struct {
	Username string `json:"username" required:"true" doc:"Login name"`
	Password string `json:"password" required:"true" doc:"Plain text password"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginBody
}

// Token is the API response model for a freshly issued access token.
type Token struct {
	AccessToken string `json:"access_token" doc:"Signed bearer token"`
	TokenType   string `json:"token_type" doc:"Always bearer"`
}

// LoginOutput is the Huma output for login.
type LoginOutput struct {
	Body Token
}

type userAuthenticator interface {
	Login(ctx context.Context, username, password string) (service.LoginResult, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	UserService userAuthenticator
}

func NewLoginHandler(svc userAuthenticator) *LoginHandler {
	return &LoginHandler{UserService: svc}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Login",
		Description: "Exchanges a username and password for a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	result, err := h.UserService.Login(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "User", "failed to log in")
	}
	return &LoginOutput{Body: Token{AccessToken: result.AccessToken, TokenType: result.TokenType}}, nil
}
