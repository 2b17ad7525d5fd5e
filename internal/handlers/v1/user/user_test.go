package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, username, email, password string) (service.User, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(service.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, username, password string) (service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(service.LoginResult), args.Error(1)
}

func (m *mockUserService) Me(ctx context.Context, userID uuid.UUID) (service.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.User), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockUserService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewRegisterHandler(svc).Register(api)
	NewLoginHandler(svc).Register(api)
	NewMeHandler(svc).Register(api)
	return api
}

func TestHTTP_Register_Success(t *testing.T) {
	created := service.User{
		ID:        uuid.Must(uuid.NewV4()),
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	svc := new(mockUserService)
	svc.On("Register", mock.Anything, "alice", "alice@example.com", "12345678").Return(created, nil)

	resp := newTestAPI(t, svc).Post("/v1/auth/register", RegisterBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "12345678",
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.Equal(t, "2025-01-01T00:00:00Z", body.CreatedAt)
	assert.NotContains(t, resp.Body.String(), "password")
	svc.AssertExpectations(t)
}

func TestHTTP_Register_Duplicate(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(service.User{}, fmt.Errorf("%w: username or email already registered", service.ErrConflict))

	resp := newTestAPI(t, svc).Post("/v1/auth/register", RegisterBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "12345678",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_Register_ShortPassword(t *testing.T) {
	svc := new(mockUserService)

	resp := newTestAPI(t, svc).Post("/v1/auth/register", RegisterBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_Register_OversizedFields(t *testing.T) {
	tests := []struct {
		name string
		body RegisterBody
	}{
		{"long password", RegisterBody{Username: "alice", Email: "alice@example.com", Password: strings.Repeat("p", 73)}},
		{"long email", RegisterBody{Username: "alice", Email: strings.Repeat("a", 244) + "@example.com", Password: "12345678"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockUserService)

			resp := newTestAPI(t, svc).Post("/v1/auth/register", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHTTP_Register_InvalidEmail(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Register", mock.Anything, "bob", "not-an-email", "12345678").
		Return(service.User{}, fmt.Errorf("%w: invalid email", service.ErrInvalidArgument))

	resp := newTestAPI(t, svc).Post("/v1/auth/register", RegisterBody{
		Username: "bob",
		Email:    "not-an-email",
		Password: "12345678",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Login_Success(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Login", mock.Anything, "alice", "12345678").Return(service.LoginResult{
		AccessToken: "signed.jwt.value",
		TokenType:   "bearer",
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/auth/login", LoginBody{Username: "alice", Password: "12345678"})

	require.Equal(t, http.StatusOK, resp.Code)
	var body Token
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Token{AccessToken: "signed.jwt.value", TokenType: "bearer"}, body)
}

func TestHTTP_Login_WrongPassword(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Login", mock.Anything, "alice", "wrong").
		Return(service.LoginResult{}, fmt.Errorf("UserService.Login: %w", service.ErrUnauthorized))

	resp := newTestAPI(t, svc).Post("/v1/auth/login", LoginBody{Username: "alice", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Bearer", resp.Header().Get("WWW-Authenticate"))
}

func TestHTTP_Me(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	svc := new(mockUserService)
	svc.On("Me", mock.Anything, userID).Return(service.User{ID: userID, Username: "alice"}, nil)

	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.ContextWithUserID(ctx.Context(), userID)))
	})
	NewMeHandler(svc).Register(api)

	resp := api.Get("/v1/auth/me")

	require.Equal(t, http.StatusOK, resp.Code)
	var body User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "alice", body.Username)
}

func TestHTTP_Me_NoUser(t *testing.T) {
	svc := new(mockUserService)

	resp := newTestAPI(t, svc).Get("/v1/auth/me")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
}
