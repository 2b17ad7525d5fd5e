package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const (
	minPasswordLength = 8
	// bcrypt refuses longer input.
	maxPasswordBytes = 72
	maxEmailLength   = 255
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	AccessToken string
	TokenType   string
	User        User
}

// UserService handles registration, login and token authentication.
type UserService struct {
	storage   *storage.Storage
	processor ActionProcessor
	tokens    TokenIssuer
}

func NewUserService(store *storage.Storage, processor ActionProcessor, tokens TokenIssuer) *UserService {
	return &UserService{storage: store, processor: processor, tokens: tokens}
}

// Register creates a user. Usernames are 3 to 50 characters, the email must
// parse as an address of at most 255 characters and passwords are at least
// 8 characters and at most 72 bytes.
func (s *UserService) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return User{}, invalid("username must be between 3 and 50 characters")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return User{}, invalid("email is not a valid address")
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return User{}, invalid("email must be at most %d characters", maxEmailLength)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return User{}, invalid("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return User{}, invalid("password must be at most %d bytes", maxPasswordBytes)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("UserService.Register: hash password: %w", err)
	}

	action := &actions.RegisterUser{Username: username, Email: email, PasswordHash: hash}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, sqlconfig.ErrDuplicate) {
			return User{}, fmt.Errorf("UserService.Register: %w: username or email already registered", ErrConflict)
		}
		return User{}, storageError("UserService.Register", err)
	}

	row, err := s.storage.Users.FindByID(ctx, action.CreatedID)
	if err != nil {
		return User{}, storageError("UserService.Register", err)
	}
	return userFromStorage(row), nil
}

// Login checks the credentials and issues an access token.
func (s *UserService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	row, err := s.storage.Users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return LoginResult{}, fmt.Errorf("UserService.Login: %w: incorrect username or password", ErrUnauthorized)
	}
	if err != nil {
		return LoginResult{}, storageError("UserService.Login", err)
	}

	if err := auth.CheckPassword(row.PasswordHash, password); err != nil {
		return LoginResult{}, fmt.Errorf("UserService.Login: %w: incorrect username or password", ErrUnauthorized)
	}

	token, err := s.tokens.Issue(row.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("UserService.Login: %w", err)
	}
	return LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        userFromStorage(row),
	}, nil
}

// Authenticate resolves an access token to a user that still exists.
func (s *UserService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("UserService.Authenticate: %w: %w", ErrUnauthorized, err)
	}

	if _, err := s.storage.Users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("UserService.Authenticate: %w: unknown user", ErrUnauthorized)
		}
		return uuid.Nil, storageError("UserService.Authenticate", err)
	}
	return userID, nil
}

// Me returns the user behind userID.
func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (User, error) {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return User{}, storageError("UserService.Me", err)
	}
	return userFromStorage(row), nil
}
