package user

import (
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// User is the API response model for a user. Password material never
// leaves the service layer.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Username  string `json:"username" doc:"Login name"`
	Email     string `json:"email" doc:"Email address"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

func fromService(u service.User) User {
	return User{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: common.FormatTime(u.CreatedAt),
	}
}
