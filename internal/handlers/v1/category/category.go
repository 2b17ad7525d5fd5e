package category

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Category is the API response model for a category. Shared categories have
// no user_id.
type Category struct {
	ID        string  `json:"id" doc:"Category UUID"`
	Name      string  `json:"name" doc:"Category name"`
	Type      string  `json:"type" enum:"income,expense" doc:"Direction of the category's transactions"`
	UserID    *string `json:"user_id" doc:"Owner UUID, null for shared categories"`
	IsDefault bool    `json:"is_default" doc:"Whether the category is one of the seeded defaults"`
	CreatedAt string  `json:"created_at" doc:"RFC3339 creation time"`
}

func fromService(c service.Category) Category {
	out := Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		IsDefault: c.IsDefault,
		CreatedAt: common.FormatTime(c.CreatedAt),
	}
	if c.UserID != nil {
		owner := c.UserID.String()
		out.UserID = &owner
	}
	return out
}

// IDParam selects a single category.
type IDParam struct {
	ID string `path:"id" format:"uuid" doc:"Category UUID"`
}

func operation(id, method, path, summary string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      method,
		Path:        path,
		Summary:     summary,
		Tags:        []string{"Categories"},
		Security:    auth.Required,
	}
}
