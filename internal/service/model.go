package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CategoryType is the direction of every transaction in a category.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

func (c CategoryType) Valid() bool {
	return c == CategoryTypeIncome || c == CategoryTypeExpense
}

func categoryTypeToStorage(c CategoryType) sqlconfig.CategoryType {
	return sqlconfig.CategoryType(c)
}

func categoryTypeFromStorage(c sqlconfig.CategoryType) CategoryType {
	return CategoryType(c)
}

type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// Category is shared with every user when UserID is nil.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	UserID    *uuid.UUID
	IsDefault bool
	CreatedAt time.Time
}

type CategoryInput struct {
	Name string
	Type CategoryType
}

type CategoryPatch struct {
	Name omit.Val[string]
	Type omit.Val[CategoryType]
}

type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description *string
	Date        time.Time
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	CreatedAt   time.Time
}

// TransactionInput creates a transaction. A zero Date means now.
type TransactionInput struct {
	Amount      decimal.Decimal
	Description *string
	Date        time.Time
	CategoryID  uuid.UUID
}

type TransactionPatch struct {
	Amount      omit.Val[decimal.Decimal]
	Description omit.Val[string]
	Date        omit.Val[time.Time]
	CategoryID  omit.Val[uuid.UUID]
}

// TransactionQuery filters a transaction listing. Start and End are
// inclusive.
type TransactionQuery struct {
	CategoryID *uuid.UUID
	Start      *time.Time
	End        *time.Time
	Page
}

type Goal struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	UserID        uuid.UUID
	CreatedAt     time.Time
}

type GoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
}

type GoalPatch struct {
	Name          omit.Val[string]
	TargetAmount  omit.Val[decimal.Decimal]
	CurrentAmount omit.Val[decimal.Decimal]
	Deadline      omit.Val[time.Time]
}

func userFromStorage(row *sqlconfig.User) User {
	return User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      categoryTypeFromStorage(row.Type),
		UserID:    row.UserID,
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt,
	}
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.Date,
		UserID:      row.UserID,
		CategoryID:  row.CategoryID,
		CreatedAt:   row.CreatedAt,
	}
}

func goalFromStorage(row *sqlconfig.Goal) Goal {
	return Goal{
		ID:            row.ID,
		Name:          row.Name,
		TargetAmount:  row.TargetAmount,
		CurrentAmount: row.CurrentAmount,
		Deadline:      row.Deadline,
		UserID:        row.UserID,
		CreatedAt:     row.CreatedAt,
	}
}
