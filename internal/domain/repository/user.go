package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tsogoo/minimart/internal/domain/model"
)

// UserRepository describes persistence operations for users and their balances.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string, role model.Role) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	AddBalance(ctx context.Context, userID int64, amount decimal.Decimal) error
}
