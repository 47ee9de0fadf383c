package repository

import (
	"context"

	"github.com/tsogoo/minimart/internal/domain/model"
)

// OrderRepository describes persistence operations for fulfilled orders.
type OrderRepository interface {
	// CreatePaid commits a validated order as a single transaction:
	// every line's stock decrement, the balance debit and the order insert
	// either all apply or none do. Stock and balance are re-verified under
	// row locks so a racing order cannot drive either value negative.
	CreatePaid(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
}
