package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
	"github.com/tsogoo/minimart/internal/domain/repository"
)

// LedgerUseCase manages user cash balances.
type LedgerUseCase struct {
	users repository.UserRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(users repository.UserRepository) *LedgerUseCase {
	return &LedgerUseCase{users: users}
}

// Balance returns the current balance of the user.
func (u *LedgerUseCase) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return usr.Balance, nil
}

// TopUp credits the user's balance.
func (u *LedgerUseCase) TopUp(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainErrors.ErrNegativeAmount
	}
	return u.users.AddBalance(ctx, userID, amount)
}
