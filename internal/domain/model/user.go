package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role defines user access level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered shopper with a cash balance.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	Balance      decimal.Decimal
	CreatedAt    time.Time
}
