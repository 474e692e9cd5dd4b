package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleWorker Role = "karyawan" // Submits work, sees own balances
	RoleOwner  Role = "bos"      // Approves work, manages ledgers and prices
)

func (r Role) IsValid() bool {
	return r == RoleWorker || r == RoleOwner
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	FullName     string
	WhatsApp     *string
	Photo        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOwner checks if user is the business owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsWorker checks if user is a worker
func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}

// CanAccessWorker reports whether the actor may read data owned by workerID.
func (a Actor) CanAccessWorker(workerID string) bool {
	return a.IsOwner() || a.UserID == workerID
}

// WorkerSummary is a worker together with their ledger totals.
type WorkerSummary struct {
	User
	GrossPay   decimal.Decimal
	ActiveDebt decimal.Decimal
	TotalBonus decimal.Decimal
}
