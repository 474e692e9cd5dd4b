package work

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsDecision reports whether s is a status the owner may set.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

const (
	WorkerPageSize = 10
	OwnerPageSize  = 15
)

// Entry is one submitted batch of work. Total is fixed at submission.
type Entry struct {
	ID        string
	WorkerID  string
	PriceID   *string
	Quantity  int
	Total     decimal.Decimal
	Status    Status
	CreatedAt time.Time

	// Joined fields; Size is nil when the price row was deleted
	WorkerName *string
	Size       *string
	Subtype    *string
}

// UnitPrice is the price that was in force at submission.
func (e Entry) UnitPrice() decimal.Decimal {
	if e.Quantity == 0 {
		return decimal.Zero
	}
	return e.Total.Div(decimal.NewFromInt(int64(e.Quantity)))
}

// Filter narrows listings. Zero values mean no filter.
type Filter struct {
	WorkerID   *string
	Status     *Status
	WorkerName *string
	Page       int
	Limit      int
}

func (f *Filter) Normalize(defaultLimit int) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
