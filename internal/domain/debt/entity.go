package debt

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive      Status = "aktif"
	StatusSettled     Status = "lunas"
	StatusDeactivated Status = "nonaktif" // set only by a worker reset
)

// PageSize is the owner's debt list page size.
const PageSize = 15

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSettled, StatusDeactivated:
		return true
	}
	return false
}

// Debt is money a worker owes. Amount never changes after creation.
type Debt struct {
	ID          string
	WorkerID    string
	WorkerName  *string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Status      Status
	CreatedAt   time.Time
}

func (d Debt) IsActive() bool {
	return d.Status == StatusActive
}

type Filter struct {
	WorkerID *string
	Status   *Status
	Page     int
	Limit    int
}

func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = PageSize
	}
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
