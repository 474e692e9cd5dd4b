package bonus

import (
	"time"

	"github.com/shopspring/decimal"
)

// PageSize is the owner's bonus list page size.
const PageSize = 15

// Bonus is discretionary extra pay. It is never edited, only deleted.
type Bonus struct {
	ID          string
	WorkerID    string
	WorkerName  *string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

type Filter struct {
	WorkerID *string
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
