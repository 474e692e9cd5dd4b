package reset

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultDescription = "Reset gaji periode baru"

// Record is the write-once audit row of a worker reset.
type Record struct {
	ID              string
	WorkerID        string
	PriorGrossPay   decimal.Decimal
	PriorActiveDebt decimal.Decimal
	Description     string
	CreatedAt       time.Time

	// Joined fields
	WorkerName *string
}

// Result reports what a reset touched.
type Result struct {
	Record             Record
	DeletedWorkEntries int64
	DeletedBonuses     int64
	DeactivatedDebts   int64
}

const PageSize = 15
