package payslip

import (
	"fmt"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	"github.com/shopspring/decimal"
)

// Payslip is a frozen balance snapshot. Its numbers never change after insert.
type Payslip struct {
	ID         string
	WorkerID   string
	Period     string
	GrossPay   decimal.Decimal
	TotalBonus decimal.Decimal
	ActiveDebt decimal.Decimal
	NetPay     decimal.Decimal
	CreatedAt  time.Time

	// Joined fields
	WorkerName *string
}

// NewSnapshot freezes b under period for workerID.
func NewSnapshot(workerID, period string, b balance.Balance) Payslip {
	return Payslip{
		WorkerID:   workerID,
		Period:     period,
		GrossPay:   b.GrossPay,
		TotalBonus: b.TotalBonus,
		ActiveDebt: b.ActiveDebt,
		NetPay:     b.NetPay,
	}
}

func (p Payslip) Filename() string {
	return fmt.Sprintf("slip_gaji_%s.pdf", p.ID)
}

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// DefaultPeriod is "<month> <year>" in Indonesian, e.g. "Juni 2024".
func DefaultPeriod(now time.Time) string {
	return fmt.Sprintf("%s %d", months[now.Month()-1], now.Year())
}

const (
	PageSize = 10
)

type Filter struct {
	WorkerID *string
	Page     int
	Limit    int
}

// Document is rendered output ready to be streamed to the client.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}
