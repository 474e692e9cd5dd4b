package payslip

import (
	"testing"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPeriod(t *testing.T) {
	assert.Equal(t, "Juni 2024", DefaultPeriod(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Januari 2025", DefaultPeriod(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Desember 2023", DefaultPeriod(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestNewSnapshot(t *testing.T) {
	b := balance.New(decimal.NewFromInt(165000), decimal.NewFromInt(10000), decimal.NewFromInt(5000))
	p := NewSnapshot("w1", "Juni 2024", b)

	assert.Equal(t, "w1", p.WorkerID)
	assert.Equal(t, "Juni 2024", p.Period)
	assert.True(t, decimal.NewFromInt(170000).Equal(p.NetPay))
}

func TestPayslip_Filename(t *testing.T) {
	assert.Equal(t, "slip_gaji_abc.pdf", Payslip{ID: "abc"}.Filename())
}
