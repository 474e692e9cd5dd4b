package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.NewFromInt(165000), "Rp 165,000"},
		{decimal.Zero, "Rp 0"},
		{decimal.NewFromInt(-500), "Rp -500"},
		{decimal.NewFromInt(1250000), "Rp 1,250,000"},
		{decimal.RequireFromString("999.50"), "Rp 1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Rupiah(tt.amount))
		})
	}
}
