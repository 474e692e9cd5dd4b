package price

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSize(t *testing.T) {
	assert.Equal(t, "sepeda_mini", NormalizeSize("  Sepeda Mini "))
	assert.Equal(t, "besar", NormalizeSize("BESAR"))
	assert.Equal(t, "super_jumbo_xl", NormalizeSize("super  jumbo XL"))
}

func TestNormalizeSubtype(t *testing.T) {
	blank := "   "
	assert.Nil(t, NormalizeSubtype(nil))
	assert.Nil(t, NormalizeSubtype(&blank))

	semi := " SEMI "
	got := NormalizeSubtype(&semi)
	require.NotNil(t, got)
	assert.Equal(t, "semi", *got)
}

func TestPrice_Label(t *testing.T) {
	tipis := "tipis"
	assert.Equal(t, "besar tipis", Price{Size: "besar", Subtype: &tipis}.Label())
	assert.Equal(t, "sepeda", Price{Size: "sepeda"}.Label())
}

func TestDefault(t *testing.T) {
	prices := Default()
	require.Len(t, prices, 8)
	assert.Equal(t, "besar", prices[0].Size)
	assert.True(t, decimal.NewFromInt(33000).Equal(prices[0].UnitPrice))
}

func TestUpsertPriceRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     UpsertPriceRequest
		wantErr bool
	}{
		{"valid", UpsertPriceRequest{Size: "besar", Price: decimal.NewFromInt(33000)}, false},
		{"zero price allowed", UpsertPriceRequest{Size: "besar", Price: decimal.Zero}, false},
		{"missing size", UpsertPriceRequest{Price: decimal.NewFromInt(1)}, true},
		{"negative", UpsertPriceRequest{Size: "besar", Price: decimal.NewFromInt(-1)}, true},
		{"fractional", UpsertPriceRequest{Size: "besar", Price: decimal.RequireFromString("100.5")}, true},
		{"beyond column", UpsertPriceRequest{Size: "besar", Price: decimal.RequireFromString("10000000000000")}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
