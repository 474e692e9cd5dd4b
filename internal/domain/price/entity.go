package price

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Price maps a (size, subtype) pair to a unit price. A nil Subtype is its
// own match class.
type Price struct {
	ID        string
	Size      string
	Subtype   *string
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Label renders "besar tipis" or "sepeda_mini".
func (p Price) Label() string {
	if p.Subtype == nil {
		return p.Size
	}
	return p.Size + " " + *p.Subtype
}

// NormalizeSize lower-cases and replaces inner spaces with underscores.
func NormalizeSize(size string) string {
	size = strings.ToLower(strings.TrimSpace(size))
	return strings.Join(strings.Fields(size), "_")
}

// NormalizeSubtype lower-cases; blank means no subtype.
func NormalizeSubtype(subtype *string) *string {
	if subtype == nil {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(*subtype))
	if s == "" {
		return nil
	}
	return &s
}

// Default is the table seeded on first start.
func Default() []Price {
	tipis, semi := "tipis", "semi"
	return []Price{
		{Size: "besar", Subtype: &tipis, UnitPrice: decimal.NewFromInt(33000)},
		{Size: "besar", Subtype: &semi, UnitPrice: decimal.NewFromInt(37000)},
		{Size: "kecil", Subtype: &tipis, UnitPrice: decimal.NewFromInt(27000)},
		{Size: "kecil", Subtype: &semi, UnitPrice: decimal.NewFromInt(30000)},
		{Size: "sepeda", UnitPrice: decimal.NewFromInt(25000)},
		{Size: "sepeda_mini", UnitPrice: decimal.NewFromInt(22000)},
		{Size: "jumbo", Subtype: &tipis, UnitPrice: decimal.NewFromInt(37000)},
		{Size: "jumbo", Subtype: &semi, UnitPrice: decimal.NewFromInt(40000)},
	}
}
