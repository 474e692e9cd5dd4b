package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Rupiah renders whole rupiah with comma grouping, e.g. "Rp 165,000".
// Negative amounts keep their sign: "Rp -500".
func Rupiah(amount decimal.Decimal) string {
	return printer.Sprintf("Rp %d", amount.Round(0).IntPart())
}
