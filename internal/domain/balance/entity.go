package balance

import "github.com/shopspring/decimal"

// Balance is the derived pay position of a worker at one instant.
type Balance struct {
	GrossPay   decimal.Decimal
	TotalBonus decimal.Decimal
	ActiveDebt decimal.Decimal
	NetPay     decimal.Decimal
}

// New derives net pay as gross + bonus - active debt. The result may be
// negative when the worker owes the business.
func New(grossPay, totalBonus, activeDebt decimal.Decimal) Balance {
	return Balance{
		GrossPay:   grossPay,
		TotalBonus: totalBonus,
		ActiveDebt: activeDebt,
		NetPay:     grossPay.Add(totalBonus).Sub(activeDebt),
	}
}

func (b Balance) IsZero() bool {
	return b.GrossPay.IsZero() && b.TotalBonus.IsZero() && b.ActiveDebt.IsZero() && b.NetPay.IsZero()
}
