package balance

import "github.com/shopspring/decimal"

type BalanceResponse struct {
	WorkerID   string          `json:"worker_id,omitempty"`
	GrossPay   decimal.Decimal `json:"gross_pay"`
	TotalBonus decimal.Decimal `json:"total_bonus"`
	ActiveDebt decimal.Decimal `json:"active_debt"`
	NetPay     decimal.Decimal `json:"net_pay"`
}

func NewBalanceResponse(workerID string, b Balance) BalanceResponse {
	return BalanceResponse{
		WorkerID:   workerID,
		GrossPay:   b.GrossPay,
		TotalBonus: b.TotalBonus,
		ActiveDebt: b.ActiveDebt,
		NetPay:     b.NetPay,
	}
}
