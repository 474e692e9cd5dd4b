package payslip

import (
	"strings"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipRequest struct {
	// WorkerID is ignored for workers, who always generate their own.
	WorkerID string `json:"worker_id,omitempty"`
	Period   string `json:"period,omitempty"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid id",
		})
	}
	if !validator.MaxLength(strings.TrimSpace(r.Period), 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must not exceed 50 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"worker_id"`
	WorkerName *string         `json:"worker_name,omitempty"`
	Period     string          `json:"period"`
	GrossPay   decimal.Decimal `json:"gross_pay"`
	TotalBonus decimal.Decimal `json:"total_bonus"`
	ActiveDebt decimal.Decimal `json:"active_debt"`
	NetPay     decimal.Decimal `json:"net_pay"`
	CreatedAt  string          `json:"created_at"`
}

func NewPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:         p.ID,
		WorkerID:   p.WorkerID,
		WorkerName: p.WorkerName,
		Period:     p.Period,
		GrossPay:   p.GrossPay,
		TotalBonus: p.TotalBonus,
		ActiveDebt: p.ActiveDebt,
		NetPay:     p.NetPay,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

type ListPayslipResponse struct {
	Data       []PayslipResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
