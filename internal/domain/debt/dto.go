package debt

import (
	"strings"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AddDebtRequest struct {
	WorkerID    string          `json:"worker_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	// Date is YYYY-MM-DD; today when empty.
	Date string `json:"date,omitempty"`
}

func (r *AddDebtRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid id",
		})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	} else if !validator.IsStorableAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not exceed 9999999999999.99 or have more than 2 decimals",
		})
	}
	if !validator.MaxLength(r.Description, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 255 characters",
		})
	}
	if strings.TrimSpace(r.Date) != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the debt date, defaulting to now.
func (r *AddDebtRequest) ParsedDate(now time.Time) time.Time {
	if date, ok := validator.IsValidDate(r.Date); ok {
		return date
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type DebtResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	WorkerName  *string         `json:"worker_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}

func NewDebtResponse(d Debt) DebtResponse {
	return DebtResponse{
		ID:          d.ID,
		WorkerID:    d.WorkerID,
		WorkerName:  d.WorkerName,
		Amount:      d.Amount,
		Description: d.Description,
		Date:        d.Date.Format("2006-01-02"),
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}

func NewDebtResponses(debts []Debt) []DebtResponse {
	responses := make([]DebtResponse, 0, len(debts))
	for _, d := range debts {
		responses = append(responses, NewDebtResponse(d))
	}
	return responses
}

type ListDebtResponse struct {
	Data       []DebtResponse `json:"data"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

type WorkerDebtsResponse struct {
	Debts        []DebtResponse  `json:"debts"`
	TotalActive  decimal.Decimal `json:"total_active"`
	TotalSettled decimal.Decimal `json:"total_settled"`
}

// NewWorkerDebtsResponse sums aktif and lunas debts. nonaktif ones count in neither.
func NewWorkerDebtsResponse(debts []Debt) WorkerDebtsResponse {
	resp := WorkerDebtsResponse{
		Debts:        NewDebtResponses(debts),
		TotalActive:  decimal.Zero,
		TotalSettled: decimal.Zero,
	}
	for _, d := range debts {
		switch d.Status {
		case StatusActive:
			resp.TotalActive = resp.TotalActive.Add(d.Amount)
		case StatusSettled:
			resp.TotalSettled = resp.TotalSettled.Add(d.Amount)
		}
	}
	return resp
}
