package reset

import (
	"strings"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ResetRequest struct {
	Description string `json:"description,omitempty"`
}

func (r *ResetRequest) Validate() error {
	if !validator.MaxLength(r.Description, 255) {
		return validator.ValidationErrors{{
			Field:   "description",
			Message: "description must not exceed 255 characters",
		}}
	}
	return nil
}

func (r *ResetRequest) DescriptionOrDefault() string {
	if d := strings.TrimSpace(r.Description); d != "" {
		return d
	}
	return DefaultDescription
}

type ResetResponse struct {
	ID                 string          `json:"id"`
	WorkerID           string          `json:"worker_id"`
	WorkerName         *string         `json:"worker_name,omitempty"`
	PriorGrossPay      decimal.Decimal `json:"prior_gross_pay"`
	PriorActiveDebt    decimal.Decimal `json:"prior_active_debt"`
	Description        string          `json:"description"`
	DeletedWorkEntries int64           `json:"deleted_work_entries,omitempty"`
	DeletedBonuses     int64           `json:"deleted_bonuses,omitempty"`
	DeactivatedDebts   int64           `json:"deactivated_debts,omitempty"`
	CreatedAt          string          `json:"created_at"`
}

func NewResetResponse(r Record) ResetResponse {
	return ResetResponse{
		ID:              r.ID,
		WorkerID:        r.WorkerID,
		WorkerName:      r.WorkerName,
		PriorGrossPay:   r.PriorGrossPay,
		PriorActiveDebt: r.PriorActiveDebt,
		Description:     r.Description,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

type ListResetResponse struct {
	Data       []ResetResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
