package bonus

import (
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AddBonusRequest struct {
	WorkerID    string          `json:"worker_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *AddBonusRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	WorkerName  *string         `json:"worker_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}

func NewBonusResponse(b Bonus) BonusResponse {
	return BonusResponse{
		ID:          b.ID,
		WorkerID:    b.WorkerID,
		WorkerName:  b.WorkerName,
		Amount:      b.Amount,
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func NewBonusResponses(bonuses []Bonus) []BonusResponse {
	responses := make([]BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		responses = append(responses, NewBonusResponse(b))
	}
	return responses
}

type ListBonusResponse struct {
	Data       []BonusResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

type WorkerBonusesResponse struct {
	Bonuses []BonusResponse `json:"bonuses"`
	Total   decimal.Decimal `json:"total"`
}

func NewWorkerBonusesResponse(bonuses []Bonus) WorkerBonusesResponse {
	total := decimal.Zero
	for _, b := range bonuses {
		total = total.Add(b.Amount)
	}
	return WorkerBonusesResponse{Bonuses: NewBonusResponses(bonuses), Total: total}
}
