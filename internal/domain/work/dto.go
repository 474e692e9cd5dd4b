package work

import (
	"math"
	"strings"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitWorkRequest struct {
	Size     string  `json:"size"`
	Subtype  *string `json:"subtype,omitempty"`
	Quantity int     `json:"quantity"`
}

func (r *SubmitWorkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Size) {
		errs = append(errs, validator.ValidationError{
			Field:   "size",
			Message: "size is required",
		})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than 0",
		})
	} else if r.Quantity > validator.MaxQuantity {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity is too large",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !Status(strings.ToLower(r.Status)).IsDecision() {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of: approved, rejected",
		}}
	}
	return nil
}

type WorkEntryResponse struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"worker_id"`
	WorkerName *string         `json:"worker_name,omitempty"`
	Size       *string         `json:"size"`
	Subtype    *string         `json:"subtype"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
}

func NewWorkEntryResponse(e Entry) WorkEntryResponse {
	return WorkEntryResponse{
		ID:         e.ID,
		WorkerID:   e.WorkerID,
		WorkerName: e.WorkerName,
		Size:       e.Size,
		Subtype:    e.Subtype,
		Quantity:   e.Quantity,
		UnitPrice:  e.UnitPrice(),
		Total:      e.Total,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func NewWorkEntryResponses(entries []Entry) []WorkEntryResponse {
	responses := make([]WorkEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, NewWorkEntryResponse(e))
	}
	return responses
}

type ListWorkEntryResponse struct {
	Data       []WorkEntryResponse `json:"data"`
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
