package price

import (
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertPriceRequest struct {
	Size    string          `json:"size"`
	Subtype *string         `json:"subtype,omitempty"`
	Price   decimal.Decimal `json:"price"`
}

func (r *UpsertPriceRequest) Normalize() {
	r.Size = NormalizeSize(r.Size)
	r.Subtype = NormalizeSubtype(r.Subtype)
}

func (r *UpsertPriceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Size) {
		errs = append(errs, validator.ValidationError{
			Field:   "size",
			Message: "size is required",
		})
	} else if !validator.MaxLength(r.Size, 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "size",
			Message: "size must not exceed 50 characters",
		})
	}
	if r.Subtype != nil && !validator.MaxLength(*r.Subtype, 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "subtype",
			Message: "subtype must not exceed 50 characters",
		})
	}
	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must not be negative",
		})
	} else if !r.Price.Equal(r.Price.Truncate(0)) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be a whole number",
		})
	} else if !validator.IsStorableAmount(r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price is too large",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PriceResponse struct {
	ID        string          `json:"id"`
	Size      string          `json:"size"`
	Subtype   *string         `json:"subtype"`
	Label     string          `json:"label"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt string          `json:"updated_at"`
}

func NewPriceResponse(p Price) PriceResponse {
	return PriceResponse{
		ID:        p.ID,
		Size:      p.Size,
		Subtype:   p.Subtype,
		Label:     p.Label(),
		Price:     p.UnitPrice,
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}
