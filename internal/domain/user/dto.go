package user

import (
	"strings"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	FullName  string  `json:"full_name"`
	WhatsApp  *string `json:"whatsapp,omitempty"`
	PhotoURL  *string `json:"photo_url,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewUserResponse(u User, photoURL *string) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		FullName:  u.FullName,
		WhatsApp:  u.WhatsApp,
		PhotoURL:  photoURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

type UpdateProfileRequest struct {
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	WhatsApp *string `json:"whatsapp,omitempty"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FullName = strings.TrimSpace(r.FullName)
	if r.WhatsApp != nil {
		wa := strings.TrimSpace(*r.WhatsApp)
		if wa == "" {
			r.WhatsApp = nil
		} else {
			r.WhatsApp = &wa
		}
	}
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, numbers, dots, underscores, and hyphens",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if !validator.MaxLength(r.FullName, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 100 characters",
		})
	}

	if r.WhatsApp != nil && !validator.IsValidPhoneNumber(*r.WhatsApp) {
		errs = append(errs, validator.ValidationError{
			Field:   "whatsapp",
			Message: "whatsapp must be a valid Indonesian phone number (08, 62 or +62)",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}
	if !validator.MinLength(r.NewPassword, 6) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 6 characters",
		})
	}
	if r.NewPassword != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password does not match new_password",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WorkerSummaryResponse is one row of the owner's worker list
type WorkerSummaryResponse struct {
	ID         string          `json:"id"`
	Username   string          `json:"username"`
	FullName   string          `json:"full_name"`
	WhatsApp   *string         `json:"whatsapp,omitempty"`
	GrossPay   decimal.Decimal `json:"gross_pay"`
	ActiveDebt decimal.Decimal `json:"active_debt"`
	TotalBonus decimal.Decimal `json:"total_bonus"`
	NetPay     decimal.Decimal `json:"net_pay"`
}

func NewWorkerSummaryResponse(s WorkerSummary) WorkerSummaryResponse {
	return WorkerSummaryResponse{
		ID:         s.ID,
		Username:   s.Username,
		FullName:   s.FullName,
		WhatsApp:   s.WhatsApp,
		GrossPay:   s.GrossPay,
		ActiveDebt: s.ActiveDebt,
		TotalBonus: s.TotalBonus,
		NetPay:     balance.New(s.GrossPay, s.TotalBonus, s.ActiveDebt).NetPay,
	}
}
