package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/domain/auth"
	"github.com/gajipro/gajipro-backend-go/internal/domain/bonus"
	"github.com/gajipro/gajipro-backend-go/internal/domain/debt"
	"github.com/gajipro/gajipro-backend-go/internal/domain/payslip"
	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	"github.com/gajipro/gajipro-backend-go/internal/domain/reset"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/domain/work"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, user.ErrDuplicateUsername):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrInvalidCurrentPassword):
		BadRequest(w, "Current password is incorrect", map[string]string{"current_password": err.Error()})
	case errors.Is(err, user.ErrInvalidPhotoType):
		BadRequest(w, err.Error(), map[string]string{"photo": err.Error()})
	case errors.Is(err, user.ErrOwnerAccessRequired),
		errors.Is(err, user.ErrWorkerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Ledger errors
	case errors.Is(err, price.ErrPriceNotFound):
		UnprocessableEntity(w, "PRICE_NOT_FOUND", "Price not configured for this size and subtype")
	case errors.Is(err, work.ErrWorkEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, work.ErrInvalidStatus):
		ValidationError(w, map[string]string{"status": err.Error()})
	case errors.Is(err, debt.ErrDebtNotFound):
		NotFound(w, "Debt not found")
	case errors.Is(err, bonus.ErrBonusNotFound):
		NotFound(w, "Bonus not found")
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, reset.ErrResetRecordNotFound):
		NotFound(w, "Reset record not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
