package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gajipro/gajipro-backend-go/internal/domain/auth"
	"github.com/gajipro/gajipro-backend-go/internal/domain/debt"
	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "quantity", Message: "quantity must be greater than 0"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"price missing", fmt.Errorf("submit: %w", price.ErrPriceNotFound), http.StatusUnprocessableEntity, "PRICE_NOT_FOUND"},
		{"worker missing", user.ErrWorkerNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"debt missing", debt.ErrDebtNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"duplicate username", user.ErrDuplicateUsername, http.StatusConflict, "CONFLICT"},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"role gate", user.ErrOwnerAccessRequired, http.StatusForbidden, "FORBIDDEN"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: password authentication failed"))
	assert.NotContains(t, rec.Body.String(), "password authentication")
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 15, 31)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(31), meta.TotalItems)
	assert.Equal(t, 0, NewMeta(1, 10, 0).TotalPages)
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, "slip_gaji_1.pdf", "application/pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="slip_gaji_1.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}
