package auth

import (
	"testing"

	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRegisterRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := RegisterRequest{
			Username:        "budi",
			Password:        "rahasia",
			ConfirmPassword: "rahasia",
			FullName:        "Budi Santoso",
			WhatsApp:        strPtr("081234567890"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("collects every field error", func(t *testing.T) {
		req := RegisterRequest{
			Username:        "bu",
			Password:        "123",
			ConfirmPassword: "1234",
			WhatsApp:        strPtr("12345"),
		}
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		fields := verrs.ToMap()
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "password")
		assert.Contains(t, fields, "confirm_password")
		assert.Contains(t, fields, "full_name")
		assert.Contains(t, fields, "whatsapp")
	})

	t.Run("normalize drops blank whatsapp", func(t *testing.T) {
		req := RegisterRequest{Username: "  budi ", WhatsApp: strPtr("   ")}
		req.Normalize()
		assert.Equal(t, "budi", req.Username)
		assert.Nil(t, req.WhatsApp)
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{}
	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)

	req = LoginRequest{Username: "bos", Password: "bos123"}
	assert.NoError(t, req.Validate())
}
