package reset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetRequest_DescriptionOrDefault(t *testing.T) {
	assert.Equal(t, DefaultDescription, (&ResetRequest{}).DescriptionOrDefault())
	assert.Equal(t, DefaultDescription, (&ResetRequest{Description: "   "}).DescriptionOrDefault())
	assert.Equal(t, "Tutup buku Juni", (&ResetRequest{Description: " Tutup buku Juni "}).DescriptionOrDefault())
}

func TestResetRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ResetRequest{}).Validate())
	assert.Error(t, (&ResetRequest{Description: strings.Repeat("x", 256)}).Validate())
}
