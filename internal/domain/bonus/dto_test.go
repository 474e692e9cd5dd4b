package bonus

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAddBonusRequest_Validate(t *testing.T) {
	workerID := "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"

	assert.NoError(t, (&AddBonusRequest{WorkerID: workerID, Amount: decimal.NewFromInt(20000), Description: "Lembur"}).Validate())
	assert.Error(t, (&AddBonusRequest{WorkerID: workerID, Amount: decimal.NewFromInt(-5)}).Validate())
	assert.Error(t, (&AddBonusRequest{WorkerID: workerID, Amount: decimal.RequireFromString("0.001")}).Validate())
	assert.Error(t, (&AddBonusRequest{WorkerID: workerID, Amount: decimal.RequireFromString("99999999999999")}).Validate())
	assert.Error(t, (&AddBonusRequest{WorkerID: "", Amount: decimal.NewFromInt(5)}).Validate())
	assert.Error(t, (&AddBonusRequest{WorkerID: workerID, Description: strings.Repeat("x", 256)}).Validate())
}
