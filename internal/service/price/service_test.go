package price

import (
	"context"
	"errors"
	"testing"

	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	mock_price "github.com/gajipro/gajipro-backend-go/internal/domain/price/mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceService_Lookup(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_price.NewMockPriceRepository(ctrl)
	svc := NewPriceService(repo)

	semi := "semi"
	repo.EXPECT().FindBySizeSubtype(ctx, "jumbo", &semi).Return(price.Price{UnitPrice: decimal.NewFromInt(40000)}, nil)
	got, err := svc.Lookup(ctx, "JUMBO", &semi)
	require.NoError(t, err)
	assert.Equal(t, "40000", got.String())

	repo.EXPECT().FindBySizeSubtype(ctx, "sepeda_mini", nil).Return(price.Price{}, price.ErrPriceNotFound)
	got, err = svc.Lookup(ctx, "sepeda mini", nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	storeErr := errors.New("boom")
	repo.EXPECT().FindBySizeSubtype(ctx, "kecil", nil).Return(price.Price{}, storeErr)
	_, err = svc.Lookup(ctx, "kecil", nil)
	assert.ErrorIs(t, err, storeErr)
}

func TestPriceService_Upsert(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_price.NewMockPriceRepository(ctrl)
	svc := NewPriceService(repo)

	req := price.UpsertPriceRequest{Size: "Sepeda Mini", Price: decimal.NewFromInt(22000)}
	req.Normalize()

	repo.EXPECT().Upsert(ctx, "sepeda_mini", nil, req.Price).Return(price.Price{ID: "p1", Size: "sepeda_mini", UnitPrice: req.Price}, nil)

	resp, err := svc.Upsert(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "sepeda_mini", resp.Label)
}
