package work

import (
	"context"
	"testing"

	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	mock_price "github.com/gajipro/gajipro-backend-go/internal/domain/price/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/work"
	mock_work "github.com/gajipro/gajipro-backend-go/internal/domain/work/mock"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestWorkService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("total is quantity times unit price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		workRepo := mock_work.NewMockWorkRepository(ctrl)
		priceRepo := mock_price.NewMockPriceRepository(ctrl)
		svc := NewWorkService(workRepo, priceRepo)

		priceRepo.EXPECT().FindBySizeSubtype(ctx, "besar", strPtr("tipis")).Return(price.Price{
			ID: "price-1", Size: "besar", Subtype: strPtr("tipis"), UnitPrice: decimal.NewFromInt(33000),
		}, nil)
		workRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e work.Entry) (work.Entry, error) {
			assert.True(t, decimal.NewFromInt(165000).Equal(e.Total))
			assert.Equal(t, work.StatusPending, e.Status)
			assert.Equal(t, "worker-1", e.WorkerID)
			e.ID = "entry-1"
			return e, nil
		})

		resp, err := svc.Submit(ctx, "worker-1", work.SubmitWorkRequest{Size: " Besar ", Subtype: strPtr("TIPIS"), Quantity: 5})
		require.NoError(t, err)
		assert.Equal(t, "165000", resp.Total.String())
		assert.Equal(t, "33000", resp.UnitPrice.String())
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("missing price writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		workRepo := mock_work.NewMockWorkRepository(ctrl)
		priceRepo := mock_price.NewMockPriceRepository(ctrl)
		svc := NewWorkService(workRepo, priceRepo)

		priceRepo.EXPECT().FindBySizeSubtype(ctx, "raksasa", nil).Return(price.Price{}, price.ErrPriceNotFound)

		_, err := svc.Submit(ctx, "worker-1", work.SubmitWorkRequest{Size: "raksasa", Quantity: 1})
		assert.ErrorIs(t, err, price.ErrPriceNotFound)
	})

	t.Run("total beyond the money column is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		workRepo := mock_work.NewMockWorkRepository(ctrl)
		priceRepo := mock_price.NewMockPriceRepository(ctrl)
		svc := NewWorkService(workRepo, priceRepo)

		priceRepo.EXPECT().FindBySizeSubtype(ctx, "besar", nil).Return(price.Price{
			ID: "price-1", Size: "besar", UnitPrice: decimal.NewFromInt(10_000_000),
		}, nil)

		_, err := svc.Submit(ctx, "worker-1", work.SubmitWorkRequest{Size: "besar", Quantity: 2_000_000})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "quantity", verrs[0].Field)
	})

	t.Run("zero price counts as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		workRepo := mock_work.NewMockWorkRepository(ctrl)
		priceRepo := mock_price.NewMockPriceRepository(ctrl)
		svc := NewWorkService(workRepo, priceRepo)

		priceRepo.EXPECT().FindBySizeSubtype(ctx, "sepeda", nil).Return(price.Price{ID: "p", Size: "sepeda", UnitPrice: decimal.Zero}, nil)

		_, err := svc.Submit(ctx, "worker-1", work.SubmitWorkRequest{Size: "sepeda", Subtype: strPtr(" "), Quantity: 2})
		assert.ErrorIs(t, err, price.ErrPriceNotFound)
	})
}

func TestWorkService_SetStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	workRepo := mock_work.NewMockWorkRepository(ctrl)
	svc := NewWorkService(workRepo, mock_price.NewMockPriceRepository(ctrl))

	workRepo.EXPECT().UpdateStatus(ctx, "entry-1", work.StatusApproved).Return(nil).Times(2)
	require.NoError(t, svc.SetStatus(ctx, "entry-1", work.StatusApproved))
	require.NoError(t, svc.SetStatus(ctx, "entry-1", work.StatusApproved))

	workRepo.EXPECT().UpdateStatus(ctx, "missing", work.StatusRejected).Return(work.ErrWorkEntryNotFound)
	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", work.StatusRejected), work.ErrWorkEntryNotFound)

	assert.ErrorIs(t, svc.SetStatus(ctx, "entry-1", work.StatusPending), work.ErrInvalidStatus)
}

func TestWorkService_ListByWorker(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	workRepo := mock_work.NewMockWorkRepository(ctrl)
	svc := NewWorkService(workRepo, mock_price.NewMockPriceRepository(ctrl))

	workRepo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f work.Filter) ([]work.Entry, int64, error) {
		require.NotNil(t, f.WorkerID)
		assert.Equal(t, "worker-1", *f.WorkerID)
		assert.Equal(t, 2, f.Page)
		assert.Equal(t, work.WorkerPageSize, f.Limit)
		return []work.Entry{{ID: "e1", Quantity: 1, Total: decimal.NewFromInt(25000)}}, 11, nil
	})

	resp, err := svc.ListByWorker(ctx, "worker-1", 2)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(11), resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestWorkService_List_DefaultsToOwnerPageSize(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	workRepo := mock_work.NewMockWorkRepository(ctrl)
	svc := NewWorkService(workRepo, mock_price.NewMockPriceRepository(ctrl))

	status := work.StatusPending
	workRepo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f work.Filter) ([]work.Entry, int64, error) {
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, work.OwnerPageSize, f.Limit)
		assert.Equal(t, &status, f.Status)
		return nil, 0, nil
	})

	resp, err := svc.List(ctx, work.Filter{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.TotalPages)
}
