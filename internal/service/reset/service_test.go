package reset

import (
	"context"
	"testing"

	"github.com/gajipro/gajipro-backend-go/internal/domain/reset"
	mock_reset "github.com/gajipro/gajipro-backend-go/internal/domain/reset/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResetService_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("default description and counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_reset.NewMockResetRepository(ctrl)
		svc := NewResetService(repo)

		repo.EXPECT().ResetWorker(ctx, "worker-1", reset.DefaultDescription).Return(reset.Result{
			Record: reset.Record{
				ID:              "reset-1",
				WorkerID:        "worker-1",
				PriorGrossPay:   decimal.NewFromInt(99000),
				PriorActiveDebt: decimal.NewFromInt(10000),
				Description:     reset.DefaultDescription,
			},
			DeletedWorkEntries: 3,
			DeletedBonuses:     2,
			DeactivatedDebts:   1,
		}, nil)

		resp, err := svc.Reset(ctx, "worker-1", reset.ResetRequest{})
		require.NoError(t, err)
		assert.Equal(t, "99000", resp.PriorGrossPay.String())
		assert.Equal(t, int64(3), resp.DeletedWorkEntries)
		assert.Equal(t, int64(2), resp.DeletedBonuses)
		assert.Equal(t, int64(1), resp.DeactivatedDebts)
	})

	t.Run("non-worker target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_reset.NewMockResetRepository(ctrl)
		svc := NewResetService(repo)

		repo.EXPECT().ResetWorker(ctx, "owner-1", "Tutup buku").Return(reset.Result{}, user.ErrWorkerNotFound)

		_, err := svc.Reset(ctx, "owner-1", reset.ResetRequest{Description: "Tutup buku"})
		assert.ErrorIs(t, err, user.ErrWorkerNotFound)
	})
}

func TestResetService_History(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock_reset.NewMockResetRepository(ctrl)
	svc := NewResetService(repo)

	repo.EXPECT().List(ctx, 1, reset.PageSize).Return([]reset.Record{{ID: "reset-1"}}, int64(1), nil)

	resp, err := svc.History(ctx, -3)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, reset.PageSize, resp.Limit)
}
