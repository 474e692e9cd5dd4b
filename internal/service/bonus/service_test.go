package bonus

import (
	"context"
	"testing"

	"github.com/gajipro/gajipro-backend-go/internal/domain/bonus"
	mock_bonus "github.com/gajipro/gajipro-backend-go/internal/domain/bonus/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	mock_user "github.com/gajipro/gajipro-backend-go/internal/domain/user/mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBonusService(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bonuses := mock_bonus.NewMockBonusRepository(ctrl)
	users := mock_user.NewMockUserRepository(ctrl)
	svc := NewBonusService(bonuses, users)

	t.Run("add", func(t *testing.T) {
		users.EXPECT().GetWorker(ctx, "worker-1").Return(user.User{ID: "worker-1"}, nil)
		bonuses.EXPECT().Create(ctx, bonus.Bonus{WorkerID: "worker-1", Amount: decimal.NewFromInt(20000), Description: "lembur"}).
			Return(bonus.Bonus{ID: "bonus-1", WorkerID: "worker-1", Amount: decimal.NewFromInt(20000), Description: "lembur"}, nil)

		resp, err := svc.Add(ctx, bonus.AddBonusRequest{WorkerID: "worker-1", Amount: decimal.NewFromInt(20000), Description: "lembur"})
		require.NoError(t, err)
		assert.Equal(t, "bonus-1", resp.ID)
	})

	t.Run("add to owner", func(t *testing.T) {
		users.EXPECT().GetWorker(ctx, "owner-1").Return(user.User{}, user.ErrWorkerNotFound)

		_, err := svc.Add(ctx, bonus.AddBonusRequest{WorkerID: "owner-1", Amount: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, user.ErrWorkerNotFound)
	})

	t.Run("delete unknown", func(t *testing.T) {
		bonuses.EXPECT().Delete(ctx, "missing").Return(bonus.ErrBonusNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, "missing"), bonus.ErrBonusNotFound)
	})
}

func TestBonusService_ListAndSummary(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bonuses := mock_bonus.NewMockBonusRepository(ctrl)
	svc := NewBonusService(bonuses, mock_user.NewMockUserRepository(ctrl))

	t.Run("list pages at fifteen", func(t *testing.T) {
		bonuses.EXPECT().List(ctx, bonus.Filter{Page: 3, Limit: bonus.PageSize}).Return(nil, int64(31), nil)

		resp, err := svc.List(ctx, bonus.Filter{Page: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Page)
		assert.Equal(t, int64(31), resp.TotalCount)
		assert.NotNil(t, resp.Data)
	})

	t.Run("summary totals", func(t *testing.T) {
		bonuses.EXPECT().ListByWorker(ctx, "worker-1").Return([]bonus.Bonus{
			{ID: "b1", Amount: decimal.NewFromInt(20000)},
			{ID: "b2", Amount: decimal.RequireFromString("1500.50")},
		}, nil)

		resp, err := svc.Summary(ctx, "worker-1")
		require.NoError(t, err)
		assert.Equal(t, "21500.5", resp.Total.String())
		assert.Len(t, resp.Bonuses, 2)
	})
}
