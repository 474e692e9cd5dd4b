package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	mock_balance "github.com/gajipro/gajipro-backend-go/internal/domain/balance/mock"
	mock_bonus "github.com/gajipro/gajipro-backend-go/internal/domain/bonus/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/dashboard"
	mock_dashboard "github.com/gajipro/gajipro-backend-go/internal/domain/dashboard/mock"
	mock_debt "github.com/gajipro/gajipro-backend-go/internal/domain/debt/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	mock_user "github.com/gajipro/gajipro-backend-go/internal/domain/user/mock"
	"github.com/gajipro/gajipro-backend-go/internal/domain/work"
	mock_work "github.com/gajipro/gajipro-backend-go/internal/domain/work/mock"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/storage"
	"github.com/gajipro/gajipro-backend-go/internal/service/file"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardFixture struct {
	repo     *mock_dashboard.MockDashboardRepository
	balances *mock_balance.MockBalanceRepository
	works    *mock_work.MockWorkRepository
	users    *mock_user.MockUserRepository
	debts    *mock_debt.MockDebtRepository
	bonuses  *mock_bonus.MockBonusRepository
	service  *DashboardServiceImpl
}

func newDashboardFixture(t *testing.T) dashboardFixture {
	ctrl := gomock.NewController(t)
	local, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	f := dashboardFixture{
		repo:     mock_dashboard.NewMockDashboardRepository(ctrl),
		balances: mock_balance.NewMockBalanceRepository(ctrl),
		works:    mock_work.NewMockWorkRepository(ctrl),
		users:    mock_user.NewMockUserRepository(ctrl),
		debts:    mock_debt.NewMockDebtRepository(ctrl),
		bonuses:  mock_bonus.NewMockBonusRepository(ctrl),
	}
	f.service = NewDashboardService(f.repo, f.balances, f.works, f.users, f.debts, f.bonuses, file.NewFileService(local)).(*DashboardServiceImpl)
	return f
}

func TestGetOwnerDashboard(t *testing.T) {
	f := newDashboardFixture(t)

	f.balances.EXPECT().GetTotals(gomock.Any()).Return(
		balance.New(decimal.NewFromInt(300000), decimal.NewFromInt(50000), decimal.NewFromInt(100000)), nil,
	)
	f.users.EXPECT().CountWorkers(gomock.Any()).Return(int64(4), nil)
	f.works.EXPECT().CountByStatus(gomock.Any(), work.StatusPending).Return(int64(7), nil)
	f.repo.EXPECT().GetLeaderboard(gomock.Any(), dashboard.LeaderboardSize).Return([]dashboard.LeaderboardEntry{
		{WorkerID: "w1", FullName: "Budi", GrossPay: decimal.NewFromInt(200000)},
		{WorkerID: "w2", FullName: "Siti", GrossPay: decimal.NewFromInt(100000)},
	}, nil)
	f.works.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter work.Filter) ([]work.Entry, int64, error) {
		assert.Nil(t, filter.WorkerID)
		assert.Equal(t, dashboard.OwnerRecentEntries, filter.Limit)
		return []work.Entry{{ID: "e1", Quantity: 1}}, 1, nil
	})

	resp, err := f.service.GetOwnerDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.TotalWorkers)
	assert.Equal(t, int64(7), resp.PendingEntries)
	assert.Equal(t, "350000", resp.TotalPayable.String())
	assert.Equal(t, "250000", resp.TotalNetPayable.String())
	require.Len(t, resp.Leaderboard, 2)
	assert.Equal(t, 1, resp.Leaderboard[0].Rank)
	assert.Equal(t, "Siti", resp.Leaderboard[1].FullName)
	assert.Len(t, resp.RecentEntries, 1)
}

func TestGetWorkerDashboard_PropagatesErrors(t *testing.T) {
	f := newDashboardFixture(t)
	boom := errors.New("boom")

	f.balances.EXPECT().GetByWorker(gomock.Any(), "w1").Return(balance.Balance{}, boom)
	f.repo.EXPECT().GetLeaderboard(gomock.Any(), dashboard.LeaderboardSize).Return(nil, nil).AnyTimes()
	f.works.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil).AnyTimes()

	_, err := f.service.GetWorkerDashboard(context.Background(), "w1")
	assert.ErrorIs(t, err, boom)
}

func TestGetWorkerDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown worker", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.users.EXPECT().GetWorker(ctx, "owner-1").Return(user.User{}, user.ErrWorkerNotFound)

		_, err := f.service.GetWorkerDetail(ctx, "owner-1")
		assert.ErrorIs(t, err, user.ErrWorkerNotFound)
	})

	t.Run("profile with photo url", func(t *testing.T) {
		f := newDashboardFixture(t)
		photo := "photos/w1.jpg"
		f.users.EXPECT().GetWorker(ctx, "w1").Return(user.User{ID: "w1", FullName: "Budi", Role: user.RoleWorker, Photo: &photo}, nil)
		f.balances.EXPECT().GetByWorker(gomock.Any(), "w1").Return(balance.New(decimal.Zero, decimal.Zero, decimal.Zero), nil)
		f.debts.EXPECT().ListByWorker(gomock.Any(), "w1").Return(nil, nil)
		f.bonuses.EXPECT().ListByWorker(gomock.Any(), "w1").Return(nil, nil)
		f.works.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

		resp, err := f.service.GetWorkerDetail(ctx, "w1")
		require.NoError(t, err)
		require.NotNil(t, resp.Worker.PhotoURL)
		assert.Equal(t, "/uploads/photos/w1.jpg", *resp.Worker.PhotoURL)
		assert.True(t, resp.Balance.NetPay.IsZero())
		assert.Empty(t, resp.Debts)
	})
}

func TestGetStatistics_FillsMissingMonths(t *testing.T) {
	f := newDashboardFixture(t)
	f.service.now = func() time.Time { return time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC) }

	f.repo.EXPECT().GetMonthlyApprovedTotals(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, since time.Time) ([]dashboard.MonthlyTotal, error) {
		assert.True(t, since.Equal(time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)))
		return []dashboard.MonthlyTotal{
			{Month: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(66000)},
			{Month: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(165000)},
		}, nil
	})

	resp, err := f.service.GetStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Months, dashboard.StatisticsMonths)
	assert.Equal(t, "2023-07", resp.Months[0].Month)
	assert.Equal(t, "2024-06", resp.Months[11].Month)
	assert.Equal(t, "165000", resp.Months[11].Total.String())
	assert.Equal(t, "66000", resp.Months[8].Total.String())
	assert.True(t, resp.Months[0].Total.IsZero())
}
