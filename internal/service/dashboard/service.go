package dashboard

import (
	"context"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	"github.com/gajipro/gajipro-backend-go/internal/domain/bonus"
	"github.com/gajipro/gajipro-backend-go/internal/domain/dashboard"
	"github.com/gajipro/gajipro-backend-go/internal/domain/debt"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/domain/work"
	"github.com/gajipro/gajipro-backend-go/internal/service/file"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	balanceRepository balance.BalanceRepository
	workRepository    work.WorkRepository
	userRepository    user.UserRepository
	debtRepository    debt.DebtRepository
	bonusRepository   bonus.BonusRepository
	fileService       file.FileService
	now               func() time.Time
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	balanceRepository balance.BalanceRepository,
	workRepository work.WorkRepository,
	userRepository user.UserRepository,
	debtRepository debt.DebtRepository,
	bonusRepository bonus.BonusRepository,
	fileService file.FileService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		balanceRepository:   balanceRepository,
		workRepository:      workRepository,
		userRepository:      userRepository,
		debtRepository:      debtRepository,
		bonusRepository:     bonusRepository,
		fileService:         fileService,
		now:                 time.Now,
	}
}

func (s *DashboardServiceImpl) recentEntries(ctx context.Context, workerID *string, limit int) ([]work.WorkEntryResponse, error) {
	entries, _, err := s.workRepository.List(ctx, work.Filter{WorkerID: workerID, Page: 1, Limit: limit})
	if err != nil {
		return nil, err
	}
	return work.NewWorkEntryResponses(entries), nil
}

// GetWorkerDashboard returns own balances, the leaderboard and recent entries in parallel
func (s *DashboardServiceImpl) GetWorkerDashboard(ctx context.Context, workerID string) (*dashboard.WorkerDashboardResponse, error) {
	var (
		b           balance.Balance
		leaderboard []dashboard.LeaderboardEntry
		recent      []work.WorkEntryResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		b, err = s.balanceRepository.GetByWorker(gCtx, workerID)
		return err
	})

	g.Go(func() error {
		var err error
		leaderboard, err = s.GetLeaderboard(gCtx, dashboard.LeaderboardSize)
		return err
	})

	g.Go(func() error {
		var err error
		recent, err = s.recentEntries(gCtx, &workerID, dashboard.WorkerRecentEntries)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.WorkerDashboardResponse{
		Balance:       balance.NewBalanceResponse(workerID, b),
		Leaderboard:   dashboard.NewLeaderboard(leaderboard),
		RecentEntries: recent,
	}, nil
}

// GetOwnerDashboard returns totals across all workers
// 5 goroutines, one query each
func (s *DashboardServiceImpl) GetOwnerDashboard(ctx context.Context) (*dashboard.OwnerDashboardResponse, error) {
	var (
		totals      balance.Balance
		workers     int64
		pending     int64
		leaderboard []dashboard.LeaderboardEntry
		recent      []work.WorkEntryResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals, err = s.balanceRepository.GetTotals(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		workers, err = s.userRepository.CountWorkers(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		pending, err = s.workRepository.CountByStatus(gCtx, work.StatusPending)
		return err
	})

	g.Go(func() error {
		var err error
		leaderboard, err = s.GetLeaderboard(gCtx, dashboard.LeaderboardSize)
		return err
	})

	g.Go(func() error {
		var err error
		recent, err = s.recentEntries(gCtx, nil, dashboard.OwnerRecentEntries)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.OwnerDashboardResponse{
		TotalWorkers:    workers,
		TotalGrossPay:   totals.GrossPay,
		TotalBonus:      totals.TotalBonus,
		TotalPayable:    totals.GrossPay.Add(totals.TotalBonus),
		TotalActiveDebt: totals.ActiveDebt,
		TotalNetPayable: totals.NetPay,
		PendingEntries:  pending,
		Leaderboard:     dashboard.NewLeaderboard(leaderboard),
		RecentEntries:   recent,
	}, nil
}

// GetWorkerDetail returns the owner's view of one worker
func (s *DashboardServiceImpl) GetWorkerDetail(ctx context.Context, workerID string) (*dashboard.WorkerDetailResponse, error) {
	worker, err := s.userRepository.GetWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	var (
		b       balance.Balance
		debts   []debt.Debt
		bonuses []bonus.Bonus
		recent  []work.WorkEntryResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		b, err = s.balanceRepository.GetByWorker(gCtx, workerID)
		return err
	})

	g.Go(func() error {
		var err error
		debts, err = s.debtRepository.ListByWorker(gCtx, workerID)
		return err
	})

	g.Go(func() error {
		var err error
		bonuses, err = s.bonusRepository.ListByWorker(gCtx, workerID)
		return err
	})

	g.Go(func() error {
		var err error
		recent, err = s.recentEntries(gCtx, &workerID, work.WorkerPageSize)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var photoURL *string
	if worker.Photo != nil && *worker.Photo != "" {
		url := s.fileService.URL(*worker.Photo)
		photoURL = &url
	}

	return &dashboard.WorkerDetailResponse{
		Worker:        user.NewUserResponse(worker, photoURL),
		Balance:       balance.NewBalanceResponse(workerID, b),
		Debts:         debt.NewDebtResponses(debts),
		Bonuses:       bonus.NewBonusResponses(bonuses),
		RecentEntries: recent,
	}, nil
}

// GetStatistics returns approved totals for the last 12 months, oldest first.
// Months without approved work are reported as zero.
func (s *DashboardServiceImpl) GetStatistics(ctx context.Context) (*dashboard.StatisticsResponse, error) {
	now := s.now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	since := current.AddDate(0, -(dashboard.StatisticsMonths - 1), 0)

	totals, err := s.GetMonthlyApprovedTotals(ctx, since)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		byMonth[t.Month.Format("2006-01")] = t.Total
	}

	months := make([]dashboard.MonthlyStatItem, 0, dashboard.StatisticsMonths)
	for i := 0; i < dashboard.StatisticsMonths; i++ {
		key := since.AddDate(0, i, 0).Format("2006-01")
		total, ok := byMonth[key]
		if !ok {
			total = decimal.Zero
		}
		months = append(months, dashboard.MonthlyStatItem{Month: key, Total: total})
	}

	return &dashboard.StatisticsResponse{Months: months}, nil
}
