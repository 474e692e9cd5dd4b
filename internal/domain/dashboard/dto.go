package dashboard

import (
	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	"github.com/gajipro/gajipro-backend-go/internal/domain/bonus"
	"github.com/gajipro/gajipro-backend-go/internal/domain/debt"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/domain/work"
	"github.com/shopspring/decimal"
)

const (
	LeaderboardSize     = 10
	WorkerRecentEntries = 5
	OwnerRecentEntries  = 10
	StatisticsMonths    = 12
)

type LeaderboardItem struct {
	Rank     int             `json:"rank"`
	WorkerID string          `json:"worker_id"`
	FullName string          `json:"full_name"`
	GrossPay decimal.Decimal `json:"gross_pay"`
}

func NewLeaderboard(entries []LeaderboardEntry) []LeaderboardItem {
	items := make([]LeaderboardItem, 0, len(entries))
	for i, e := range entries {
		items = append(items, LeaderboardItem{
			Rank:     i + 1,
			WorkerID: e.WorkerID,
			FullName: e.FullName,
			GrossPay: e.GrossPay,
		})
	}
	return items
}

// WorkerDashboardResponse is what a worker sees after login
type WorkerDashboardResponse struct {
	Balance       balance.BalanceResponse  `json:"balance"`
	Leaderboard   []LeaderboardItem        `json:"leaderboard"`
	RecentEntries []work.WorkEntryResponse `json:"recent_entries"`
}

// OwnerDashboardResponse is the owner overview across all workers
type OwnerDashboardResponse struct {
	TotalWorkers    int64                    `json:"total_workers"`
	TotalGrossPay   decimal.Decimal          `json:"total_gross_pay"`
	TotalBonus      decimal.Decimal          `json:"total_bonus"`
	TotalPayable    decimal.Decimal          `json:"total_payable"`
	TotalActiveDebt decimal.Decimal          `json:"total_active_debt"`
	TotalNetPayable decimal.Decimal          `json:"total_net_payable"`
	PendingEntries  int64                    `json:"pending_entries"`
	Leaderboard     []LeaderboardItem        `json:"leaderboard"`
	RecentEntries   []work.WorkEntryResponse `json:"recent_entries"`
}

// WorkerDetailResponse is the owner's view of a single worker
type WorkerDetailResponse struct {
	Worker        user.UserResponse        `json:"worker"`
	Balance       balance.BalanceResponse  `json:"balance"`
	Debts         []debt.DebtResponse      `json:"debts"`
	Bonuses       []bonus.BonusResponse    `json:"bonuses"`
	RecentEntries []work.WorkEntryResponse `json:"recent_entries"`
}

type MonthlyStatItem struct {
	Month string          `json:"month"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}

type StatisticsResponse struct {
	Months []MonthlyStatItem `json:"months"`
}
