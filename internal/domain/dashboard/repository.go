package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_dashboard

// LeaderboardEntry is one worker ranked by approved gross pay
type LeaderboardEntry struct {
	WorkerID string
	FullName string
	Photo    *string
	GrossPay decimal.Decimal
}

// MonthlyTotal is the approved work total of one calendar month
type MonthlyTotal struct {
	Month time.Time
	Total decimal.Decimal
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetLeaderboard ranks workers by approved gross pay, highest first
	GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)

	// GetMonthlyApprovedTotals returns approved totals per month since the given month
	GetMonthlyApprovedTotals(ctx context.Context, since time.Time) ([]MonthlyTotal, error)
}
