package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/dashboard"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db database.Querier
}

func NewDashboardRepository(db database.Querier) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetLeaderboard ranks workers by approved gross pay in a single query
func (r *dashboardRepositoryImpl) GetLeaderboard(ctx context.Context, limit int) ([]dashboard.LeaderboardEntry, error) {
	query := `
		SELECT u.id, u.full_name, u.photo, COALESCE(SUM(w.total), 0) AS gross_pay
		FROM users u
		LEFT JOIN work_entries w ON w.worker_id = u.id AND w.status = 'approved'
		WHERE u.role = $1
		GROUP BY u.id, u.full_name, u.photo
		ORDER BY gross_pay DESC, u.full_name ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, user.RoleWorker, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []dashboard.LeaderboardEntry
	for rows.Next() {
		var e dashboard.LeaderboardEntry
		if err := rows.Scan(&e.WorkerID, &e.FullName, &e.Photo, &e.GrossPay); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}

	return entries, nil
}

// GetMonthlyApprovedTotals groups approved work by calendar month
func (r *dashboardRepositoryImpl) GetMonthlyApprovedTotals(ctx context.Context, since time.Time) ([]dashboard.MonthlyTotal, error) {
	query := `
		SELECT date_trunc('month', created_at) AS month, COALESCE(SUM(total), 0)
		FROM work_entries
		WHERE status = 'approved' AND created_at >= $1
		GROUP BY month
		ORDER BY month ASC
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []dashboard.MonthlyTotal
	for rows.Next() {
		var m dashboard.MonthlyTotal
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		totals = append(totals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly totals: %w", err)
	}

	return totals, nil
}
