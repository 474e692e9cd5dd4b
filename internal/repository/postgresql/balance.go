package postgresql

import (
	"context"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type balanceRepositoryImpl struct {
	db database.Querier
}

func NewBalanceRepository(db database.Querier) balance.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

// GetByWorker implements balance.BalanceRepository.
func (r *balanceRepositoryImpl) GetByWorker(ctx context.Context, workerID string) (balance.Balance, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total) FROM work_entries WHERE worker_id = $1 AND status = 'approved'), 0),
			COALESCE((SELECT SUM(amount) FROM bonuses WHERE worker_id = $1), 0),
			COALESCE((SELECT SUM(amount) FROM debts WHERE worker_id = $1 AND status = 'aktif'), 0)
	`

	var gross, bonusTotal, activeDebt decimal.Decimal
	if err := r.db.QueryRow(ctx, query, workerID).Scan(&gross, &bonusTotal, &activeDebt); err != nil {
		return balance.Balance{}, fmt.Errorf("failed to compute balance: %w", err)
	}
	return balance.New(gross, bonusTotal, activeDebt), nil
}

// GetTotals implements balance.BalanceRepository.
func (r *balanceRepositoryImpl) GetTotals(ctx context.Context) (balance.Balance, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total) FROM work_entries WHERE status = 'approved'), 0),
			COALESCE((SELECT SUM(amount) FROM bonuses), 0),
			COALESCE((SELECT SUM(amount) FROM debts WHERE status = 'aktif'), 0)
	`

	var gross, bonusTotal, activeDebt decimal.Decimal
	if err := r.db.QueryRow(ctx, query).Scan(&gross, &bonusTotal, &activeDebt); err != nil {
		return balance.Balance{}, fmt.Errorf("failed to compute totals: %w", err)
	}
	return balance.New(gross, bonusTotal, activeDebt), nil
}
