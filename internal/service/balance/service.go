package balance

import (
	"context"

	"github.com/gajipro/gajipro-backend-go/internal/domain/balance"
)

type BalanceServiceImpl struct {
	balance.BalanceRepository
}

func NewBalanceService(balanceRepository balance.BalanceRepository) balance.BalanceService {
	return &BalanceServiceImpl{
		BalanceRepository: balanceRepository,
	}
}

// Balances implements balance.BalanceService. Every call reads the ledgers.
func (s *BalanceServiceImpl) Balances(ctx context.Context, workerID string) (balance.Balance, error) {
	return s.GetByWorker(ctx, workerID)
}
