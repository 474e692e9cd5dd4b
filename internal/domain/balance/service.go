package balance

import "context"

type BalanceService interface {
	Balances(ctx context.Context, workerID string) (Balance, error)
}
