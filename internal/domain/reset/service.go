package reset

import "context"

type ResetService interface {
	Reset(ctx context.Context, workerID string, req ResetRequest) (ResetResponse, error)
	History(ctx context.Context, page int) (ListResetResponse, error)
}
