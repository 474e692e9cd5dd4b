package work

import "context"

type WorkService interface {
	Submit(ctx context.Context, workerID string, req SubmitWorkRequest) (WorkEntryResponse, error)
	SetStatus(ctx context.Context, entryID string, status Status) error
	ListByWorker(ctx context.Context, workerID string, page int) (ListWorkEntryResponse, error)
	List(ctx context.Context, filter Filter) (ListWorkEntryResponse, error)
}
