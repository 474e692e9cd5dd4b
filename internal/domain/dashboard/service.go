package dashboard

import (
	"context"
)

// DashboardService defines the interface for dashboard business logic
type DashboardService interface {
	GetWorkerDashboard(ctx context.Context, workerID string) (*WorkerDashboardResponse, error)
	GetOwnerDashboard(ctx context.Context) (*OwnerDashboardResponse, error)
	GetWorkerDetail(ctx context.Context, workerID string) (*WorkerDetailResponse, error)
	GetStatistics(ctx context.Context) (*StatisticsResponse, error)
}
