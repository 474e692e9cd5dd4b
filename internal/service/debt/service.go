package debt

import (
	"context"
	"strings"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/debt"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
)

type DebtServiceImpl struct {
	debt.DebtRepository
	userRepository user.UserRepository
	now            func() time.Time
}

func NewDebtService(debtRepository debt.DebtRepository, userRepository user.UserRepository) debt.DebtService {
	return &DebtServiceImpl{
		DebtRepository: debtRepository,
		userRepository: userRepository,
		now:            time.Now,
	}
}

// Add implements debt.DebtService.
func (s *DebtServiceImpl) Add(ctx context.Context, req debt.AddDebtRequest) (debt.DebtResponse, error) {
	if _, err := s.userRepository.GetWorker(ctx, req.WorkerID); err != nil {
		return debt.DebtResponse{}, err
	}

	created, err := s.Create(ctx, debt.Debt{
		WorkerID:    req.WorkerID,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Date:        req.ParsedDate(s.now()),
		Status:      debt.StatusActive,
	})
	if err != nil {
		return debt.DebtResponse{}, err
	}
	return debt.NewDebtResponse(created), nil
}

// Settle implements debt.DebtService.
func (s *DebtServiceImpl) Settle(ctx context.Context, id string) error {
	return s.DebtRepository.Settle(ctx, id)
}

// List implements debt.DebtService.
func (s *DebtServiceImpl) List(ctx context.Context, filter debt.Filter) (debt.ListDebtResponse, error) {
	filter.Normalize()

	debts, total, err := s.DebtRepository.List(ctx, filter)
	if err != nil {
		return debt.ListDebtResponse{}, err
	}

	return debt.ListDebtResponse{
		Data:       debt.NewDebtResponses(debts),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Summary implements debt.DebtService.
func (s *DebtServiceImpl) Summary(ctx context.Context, workerID string) (debt.WorkerDebtsResponse, error) {
	debts, err := s.DebtRepository.ListByWorker(ctx, workerID)
	if err != nil {
		return debt.WorkerDebtsResponse{}, err
	}
	return debt.NewWorkerDebtsResponse(debts), nil
}

// ListByWorker implements debt.DebtService.
func (s *DebtServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]debt.DebtResponse, error) {
	debts, err := s.DebtRepository.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return debt.NewDebtResponses(debts), nil
}
