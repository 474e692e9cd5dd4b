package bonus

import (
	"context"
	"strings"

	"github.com/gajipro/gajipro-backend-go/internal/domain/bonus"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
)

type BonusServiceImpl struct {
	bonus.BonusRepository
	userRepository user.UserRepository
}

func NewBonusService(bonusRepository bonus.BonusRepository, userRepository user.UserRepository) bonus.BonusService {
	return &BonusServiceImpl{
		BonusRepository: bonusRepository,
		userRepository:  userRepository,
	}
}

// Add implements bonus.BonusService.
func (s *BonusServiceImpl) Add(ctx context.Context, req bonus.AddBonusRequest) (bonus.BonusResponse, error) {
	if _, err := s.userRepository.GetWorker(ctx, req.WorkerID); err != nil {
		return bonus.BonusResponse{}, err
	}

	created, err := s.Create(ctx, bonus.Bonus{
		WorkerID:    req.WorkerID,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		return bonus.BonusResponse{}, err
	}
	return bonus.NewBonusResponse(created), nil
}

// Delete implements bonus.BonusService.
func (s *BonusServiceImpl) Delete(ctx context.Context, id string) error {
	return s.BonusRepository.Delete(ctx, id)
}

// List implements bonus.BonusService.
func (s *BonusServiceImpl) List(ctx context.Context, filter bonus.Filter) (bonus.ListBonusResponse, error) {
	filter.Normalize()

	bonuses, total, err := s.BonusRepository.List(ctx, filter)
	if err != nil {
		return bonus.ListBonusResponse{}, err
	}

	return bonus.ListBonusResponse{
		Data:       bonus.NewBonusResponses(bonuses),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Summary implements bonus.BonusService.
func (s *BonusServiceImpl) Summary(ctx context.Context, workerID string) (bonus.WorkerBonusesResponse, error) {
	bonuses, err := s.BonusRepository.ListByWorker(ctx, workerID)
	if err != nil {
		return bonus.WorkerBonusesResponse{}, err
	}
	return bonus.NewWorkerBonusesResponse(bonuses), nil
}

// ListByWorker implements bonus.BonusService.
func (s *BonusServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]bonus.BonusResponse, error) {
	bonuses, err := s.BonusRepository.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return bonus.NewBonusResponses(bonuses), nil
}
