package reset

import (
	"context"

	"github.com/gajipro/gajipro-backend-go/internal/domain/reset"
)

type ResetServiceImpl struct {
	reset.ResetRepository
}

func NewResetService(resetRepository reset.ResetRepository) reset.ResetService {
	return &ResetServiceImpl{
		ResetRepository: resetRepository,
	}
}

// Reset implements reset.ResetService.
func (s *ResetServiceImpl) Reset(ctx context.Context, workerID string, req reset.ResetRequest) (reset.ResetResponse, error) {
	result, err := s.ResetWorker(ctx, workerID, req.DescriptionOrDefault())
	if err != nil {
		return reset.ResetResponse{}, err
	}

	response := reset.NewResetResponse(result.Record)
	response.DeletedWorkEntries = result.DeletedWorkEntries
	response.DeletedBonuses = result.DeletedBonuses
	response.DeactivatedDebts = result.DeactivatedDebts
	return response, nil
}

// History implements reset.ResetService.
func (s *ResetServiceImpl) History(ctx context.Context, page int) (reset.ListResetResponse, error) {
	if page < 1 {
		page = 1
	}

	records, total, err := s.List(ctx, page, reset.PageSize)
	if err != nil {
		return reset.ListResetResponse{}, err
	}

	data := make([]reset.ResetResponse, 0, len(records))
	for _, r := range records {
		data = append(data, reset.NewResetResponse(r))
	}

	return reset.ListResetResponse{
		Data:       data,
		TotalCount: total,
		Page:       page,
		Limit:      reset.PageSize,
	}, nil
}
