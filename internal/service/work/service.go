package work

import (
	"context"

	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	"github.com/gajipro/gajipro-backend-go/internal/domain/work"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type WorkServiceImpl struct {
	work.WorkRepository
	priceRepository price.PriceRepository
}

func NewWorkService(workRepository work.WorkRepository, priceRepository price.PriceRepository) work.WorkService {
	return &WorkServiceImpl{
		WorkRepository:  workRepository,
		priceRepository: priceRepository,
	}
}

// Submit implements work.WorkService. The total is fixed here and never
// recomputed; a missing or zero price writes nothing.
func (s *WorkServiceImpl) Submit(ctx context.Context, workerID string, req work.SubmitWorkRequest) (work.WorkEntryResponse, error) {
	size := price.NormalizeSize(req.Size)
	subtype := price.NormalizeSubtype(req.Subtype)

	p, err := s.priceRepository.FindBySizeSubtype(ctx, size, subtype)
	if err != nil {
		return work.WorkEntryResponse{}, err
	}
	if p.UnitPrice.IsZero() {
		return work.WorkEntryResponse{}, price.ErrPriceNotFound
	}

	total := p.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	if !validator.IsStorableAmount(total) {
		return work.WorkEntryResponse{}, validator.ValidationErrors{{
			Field:   "quantity",
			Message: "quantity makes the total too large",
		}}
	}

	entry, err := s.WorkRepository.Create(ctx, work.Entry{
		WorkerID: workerID,
		PriceID:  &p.ID,
		Quantity: req.Quantity,
		Total:    total,
		Status:   work.StatusPending,
		Size:     &p.Size,
		Subtype:  p.Subtype,
	})
	if err != nil {
		return work.WorkEntryResponse{}, err
	}

	return work.NewWorkEntryResponse(entry), nil
}

// SetStatus implements work.WorkService. Repeating a decision is a no-op.
func (s *WorkServiceImpl) SetStatus(ctx context.Context, entryID string, status work.Status) error {
	if !status.IsDecision() {
		return work.ErrInvalidStatus
	}
	return s.UpdateStatus(ctx, entryID, status)
}

// ListByWorker implements work.WorkService.
func (s *WorkServiceImpl) ListByWorker(ctx context.Context, workerID string, page int) (work.ListWorkEntryResponse, error) {
	return s.List(ctx, work.Filter{
		WorkerID: &workerID,
		Page:     page,
		Limit:    work.WorkerPageSize,
	})
}

// List implements work.WorkService.
func (s *WorkServiceImpl) List(ctx context.Context, filter work.Filter) (work.ListWorkEntryResponse, error) {
	filter.Normalize(work.OwnerPageSize)

	entries, total, err := s.WorkRepository.List(ctx, filter)
	if err != nil {
		return work.ListWorkEntryResponse{}, err
	}

	return work.ListWorkEntryResponse{
		Data:       work.NewWorkEntryResponses(entries),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: work.TotalPages(total, filter.Limit),
	}, nil
}
