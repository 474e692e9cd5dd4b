package price

import (
	"context"
	"errors"

	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	"github.com/shopspring/decimal"
)

type PriceServiceImpl struct {
	price.PriceRepository
}

func NewPriceService(priceRepository price.PriceRepository) price.PriceService {
	return &PriceServiceImpl{
		PriceRepository: priceRepository,
	}
}

// List implements price.PriceService.
func (s *PriceServiceImpl) List(ctx context.Context) ([]price.PriceResponse, error) {
	prices, err := s.PriceRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]price.PriceResponse, 0, len(prices))
	for _, p := range prices {
		responses = append(responses, price.NewPriceResponse(p))
	}
	return responses, nil
}

// Upsert implements price.PriceService. The request must already be normalized.
func (s *PriceServiceImpl) Upsert(ctx context.Context, req price.UpsertPriceRequest) (price.PriceResponse, error) {
	p, err := s.PriceRepository.Upsert(ctx, req.Size, req.Subtype, req.Price)
	if err != nil {
		return price.PriceResponse{}, err
	}
	return price.NewPriceResponse(p), nil
}

// Delete implements price.PriceService.
func (s *PriceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.PriceRepository.Delete(ctx, id)
}

// Lookup implements price.PriceService.
func (s *PriceServiceImpl) Lookup(ctx context.Context, size string, subtype *string) (decimal.Decimal, error) {
	p, err := s.FindBySizeSubtype(ctx, price.NormalizeSize(size), price.NormalizeSubtype(subtype))
	if err != nil {
		if errors.Is(err, price.ErrPriceNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return p.UnitPrice, nil
}
