package price

import (
	"context"

	"github.com/shopspring/decimal"
)

type PriceService interface {
	List(ctx context.Context) ([]PriceResponse, error)
	Upsert(ctx context.Context, req UpsertPriceRequest) (PriceResponse, error)
	Delete(ctx context.Context, id string) error
	// Lookup returns zero when the pair is not configured.
	Lookup(ctx context.Context, size string, subtype *string) (decimal.Decimal, error)
}
