package price

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_price

type PriceRepository interface {
	List(ctx context.Context) ([]Price, error)
	GetByID(ctx context.Context, id string) (Price, error)
	// FindBySizeSubtype matches subtype exactly, NULL matching NULL.
	FindBySizeSubtype(ctx context.Context, size string, subtype *string) (Price, error)
	Upsert(ctx context.Context, size string, subtype *string, unitPrice decimal.Decimal) (Price, error)
	Delete(ctx context.Context, id string) error
}
