package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const priceColumns = `id, size, subtype, price, created_at, updated_at`

type priceRepositoryImpl struct {
	db database.Querier
}

func NewPriceRepository(db database.Querier) price.PriceRepository {
	return &priceRepositoryImpl{db: db}
}

func scanPrice(row pgx.Row) (price.Price, error) {
	var p price.Price
	err := row.Scan(&p.ID, &p.Size, &p.Subtype, &p.UnitPrice, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// List implements price.PriceRepository.
func (r *priceRepositoryImpl) List(ctx context.Context) ([]price.Price, error) {
	query := `SELECT ` + priceColumns + ` FROM prices ORDER BY size ASC, subtype ASC NULLS FIRST`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	defer rows.Close()

	var prices []price.Price
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prices: %w", err)
	}

	return prices, nil
}

// GetByID implements price.PriceRepository.
func (r *priceRepositoryImpl) GetByID(ctx context.Context, id string) (price.Price, error) {
	p, err := scanPrice(r.db.QueryRow(ctx, `SELECT `+priceColumns+` FROM prices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return price.Price{}, price.ErrPriceNotFound
		}
		return price.Price{}, fmt.Errorf("failed to get price: %w", err)
	}
	return p, nil
}

// FindBySizeSubtype implements price.PriceRepository.
func (r *priceRepositoryImpl) FindBySizeSubtype(ctx context.Context, size string, subtype *string) (price.Price, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM prices
		WHERE size = $1 AND subtype IS NOT DISTINCT FROM $2
	`

	p, err := scanPrice(r.db.QueryRow(ctx, query, size, subtype))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return price.Price{}, price.ErrPriceNotFound
		}
		return price.Price{}, fmt.Errorf("failed to find price: %w", err)
	}
	return p, nil
}

// Upsert implements price.PriceRepository.
func (r *priceRepositoryImpl) Upsert(ctx context.Context, size string, subtype *string, unitPrice decimal.Decimal) (price.Price, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return price.Price{}, fmt.Errorf("failed to generate price id: %w", err)
	}

	query := `
		INSERT INTO prices (id, size, subtype, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (size, COALESCE(subtype, ''))
		DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()
		RETURNING ` + priceColumns

	p, err := scanPrice(r.db.QueryRow(ctx, query, id.String(), size, subtype, unitPrice))
	if err != nil {
		return price.Price{}, fmt.Errorf("failed to upsert price: %w", err)
	}
	return p, nil
}

// Delete implements price.PriceRepository.
func (r *priceRepositoryImpl) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return price.ErrPriceNotFound
	}
	return nil
}
