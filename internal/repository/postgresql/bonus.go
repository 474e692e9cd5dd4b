package postgresql

import (
	"context"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/bonus"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type bonusRepositoryImpl struct {
	db database.Querier
}

func NewBonusRepository(db database.Querier) bonus.BonusRepository {
	return &bonusRepositoryImpl{db: db}
}

// Create implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to generate bonus id: %w", err)
	}

	query := `
		INSERT INTO bonuses (id, worker_id, amount, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, worker_id, amount, description, created_at
	`

	var created bonus.Bonus
	err = r.db.QueryRow(ctx, query, id.String(), b.WorkerID, b.Amount, b.Description).Scan(
		&created.ID, &created.WorkerID, &created.Amount, &created.Description, &created.CreatedAt,
	)
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to create bonus: %w", err)
	}
	return created, nil
}

// Delete implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return bonus.ErrBonusNotFound
	}
	return nil
}

// ListByWorker implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]bonus.Bonus, error) {
	query := `
		SELECT id, worker_id, amount, description, created_at
		FROM bonuses
		WHERE worker_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []bonus.Bonus
	for rows.Next() {
		var b bonus.Bonus
		if err := rows.Scan(&b.ID, &b.WorkerID, &b.Amount, &b.Description, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bonuses: %w", err)
	}

	return bonuses, nil
}

// List implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) List(ctx context.Context, filter bonus.Filter) ([]bonus.Bonus, int64, error) {
	baseQuery := `
		FROM bonuses b
		JOIN users u ON u.id = b.worker_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		baseQuery += fmt.Sprintf(" AND b.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count bonuses: %w", err)
	}

	filter.Normalize()

	selectQuery := fmt.Sprintf(`
		SELECT b.id, b.worker_id, b.amount, b.description, b.created_at, u.full_name
		%s
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []bonus.Bonus
	for rows.Next() {
		var b bonus.Bonus
		if err := rows.Scan(&b.ID, &b.WorkerID, &b.Amount, &b.Description, &b.CreatedAt, &b.WorkerName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate bonuses: %w", err)
	}

	return bonuses, totalCount, nil
}

// DeleteByWorker implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) DeleteByWorker(ctx context.Context, workerID string) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bonuses WHERE worker_id = $1`, workerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bonuses: %w", err)
	}
	return cmd.RowsAffected(), nil
}
