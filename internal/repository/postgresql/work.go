package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/work"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workRepositoryImpl struct {
	db database.Querier
}

func NewWorkRepository(db database.Querier) work.WorkRepository {
	return &workRepositoryImpl{db: db}
}

// Create implements work.WorkRepository.
func (r *workRepositoryImpl) Create(ctx context.Context, entry work.Entry) (work.Entry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return work.Entry{}, fmt.Errorf("failed to generate work entry id: %w", err)
	}

	query := `
		INSERT INTO work_entries (id, worker_id, price_id, quantity, total, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, worker_id, price_id, quantity, total, status, created_at
	`

	var created work.Entry
	err = r.db.QueryRow(ctx, query,
		id.String(), entry.WorkerID, entry.PriceID, entry.Quantity, entry.Total, entry.Status,
	).Scan(
		&created.ID, &created.WorkerID, &created.PriceID, &created.Quantity, &created.Total, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return work.Entry{}, fmt.Errorf("failed to create work entry: %w", err)
	}

	created.Size = entry.Size
	created.Subtype = entry.Subtype
	return created, nil
}

// GetByID implements work.WorkRepository.
func (r *workRepositoryImpl) GetByID(ctx context.Context, id string) (work.Entry, error) {
	query := `
		SELECT w.id, w.worker_id, w.price_id, w.quantity, w.total, w.status, w.created_at,
			   u.full_name, p.size, p.subtype
		FROM work_entries w
		JOIN users u ON u.id = w.worker_id
		LEFT JOIN prices p ON p.id = w.price_id
		WHERE w.id = $1
	`

	var e work.Entry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.WorkerID, &e.PriceID, &e.Quantity, &e.Total, &e.Status, &e.CreatedAt,
		&e.WorkerName, &e.Size, &e.Subtype,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return work.Entry{}, work.ErrWorkEntryNotFound
		}
		return work.Entry{}, fmt.Errorf("failed to get work entry: %w", err)
	}
	return e, nil
}

// UpdateStatus implements work.WorkRepository.
func (r *workRepositoryImpl) UpdateStatus(ctx context.Context, id string, status work.Status) error {
	cmd, err := r.db.Exec(ctx, `UPDATE work_entries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update work entry status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return work.ErrWorkEntryNotFound
	}
	return nil
}

// List implements work.WorkRepository.
func (r *workRepositoryImpl) List(ctx context.Context, filter work.Filter) ([]work.Entry, int64, error) {
	baseQuery := `
		FROM work_entries w
		JOIN users u ON u.id = w.worker_id
		LEFT JOIN prices p ON p.id = w.price_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		baseQuery += fmt.Sprintf(" AND w.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND w.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.WorkerName != nil && *filter.WorkerName != "" {
		baseQuery += fmt.Sprintf(" AND u.full_name ILIKE '%%' || $%d || '%%'", argIdx)
		args = append(args, *filter.WorkerName)
		argIdx++
	}

	// Count query
	var totalCount int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count work entries: %w", err)
	}

	// Pagination
	filter.Normalize(work.OwnerPageSize)

	selectQuery := fmt.Sprintf(`
		SELECT w.id, w.worker_id, w.price_id, w.quantity, w.total, w.status, w.created_at,
			   u.full_name, p.size, p.subtype
		%s
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work entries: %w", err)
	}
	defer rows.Close()

	var entries []work.Entry
	for rows.Next() {
		var e work.Entry
		if err := rows.Scan(
			&e.ID, &e.WorkerID, &e.PriceID, &e.Quantity, &e.Total, &e.Status, &e.CreatedAt,
			&e.WorkerName, &e.Size, &e.Subtype,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan work entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate work entries: %w", err)
	}

	return entries, totalCount, nil
}

// DeleteByWorker implements work.WorkRepository.
func (r *workRepositoryImpl) DeleteByWorker(ctx context.Context, workerID string) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM work_entries WHERE worker_id = $1`, workerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete work entries: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// CountByStatus implements work.WorkRepository.
func (r *workRepositoryImpl) CountByStatus(ctx context.Context, status work.Status) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM work_entries WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count work entries: %w", err)
	}
	return count, nil
}
