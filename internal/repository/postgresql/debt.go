package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/debt"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const debtColumns = `id, worker_id, amount, description, debt_date, status, created_at`

type debtRepositoryImpl struct {
	db database.Querier
}

func NewDebtRepository(db database.Querier) debt.DebtRepository {
	return &debtRepositoryImpl{db: db}
}

func scanDebt(row pgx.Row) (debt.Debt, error) {
	var d debt.Debt
	err := row.Scan(&d.ID, &d.WorkerID, &d.Amount, &d.Description, &d.Date, &d.Status, &d.CreatedAt)
	return d, err
}

// Create implements debt.DebtRepository.
func (r *debtRepositoryImpl) Create(ctx context.Context, d debt.Debt) (debt.Debt, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return debt.Debt{}, fmt.Errorf("failed to generate debt id: %w", err)
	}

	query := `
		INSERT INTO debts (id, worker_id, amount, description, debt_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + debtColumns

	created, err := scanDebt(r.db.QueryRow(ctx, query, id.String(), d.WorkerID, d.Amount, d.Description, d.Date, d.Status))
	if err != nil {
		return debt.Debt{}, fmt.Errorf("failed to create debt: %w", err)
	}
	return created, nil
}

// GetByID implements debt.DebtRepository.
func (r *debtRepositoryImpl) GetByID(ctx context.Context, id string) (debt.Debt, error) {
	d, err := scanDebt(r.db.QueryRow(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return debt.Debt{}, debt.ErrDebtNotFound
		}
		return debt.Debt{}, fmt.Errorf("failed to get debt: %w", err)
	}
	return d, nil
}

// Settle implements debt.DebtRepository.
func (r *debtRepositoryImpl) Settle(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE debts SET status = $1 WHERE id = $2`, debt.StatusSettled, id)
	if err != nil {
		return fmt.Errorf("failed to settle debt: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return debt.ErrDebtNotFound
	}
	return nil
}

// ListByWorker implements debt.DebtRepository.
func (r *debtRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]debt.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE worker_id = $1 ORDER BY debt_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []debt.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}

	return debts, nil
}

// List implements debt.DebtRepository.
func (r *debtRepositoryImpl) List(ctx context.Context, filter debt.Filter) ([]debt.Debt, int64, error) {
	baseQuery := `
		FROM debts d
		JOIN users u ON u.id = d.worker_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil {
		baseQuery += fmt.Sprintf(" AND d.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND d.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count debts: %w", err)
	}

	filter.Normalize()

	selectQuery := fmt.Sprintf(`
		SELECT d.id, d.worker_id, d.amount, d.description, d.debt_date, d.status, d.created_at, u.full_name
		%s
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []debt.Debt
	for rows.Next() {
		var d debt.Debt
		if err := rows.Scan(&d.ID, &d.WorkerID, &d.Amount, &d.Description, &d.Date, &d.Status, &d.CreatedAt, &d.WorkerName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate debts: %w", err)
	}

	return debts, totalCount, nil
}

// DeactivateActiveByWorker implements debt.DebtRepository.
func (r *debtRepositoryImpl) DeactivateActiveByWorker(ctx context.Context, workerID string) (int64, error) {
	cmd, err := r.db.Exec(ctx,
		`UPDATE debts SET status = $1 WHERE worker_id = $2 AND status = $3`,
		debt.StatusDeactivated, workerID, debt.StatusActive,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate debts: %w", err)
	}
	return cmd.RowsAffected(), nil
}
