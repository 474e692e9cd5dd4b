package postgresql

import (
	"context"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/reset"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type resetRepositoryImpl struct {
	db *database.DB
}

// NewResetRepository needs the pool itself because a reset opens its own transaction.
func NewResetRepository(db *database.DB) reset.ResetRepository {
	return &resetRepositoryImpl{db: db}
}

// ResetWorker implements reset.ResetRepository.
func (r *resetRepositoryImpl) ResetWorker(ctx context.Context, workerID string, description string) (reset.Result, error) {
	var result reset.Result

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		worker, err := NewUserRepository(tx).GetWorker(ctx, workerID)
		if err != nil {
			return err
		}

		prior, err := NewBalanceRepository(tx).GetByWorker(ctx, workerID)
		if err != nil {
			return err
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate reset id: %w", err)
		}

		record := reset.Record{WorkerName: &worker.FullName}
		err = tx.QueryRow(ctx, `
			INSERT INTO reset_records (id, worker_id, prior_gross_pay, prior_active_debt, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, worker_id, prior_gross_pay, prior_active_debt, description, created_at
		`, id.String(), workerID, prior.GrossPay, prior.ActiveDebt, description).Scan(
			&record.ID, &record.WorkerID, &record.PriorGrossPay, &record.PriorActiveDebt, &record.Description, &record.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create reset record: %w", err)
		}

		deletedWork, err := NewWorkRepository(tx).DeleteByWorker(ctx, workerID)
		if err != nil {
			return err
		}
		deletedBonuses, err := NewBonusRepository(tx).DeleteByWorker(ctx, workerID)
		if err != nil {
			return err
		}
		deactivated, err := NewDebtRepository(tx).DeactivateActiveByWorker(ctx, workerID)
		if err != nil {
			return err
		}

		result = reset.Result{
			Record:             record,
			DeletedWorkEntries: deletedWork,
			DeletedBonuses:     deletedBonuses,
			DeactivatedDebts:   deactivated,
		}
		return nil
	})
	if err != nil {
		return reset.Result{}, err
	}

	return result, nil
}

// List implements reset.ResetRepository.
func (r *resetRepositoryImpl) List(ctx context.Context, page, limit int) ([]reset.Record, int64, error) {
	var totalCount int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reset_records`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count reset records: %w", err)
	}

	if limit <= 0 {
		limit = reset.PageSize
	}
	if page < 1 {
		page = 1
	}

	query := `
		SELECT rr.id, rr.worker_id, rr.prior_gross_pay, rr.prior_active_debt, rr.description, rr.created_at, u.full_name
		FROM reset_records rr
		JOIN users u ON u.id = rr.worker_id
		ORDER BY rr.created_at DESC, rr.id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reset records: %w", err)
	}
	defer rows.Close()

	var records []reset.Record
	for rows.Next() {
		var rec reset.Record
		if err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.PriorGrossPay, &rec.PriorActiveDebt, &rec.Description, &rec.CreatedAt, &rec.WorkerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan reset record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate reset records: %w", err)
	}

	return records, totalCount, nil
}
