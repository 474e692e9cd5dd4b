package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/payslip"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const payslipSelect = `
	SELECT s.id, s.worker_id, s.period, s.gross_pay, s.total_bonus, s.active_debt, s.net_pay, s.created_at, u.full_name
	FROM payslips s
	JOIN users u ON u.id = s.worker_id
`

type payslipRepositoryImpl struct {
	db database.Querier
}

func NewPayslipRepository(db database.Querier) payslip.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var p payslip.Payslip
	err := row.Scan(
		&p.ID, &p.WorkerID, &p.Period, &p.GrossPay, &p.TotalBonus, &p.ActiveDebt, &p.NetPay, &p.CreatedAt, &p.WorkerName,
	)
	return p, err
}

// Create implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) Create(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to generate payslip id: %w", err)
	}

	query := `
		INSERT INTO payslips (id, worker_id, period, gross_pay, total_bonus, active_debt, net_pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, worker_id, period, gross_pay, total_bonus, active_debt, net_pay, created_at
	`

	var created payslip.Payslip
	err = r.db.QueryRow(ctx, query,
		id.String(), p.WorkerID, p.Period, p.GrossPay, p.TotalBonus, p.ActiveDebt, p.NetPay,
	).Scan(
		&created.ID, &created.WorkerID, &created.Period, &created.GrossPay,
		&created.TotalBonus, &created.ActiveDebt, &created.NetPay, &created.CreatedAt,
	)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	created.WorkerName = p.WorkerName
	return created, nil
}

// GetByID implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	p, err := scanPayslip(r.db.QueryRow(ctx, payslipSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return p, nil
}

// List implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) List(ctx context.Context, filter payslip.Filter) ([]payslip.Payslip, int64, error) {
	where := ` WHERE ($1::uuid IS NULL OR s.worker_id = $1::uuid)`

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payslips s` + where
	if err := r.db.QueryRow(ctx, countQuery, filter.WorkerID).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = payslip.PageSize
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	query := payslipSelect + where + ` ORDER BY s.created_at DESC, s.id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, filter.WorkerID, filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	payslips, err := collectPayslips(rows)
	if err != nil {
		return nil, 0, err
	}
	return payslips, totalCount, nil
}

// ListAll implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) ListAll(ctx context.Context) ([]payslip.Payslip, error) {
	rows, err := r.db.Query(ctx, payslipSelect+` ORDER BY s.created_at DESC, s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	return collectPayslips(rows)
}

func collectPayslips(rows pgx.Rows) ([]payslip.Payslip, error) {
	var payslips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}
	return payslips, nil
}
