package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, username, password_hash, role, full_name, whatsapp, photo, created_at, updated_at`

type userRepositoryImpl struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.FullName,
		&u.WhatsApp,
		&u.Photo,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// isUniqueViolation reports a 23505 error on the given constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return false
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	query := `
		INSERT INTO users (id, username, password_hash, role, full_name, whatsapp, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, query,
		id.String(),
		newUser.Username,
		newUser.PasswordHash,
		newUser.Role,
		newUser.FullName,
		newUser.WhatsApp,
		newUser.Photo,
	))
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return user.User{}, user.ErrDuplicateUsername
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

// GetWorker implements user.UserRepository.
func (r *userRepositoryImpl) GetWorker(ctx context.Context, id string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND role = $2`

	u, err := scanUser(r.db.QueryRow(ctx, query, id, user.RoleWorker))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrWorkerNotFound
		}
		return user.User{}, fmt.Errorf("failed to get worker: %w", err)
	}
	return u, nil
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string, excludeID *string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND ($2::uuid IS NULL OR id <> $2::uuid))`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// UpdateProfile implements user.UserRepository.
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) (user.User, error) {
	query := `
		UPDATE users
		SET username = $1, full_name = $2, whatsapp = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query, req.Username, req.FullName, req.WhatsApp, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		if isUniqueViolation(err, "users_username_key") {
			return user.User{}, user.ErrDuplicateUsername
		}
		return user.User{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

// UpdatePhoto implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePhoto(ctx context.Context, id string, photo string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET photo = $1, updated_at = NOW() WHERE id = $2`, photo, id)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ListWorkers implements user.UserRepository.
func (r *userRepositoryImpl) ListWorkers(ctx context.Context) ([]user.WorkerSummary, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, u.role, u.full_name, u.whatsapp, u.photo, u.created_at, u.updated_at,
			   COALESCE((SELECT SUM(w.total) FROM work_entries w WHERE w.worker_id = u.id AND w.status = 'approved'), 0),
			   COALESCE((SELECT SUM(d.amount) FROM debts d WHERE d.worker_id = u.id AND d.status = 'aktif'), 0),
			   COALESCE((SELECT SUM(b.amount) FROM bonuses b WHERE b.worker_id = u.id), 0)
		FROM users u
		WHERE u.role = $1
		ORDER BY u.full_name ASC
	`

	rows, err := r.db.Query(ctx, query, user.RoleWorker)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []user.WorkerSummary
	for rows.Next() {
		var s user.WorkerSummary
		if err := rows.Scan(
			&s.ID, &s.Username, &s.PasswordHash, &s.Role, &s.FullName, &s.WhatsApp, &s.Photo, &s.CreatedAt, &s.UpdatedAt,
			&s.GrossPay, &s.ActiveDebt, &s.TotalBonus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}

	return workers, nil
}

// CountWorkers implements user.UserRepository.
func (r *userRepositoryImpl) CountWorkers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, user.RoleWorker).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count workers: %w", err)
	}
	return count, nil
}
