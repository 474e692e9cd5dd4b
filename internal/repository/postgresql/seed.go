package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gajipro/gajipro-backend-go/internal/domain/price"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

// SeedOwner creates the owner account unless any owner already exists.
func SeedOwner(ctx context.Context, db database.Querier, username, password, fullName string) error {
	var exists bool
	if err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, user.RoleOwner).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check owner: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	owner, err := NewUserRepository(db).Create(ctx, user.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         user.RoleOwner,
		FullName:     fullName,
	})
	if err != nil {
		return err
	}

	slog.Info("seeded owner account", "username", owner.Username, "id", owner.ID)
	return nil
}

// SeedPrices fills the price table with the default rates when it is empty.
func SeedPrices(ctx context.Context, db database.Querier) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM prices`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count prices: %w", err)
	}
	if count > 0 {
		return nil
	}

	repo := NewPriceRepository(db)
	for _, p := range price.Default() {
		if _, err := repo.Upsert(ctx, p.Size, p.Subtype, p.UnitPrice); err != nil {
			return err
		}
	}

	slog.Info("seeded default prices", "count", len(price.Default()))
	return nil
}
