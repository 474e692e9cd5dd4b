package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/gajipro/gajipro-backend-go/internal/domain/auth"
)

const (
	TokenCleanupInterval = time.Hour
	// TokenRetention keeps revoked and expired tokens around for a day before purging.
	TokenRetention = 24 * time.Hour
)

// TokenCleanupJob purges refresh tokens that expired or were revoked more than
// TokenRetention ago.
func TokenCleanupJob(repo auth.RefreshTokenRepository, now func() time.Time) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		deleted, err := repo.DeleteExpired(ctx, now().Add(-TokenRetention))
		if err != nil {
			return err
		}
		if deleted > 0 {
			slog.Info("purged refresh tokens", "count", deleted)
		}
		return nil
	}
}

// RegisterJobs adds the maintenance jobs to s.
func RegisterJobs(s *Scheduler, refreshTokens auth.RefreshTokenRepository) {
	s.AddJob("refresh-token-cleanup", TokenCleanupInterval, TokenCleanupJob(refreshTokens, time.Now))
}
