package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	mock_auth "github.com/gajipro/gajipro-backend-go/internal/domain/auth/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	done := make(chan struct{}, 1)

	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		if runs.Add(1) == 1 {
			done <- struct{}{}
		}
		return nil
	})

	s.Start(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}

	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_RunOnceContinuesAfterFailure(t *testing.T) {
	s := NewScheduler()
	var second bool

	s.AddJob("failing", time.Hour, func(ctx context.Context) error { return errors.New("boom") })
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second = true
		return nil
	})

	s.RunOnce(context.Background())
	assert.True(t, second)
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	assert.NotPanics(t, func() { NewScheduler().Stop() })
}

func TestTokenCleanupJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_auth.NewMockRefreshTokenRepository(ctrl)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().DeleteExpired(gomock.Any(), now.Add(-TokenRetention)).Return(int64(3), nil)

	job := TokenCleanupJob(repo, func() time.Time { return now })
	require.NoError(t, job(context.Background()))
}

func TestTokenCleanupJob_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_auth.NewMockRefreshTokenRepository(ctrl)

	repo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

	job := TokenCleanupJob(repo, time.Now)
	assert.Error(t, job(context.Background()))
}
