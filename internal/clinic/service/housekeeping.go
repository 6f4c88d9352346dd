package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
)

// Sweeper is implemented by OTP stores that hold expired entries until read.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// HousekeepingService periodically drops expired OTP entries and revoked
// refresh tokens that could no longer be presented anyway.
type HousekeepingService struct {
	Store    store.Store
	OTP      Sweeper // nil when the backend expires keys itself
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults interval to one minute.
func NewHousekeepingService(st store.Store, otpStore Sweeper, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &HousekeepingService{
		Store:    st,
		OTP:      otpStore,
		Logger:   logger,
		Interval: interval,
		Now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup performs one pass. A failure in one step does not skip the other.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	if s.OTP != nil {
		if n, err := s.OTP.Sweep(ctx); err != nil {
			s.Logger.Error("failed to sweep otp entries", "error", err)
		} else if n > 0 {
			s.Logger.Debug("swept expired otp entries", "count", n)
		}
	}

	n, err := s.Store.RevokedTokens().DeleteExpiredRevokedTokens(ctx, s.Now())
	if err != nil {
		s.Logger.Error("failed to delete expired revoked tokens", "error", err)
		return
	}
	if n > 0 {
		s.Logger.Debug("deleted expired revoked tokens", "count", n)
	}
}
