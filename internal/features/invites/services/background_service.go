package invites_services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"taskhive/internal/config"
	invites_repositories "taskhive/internal/features/invites/repositories"
)

const expiredInviteSweepInterval = 1 * time.Hour

// InviteCleanupBackgroundService periodically revokes pending invites
// whose expiry has passed, keeping the pending set small and freeing the
// (project, email) pair for a fresh invite.
type InviteCleanupBackgroundService struct {
	inviteRepository *invites_repositories.InviteRepository
	logger           *slog.Logger

	now func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (s *InviteCleanupBackgroundService) StartWorkers() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("Starting invite cleanup worker",
		slog.Duration("interval", expiredInviteSweepInterval))

	s.wg.Add(1)
	go s.sweepWorker()
}

func (s *InviteCleanupBackgroundService) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *InviteCleanupBackgroundService) ExecuteSweepForTest() (int64, error) {
	return s.sweepExpiredInvites()
}

func (s *InviteCleanupBackgroundService) sweepWorker() {
	defer s.wg.Done()

	ticker := time.NewTicker(expiredInviteSweepInterval)
	defer ticker.Stop()

	for {
		if config.IsShouldShutdown() {
			s.logger.Info("Invite cleanup worker shutting down due to shutdown signal")
			return
		}

		select {
		case <-s.ctx.Done():
			s.logger.Info("Invite cleanup worker shutting down")
			return

		case <-ticker.C:
			if _, err := s.sweepExpiredInvites(); err != nil {
				s.logger.Error("Error during expired invite sweep", slog.String("error", err.Error()))
			}
		}
	}
}

func (s *InviteCleanupBackgroundService) sweepExpiredInvites() (int64, error) {
	revoked, err := s.inviteRepository.SweepExpired(s.now().UTC())
	if err != nil {
		return 0, err
	}

	if revoked > 0 {
		s.logger.Info("Revoked expired invites", slog.Int64("count", revoked))
	}

	return revoked, nil
}
