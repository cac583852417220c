package scheduler

import (
	"context"
	"sync"
	"time"

	subscriptionUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/shared/logger"
)

// ExpiryScheduler periodically persists time-driven expirations so reports
// and exports see consistent stored statuses. The read path already applies
// the resolver, so this job is about data hygiene, not correctness.
type ExpiryScheduler struct {
	expireSubscriptionsUC *subscriptionUsecases.ExpireSubscriptionsUseCase
	logger                logger.Interface
	stopChan              chan struct{}
	stopOnce              sync.Once
	wg                    sync.WaitGroup
	interval              time.Duration
}

func NewExpiryScheduler(
	expireSubscriptionsUC *subscriptionUsecases.ExpireSubscriptionsUseCase,
	interval time.Duration,
	logger logger.Interface,
) *ExpiryScheduler {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &ExpiryScheduler{
		expireSubscriptionsUC: expireSubscriptionsUC,
		logger:                logger,
		stopChan:              make(chan struct{}),
		interval:              interval,
	}
}

func (s *ExpiryScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting expiry scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

func (s *ExpiryScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping expiry scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("expiry scheduler stopped")
	})
}

func (s *ExpiryScheduler) runLoop(ctx context.Context) {
	// Run immediately on startup to clear any backlog.
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("expiry scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpiryScheduler) sweep(ctx context.Context) {
	startTime := time.Now()

	expiredCount, err := s.expireSubscriptionsUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("expiry sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if expiredCount > 0 {
		s.logger.Infow("expiry sweep completed",
			"expired", expiredCount,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("expiry sweep found nothing to do",
			"duration", time.Since(startTime),
		)
	}
}
