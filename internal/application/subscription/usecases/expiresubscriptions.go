package usecases

import (
	"context"
	"fmt"

	"centro/internal/domain/subscription"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

// ExpireSubscriptionsUseCase persists time-driven expiry for subscriptions
// whose deadline has passed. The resolver already shows them as expired in
// between runs; this sweep keeps stored statuses consistent for reports.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute marks lapsed subscriptions as expired and returns how many were
// updated. Individual failures are logged and skipped so one bad record
// never stalls the sweep.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()

	lapsed, err := uc.subscriptionRepo.FindLapsed(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find lapsed subscriptions: %w", err)
	}
	if len(lapsed) == 0 {
		return 0, nil
	}

	uc.logger.Infow("found lapsed subscriptions to expire", "count", len(lapsed))

	marked := 0
	for _, sub := range lapsed {
		// Promo grants never lapse, even if stale dates put them in the
		// candidate set.
		if sub.IsFreePromo() {
			continue
		}
		res := subscription.Resolve(sub, now)
		if res.IsActive {
			continue
		}

		if err := sub.MarkAsExpired(now); err != nil {
			uc.logger.Warnw("failed to mark subscription as expired",
				"subscription_sid", sub.SID(),
				"status", sub.Status().String(),
				"error", err,
			)
			continue
		}

		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to persist expired subscription",
				"subscription_sid", sub.SID(),
				"error", err,
			)
			continue
		}
		marked++
	}

	uc.logger.Infow("expiry sweep completed", "marked", marked, "candidates", len(lapsed))
	return marked, nil
}
