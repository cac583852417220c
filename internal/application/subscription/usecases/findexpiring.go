package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/subscription/dto"
	"centro/internal/domain/subscription"
	"centro/internal/shared/biztime"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
)

type FindExpiringQuery struct {
	// WithinDays defaults to the standard urgency window when zero.
	WithinDays int
}

// FindExpiringUseCase feeds the renewal reminder job with subscriptions
// whose window closes soon. Promo grants and already lapsed records are
// filtered out.
type FindExpiringUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewFindExpiringUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *FindExpiringUseCase {
	return &FindExpiringUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *FindExpiringUseCase) Execute(ctx context.Context, query FindExpiringQuery) ([]*dto.SubscriptionDTO, error) {
	days := query.WithinDays
	if days <= 0 {
		days = constants.ExpiringSoonDays
	}

	now := biztime.NowUTC()
	subs, err := uc.subscriptionRepo.FindExpiring(ctx, now, days)
	if err != nil {
		uc.logger.Errorw("failed to find expiring subscriptions", "error", err, "within_days", days)
		return nil, fmt.Errorf("failed to find expiring subscriptions: %w", err)
	}

	expiring := make([]*dto.SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		if sub.IsFreePromo() {
			continue
		}
		res := subscription.Resolve(sub, now)
		if !res.IsActive || res.DaysRemaining == nil {
			continue
		}
		if *res.DaysRemaining > days {
			continue
		}
		expiring = append(expiring, dto.ToSubscriptionDTO(sub, now))
	}

	return expiring, nil
}
