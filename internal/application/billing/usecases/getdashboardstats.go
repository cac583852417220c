package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/billing/dto"
	"centro/internal/domain/billing"
	"centro/internal/domain/catalog"
	"centro/internal/domain/subscription"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// StatsCache holds the dashboard rollup for a short TTL so every admin page
// load does not rescan the subscription table. A nil result without error is
// a cache miss.
type StatsCache interface {
	GetStats(ctx context.Context) (*billing.Stats, error)
	SetStats(ctx context.Context, stats *billing.Stats) error
	Invalidate(ctx context.Context) error
}

// GetDashboardStatsUseCase computes the platform-wide counters shown on the
// admin dashboard.
type GetDashboardStatsUseCase struct {
	subscriptionRepo subscription.Repository
	serviceRepo      catalog.ServiceRepository
	statsCache       StatsCache
	logger           logger.Interface
}

func NewGetDashboardStatsUseCase(
	subscriptionRepo subscription.Repository,
	serviceRepo catalog.ServiceRepository,
	statsCache StatsCache,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		subscriptionRepo: subscriptionRepo,
		serviceRepo:      serviceRepo,
		statsCache:       statsCache,
		logger:           logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if uc.statsCache != nil {
		cached, err := uc.statsCache.GetStats(ctx)
		if err != nil {
			// A broken cache degrades to a recompute, never to a failure.
			uc.logger.Warnw("stats cache read failed", "error", err)
		} else if cached != nil {
			result := dto.FromStats(*cached, utils.FormatCents(cached.MonthlyRevenueCents))
			return &result, nil
		}
	}

	stats, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.SetStats(ctx, stats); err != nil {
			uc.logger.Warnw("stats cache write failed", "error", err)
		}
	}

	result := dto.FromStats(*stats, utils.FormatCents(stats.MonthlyRevenueCents))
	return &result, nil
}

func (uc *GetDashboardStatsUseCase) compute(ctx context.Context) (*billing.Stats, error) {
	entries, err := loadEntries(ctx, uc.subscriptionRepo, uc.serviceRepo, nil)
	if err != nil {
		uc.logger.Errorw("failed to load billing entries", "error", err)
		return nil, err
	}

	stats := billing.Aggregate(entries, biztime.NowUTC())
	return &stats, nil
}

// loadEntries joins subscriptions with catalog prices. With a nil
// organization ID it spans the whole platform.
func loadEntries(
	ctx context.Context,
	subscriptionRepo subscription.Repository,
	serviceRepo catalog.ServiceRepository,
	organizationID *uint,
) ([]billing.Entry, error) {
	services, err := serviceRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	prices := make(map[string]*catalog.Service, len(services))
	for _, svc := range services {
		prices[svc.Code()] = svc
	}

	var subs []*subscription.Subscription
	if organizationID != nil {
		subs, err = subscriptionRepo.GetByOrganizationID(ctx, *organizationID)
	} else {
		subs, _, err = subscriptionRepo.List(ctx, subscription.Filter{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entries := make([]billing.Entry, 0, len(subs))
	for _, sub := range subs {
		entry := billing.Entry{Subscription: sub}
		if svc, ok := prices[sub.ServiceCode()]; ok {
			entry.PriceMonthlyCents = svc.PriceMonthlyCents()
			entry.PriceYearlyCents = svc.PriceYearlyCents()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
