package handlers

import (
	"context"

	subdto "centro/internal/application/subscription/dto"
	subUsecases "centro/internal/application/subscription/usecases"
)

type serviceStatusGetter interface {
	Execute(ctx context.Context, query subUsecases.GetServiceStatusQuery) (*subdto.ServiceStatusDTO, error)
}

type activityStatusLister interface {
	Execute(ctx context.Context, query subUsecases.ListActivityStatusesQuery) ([]subdto.ServiceStatusDTO, error)
}

type trialActivator interface {
	Execute(ctx context.Context, cmd subUsecases.ActivateTrialCommand) (*subdto.SubscriptionDTO, error)
}

type freeActivator interface {
	Execute(ctx context.Context, cmd subUsecases.ActivateFreeCommand) (*subdto.SubscriptionDTO, error)
}

type subscriptionCanceller interface {
	Execute(ctx context.Context, cmd subUsecases.CancelSubscriptionCommand) error
}

type transitionApplier interface {
	Execute(ctx context.Context, cmd subUsecases.ApplyTransitionCommand) (*subdto.SubscriptionDTO, error)
}

type subscriptionLister interface {
	Execute(ctx context.Context, query subUsecases.ListSubscriptionsQuery) ([]*subdto.SubscriptionDTO, int64, error)
}
