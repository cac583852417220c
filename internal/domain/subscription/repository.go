package subscription

import (
	"context"
	"time"
)

// Repository persists subscriptions. Update must apply an optimistic version
// check and return ErrConcurrentModification on conflict, so two concurrent
// admin transitions on the same (activity, service) pair can never silently
// overwrite each other.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetBySID(ctx context.Context, sid string) (*Subscription, error)

	// GetByActivityAndService returns nil without error when no record
	// exists; the resolver treats that as inactive.
	GetByActivityAndService(ctx context.Context, activityID uint, serviceCode string) (*Subscription, error)

	GetByActivityID(ctx context.Context, activityID uint) ([]*Subscription, error)
	GetByOrganizationID(ctx context.Context, organizationID uint) ([]*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error

	// FindExpiring returns billed or trial subscriptions whose governing
	// deadline falls within the given number of days from now.
	FindExpiring(ctx context.Context, now time.Time, days int) ([]*Subscription, error)

	// FindLapsed returns trial/active/past_due subscriptions whose deadline
	// has already passed, for the expiry sweep.
	FindLapsed(ctx context.Context, now time.Time) ([]*Subscription, error)

	List(ctx context.Context, filter Filter) ([]*Subscription, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// Filter narrows subscription listings.
type Filter struct {
	ActivityID  *uint
	ServiceCode *string
	Status      *string
	Page        int
	PageSize    int
	SortBy      string
	SortDesc    bool
}
