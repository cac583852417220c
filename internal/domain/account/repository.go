package account

import "context"

// OrganizationRepository persists organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id uint) (*Organization, error)
	Update(ctx context.Context, org *Organization) error
	List(ctx context.Context, page, pageSize int) ([]*Organization, int64, error)
}

// ActivityRepository persists activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	GetByID(ctx context.Context, id uint) (*Activity, error)
	GetBySID(ctx context.Context, sid string) (*Activity, error)
	Update(ctx context.Context, activity *Activity) error
	ListByOrganizationID(ctx context.Context, organizationID uint) ([]*Activity, error)
	CountByOrganizationID(ctx context.Context, organizationID uint) (int64, error)
	List(ctx context.Context, page, pageSize int) ([]*Activity, int64, error)
}
