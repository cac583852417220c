package catalog

import "context"

// ServiceRepository persists service reference data.
type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	GetByID(ctx context.Context, id uint) (*Service, error)
	GetByCode(ctx context.Context, code string) (*Service, error)
	Update(ctx context.Context, service *Service) error
	ListActive(ctx context.Context) ([]*Service, error)
	List(ctx context.Context, includeArchived bool) ([]*Service, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// PlanRepository persists plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByServiceAndCode(ctx context.Context, serviceID uint, code string) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	ListByServiceID(ctx context.Context, serviceID uint) ([]*Plan, error)
}
