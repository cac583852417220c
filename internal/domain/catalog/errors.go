package catalog

import "errors"

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceCodeExists = errors.New("service code already exists")
	ErrServiceArchived   = errors.New("service is archived")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanCodeExists    = errors.New("plan code already exists for service")
)
