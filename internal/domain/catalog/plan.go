package catalog

import (
	"fmt"
	"strings"
	"time"

	"centro/internal/shared/id"
)

// Plan is a priced tier belonging to a service. Every service carries at
// least one plan (e.g. free, pro).
type Plan struct {
	planID            uint
	sid               string
	serviceID         uint
	code              string
	name              string
	priceMonthlyCents int64
	priceYearlyCents  int64
	features          []string
	isDefault         bool
	createdAt         time.Time
	updatedAt         time.Time
}

// NewPlan creates a plan under a service.
func NewPlan(serviceID uint, code, name string, priceMonthlyCents, priceYearlyCents int64, features []string) (*Plan, error) {
	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("plan code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if priceMonthlyCents < 0 || priceYearlyCents < 0 {
		return nil, fmt.Errorf("plan prices cannot be negative")
	}

	now := time.Now().UTC()
	return &Plan{
		sid:               id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
		serviceID:         serviceID,
		code:              code,
		name:              name,
		priceMonthlyCents: priceMonthlyCents,
		priceYearlyCents:  priceYearlyCents,
		features:          features,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// PlanReconstructParams carries persisted fields back into the entity.
type PlanReconstructParams struct {
	ID                uint
	SID               string
	ServiceID         uint
	Code              string
	Name              string
	PriceMonthlyCents int64
	PriceYearlyCents  int64
	Features          []string
	IsDefault         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(p PlanReconstructParams) (*Plan, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if p.ServiceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}
	if p.Code == "" {
		return nil, fmt.Errorf("plan code is required")
	}

	return &Plan{
		planID:            p.ID,
		sid:               p.SID,
		serviceID:         p.ServiceID,
		code:              p.Code,
		name:              p.Name,
		priceMonthlyCents: p.PriceMonthlyCents,
		priceYearlyCents:  p.PriceYearlyCents,
		features:          p.Features,
		isDefault:         p.IsDefault,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (p *Plan) ID() uint                 { return p.planID }
func (p *Plan) SID() string              { return p.sid }
func (p *Plan) ServiceID() uint          { return p.serviceID }
func (p *Plan) Code() string             { return p.code }
func (p *Plan) Name() string             { return p.name }
func (p *Plan) PriceMonthlyCents() int64 { return p.priceMonthlyCents }
func (p *Plan) PriceYearlyCents() int64  { return p.priceYearlyCents }
func (p *Plan) Features() []string       { return p.features }
func (p *Plan) IsDefault() bool          { return p.isDefault }
func (p *Plan) CreatedAt() time.Time     { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time     { return p.updatedAt }

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(planID uint) error {
	if p.planID != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.planID = planID
	return nil
}

// UpdatePricing replaces the plan prices.
func (p *Plan) UpdatePricing(monthlyCents, yearlyCents int64) error {
	if monthlyCents < 0 || yearlyCents < 0 {
		return fmt.Errorf("plan prices cannot be negative")
	}
	p.priceMonthlyCents = monthlyCents
	p.priceYearlyCents = yearlyCents
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdateFeatures replaces the feature list.
func (p *Plan) UpdateFeatures(features []string) {
	p.features = features
	p.updatedAt = time.Now().UTC()
}

// MarkDefault marks this plan as the one preselected in the console.
func (p *Plan) MarkDefault() {
	p.isDefault = true
	p.updatedAt = time.Now().UTC()
}
