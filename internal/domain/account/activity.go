package account

import (
	"fmt"
	"strings"
	"time"

	"centro/internal/shared/id"
)

// Activity is a tenant-owned business entity (a restaurant, a shop). It owns
// service subscriptions and belongs to at most one organization; activities
// created by agencies carry the agency's organization ID.
type Activity struct {
	activityID     uint
	sid            string
	organizationID *uint
	name           string
	vatNumber      string
	city           string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewActivity creates an activity, optionally under an organization.
func NewActivity(name string, organizationID *uint) (*Activity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("activity name is required")
	}
	if organizationID != nil && *organizationID == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}

	now := time.Now().UTC()
	return &Activity{
		sid:            id.MustGenerateWithPrefix(id.PrefixActivity, id.DefaultLength),
		organizationID: organizationID,
		name:           name,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ActivityReconstructParams carries persisted fields back.
type ActivityReconstructParams struct {
	ID             uint
	SID            string
	OrganizationID *uint
	Name           string
	VATNumber      string
	City           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReconstructActivity rebuilds an activity from persistence.
func ReconstructActivity(p ActivityReconstructParams) (*Activity, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("activity ID cannot be zero")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("activity name is required")
	}

	return &Activity{
		activityID:     p.ID,
		sid:            p.SID,
		organizationID: p.OrganizationID,
		name:           p.Name,
		vatNumber:      p.VATNumber,
		city:           p.City,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (a *Activity) ID() uint              { return a.activityID }
func (a *Activity) SID() string           { return a.sid }
func (a *Activity) OrganizationID() *uint { return a.organizationID }
func (a *Activity) Name() string          { return a.name }
func (a *Activity) VATNumber() string     { return a.vatNumber }
func (a *Activity) City() string          { return a.city }
func (a *Activity) CreatedAt() time.Time  { return a.createdAt }
func (a *Activity) UpdatedAt() time.Time  { return a.updatedAt }

// SetID sets the activity ID (only for persistence layer use)
func (a *Activity) SetID(activityID uint) error {
	if a.activityID != 0 {
		return fmt.Errorf("activity ID is already set")
	}
	if activityID == 0 {
		return fmt.Errorf("activity ID cannot be zero")
	}
	a.activityID = activityID
	return nil
}

// UpdateDetails updates business registry fields.
func (a *Activity) UpdateDetails(name, vatNumber, city string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("activity name is required")
	}
	a.name = name
	a.vatNumber = vatNumber
	a.city = city
	a.updatedAt = time.Now().UTC()
	return nil
}

// AttachToOrganization moves a standalone activity under an organization.
func (a *Activity) AttachToOrganization(organizationID uint) error {
	if organizationID == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	a.organizationID = &organizationID
	a.updatedAt = time.Now().UTC()
	return nil
}
