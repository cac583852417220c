package account

import (
	"fmt"
	"strings"
	"time"

	"centro/internal/shared/id"
)

// AccountType distinguishes a single business from an agency managing
// multiple client activities.
type AccountType string

const (
	AccountTypeSingle AccountType = "single"
	AccountTypeAgency AccountType = "agency"
)

func (t AccountType) IsValid() bool {
	return t == AccountTypeSingle || t == AccountTypeAgency
}

// Organization is the account container. Agencies own multiple activities and
// receive a volume discount on aggregate billing.
type Organization struct {
	orgID        uint
	sid          string
	name         string
	accountType  AccountType
	billingEmail string
	suspended    bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewOrganization creates an organization account.
func NewOrganization(name, billingEmail string, accountType AccountType) (*Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if !accountType.IsValid() {
		return nil, fmt.Errorf("invalid account type: %s", accountType)
	}

	now := time.Now().UTC()
	return &Organization{
		sid:          id.MustGenerateWithPrefix(id.PrefixOrganization, id.DefaultLength),
		name:         name,
		accountType:  accountType,
		billingEmail: billingEmail,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// OrganizationReconstructParams carries persisted fields back.
type OrganizationReconstructParams struct {
	ID           uint
	SID          string
	Name         string
	AccountType  AccountType
	BillingEmail string
	Suspended    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructOrganization rebuilds an organization from persistence.
func ReconstructOrganization(p OrganizationReconstructParams) (*Organization, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if !p.AccountType.IsValid() {
		return nil, fmt.Errorf("invalid account type: %s", p.AccountType)
	}

	return &Organization{
		orgID:        p.ID,
		sid:          p.SID,
		name:         p.Name,
		accountType:  p.AccountType,
		billingEmail: p.BillingEmail,
		suspended:    p.Suspended,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (o *Organization) ID() uint                 { return o.orgID }
func (o *Organization) SID() string              { return o.sid }
func (o *Organization) Name() string             { return o.name }
func (o *Organization) AccountType() AccountType { return o.accountType }
func (o *Organization) BillingEmail() string     { return o.billingEmail }
func (o *Organization) Suspended() bool          { return o.suspended }
func (o *Organization) CreatedAt() time.Time     { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time     { return o.updatedAt }

// IsAgency reports whether this account manages client activities.
func (o *Organization) IsAgency() bool {
	return o.accountType == AccountTypeAgency
}

// SetID sets the organization ID (only for persistence layer use)
func (o *Organization) SetID(orgID uint) error {
	if o.orgID != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if orgID == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.orgID = orgID
	return nil
}

// Rename updates the display name.
func (o *Organization) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("organization name is required")
	}
	o.name = name
	o.updatedAt = time.Now().UTC()
	return nil
}

// UpgradeToAgency converts a single account into an agency.
func (o *Organization) UpgradeToAgency() {
	if o.accountType == AccountTypeAgency {
		return
	}
	o.accountType = AccountTypeAgency
	o.updatedAt = time.Now().UTC()
}

// Suspend blocks the whole account.
func (o *Organization) Suspend() {
	o.suspended = true
	o.updatedAt = time.Now().UTC()
}

// Reinstate lifts an account suspension.
func (o *Organization) Reinstate() {
	o.suspended = false
	o.updatedAt = time.Now().UTC()
}
