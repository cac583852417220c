package identity

import (
	"fmt"
	"strings"
	"time"

	"centro/internal/shared/id"
)

// Role is the coarse authorization role carried in access tokens and
// enforced by the casbin layer.
type Role string

const (
	RoleTenant     Role = "tenant"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleTenant, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsStaff reports whether the role grants access to the admin back office.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// User is a console login. Tenant users belong to an organization and
// operate a specific activity; staff users have neither.
type User struct {
	userID         uint
	sid            string
	email          string
	passwordHash   string
	name           string
	role           Role
	organizationID *uint
	activityID     *uint
	disabled       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUser creates a user. The password hash must already be computed by the
// caller; the domain never sees plaintext credentials.
func NewUser(email, passwordHash, name string, role Role, now time.Time) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		sid:          id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// UserReconstructParams carries all persisted fields back into the entity.
type UserReconstructParams struct {
	ID             uint
	SID            string
	Email          string
	PasswordHash   string
	Name           string
	Role           Role
	OrganizationID *uint
	ActivityID     *uint
	Disabled       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(p UserReconstructParams) (*User, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !p.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", p.Role)
	}

	return &User{
		userID:         p.ID,
		sid:            p.SID,
		email:          p.Email,
		passwordHash:   p.PasswordHash,
		name:           p.Name,
		role:           p.Role,
		organizationID: p.OrganizationID,
		activityID:     p.ActivityID,
		disabled:       p.Disabled,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (u *User) ID() uint              { return u.userID }
func (u *User) SID() string           { return u.sid }
func (u *User) Email() string         { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Name() string          { return u.name }
func (u *User) Role() Role            { return u.role }
func (u *User) OrganizationID() *uint { return u.organizationID }
func (u *User) ActivityID() *uint     { return u.activityID }
func (u *User) Disabled() bool        { return u.disabled }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// SetID assigns the storage identifier once, after the initial insert.
func (u *User) SetID(userID uint) error {
	if u.userID != 0 {
		return fmt.Errorf("user ID already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.userID = userID
	return nil
}

// AttachToTenant binds a tenant user to its organization and activity.
func (u *User) AttachToTenant(organizationID, activityID uint, now time.Time) error {
	if u.role != RoleTenant {
		return fmt.Errorf("only tenant users can be attached to an organization")
	}
	if organizationID == 0 || activityID == 0 {
		return fmt.Errorf("organization and activity are required")
	}
	u.organizationID = &organizationID
	u.activityID = &activityID
	u.updatedAt = now
	return nil
}

// Disable locks the account out without deleting it.
func (u *User) Disable(now time.Time) {
	u.disabled = true
	u.updatedAt = now
}

func (u *User) Enable(now time.Time) {
	u.disabled = false
	u.updatedAt = now
}

// ChangePassword stores a new hash computed by the caller.
func (u *User) ChangePassword(passwordHash string, now time.Time) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = now
	return nil
}
