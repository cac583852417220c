package permission

import (
	"fmt"

	"centro/internal/shared/logger"
)

// InitConsolePermissions seeds the back-office role grants. Idempotent:
// casbin ignores policies that already exist.
func InitConsolePermissions(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions: run the console day to day.
		{"admin", "subscription", "read"},
		{"admin", "subscription", "transition"},
		{"admin", "catalog", "read"},
		{"admin", "catalog", "write"},
		{"admin", "account", "read"},
		{"admin", "account", "write"},
		{"admin", "announcement", "read"},
		{"admin", "announcement", "write"},
		{"admin", "announcement", "publish"},
		{"admin", "dashboard", "read"},

		// Superadmin-only surfaces.
		{"superadmin", "subscription", "open"},
		{"superadmin", "impersonation", "use"},
	}

	for _, policy := range policies {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	// superadmin inherits everything admin can do.
	if err := e.AddRoleInheritance("superadmin", "admin"); err != nil {
		return err
	}

	log.Info("console permissions initialized")
	return nil
}
