package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyUserRole   = "user_role"
	ContextKeyActivityID = "activity_id"
	ContextKeyOrgID      = "organization_id"
	ContextKeyActingAs   = "acting_as"
	ContextKeyRequestID  = "request_id"

	// Roles
	RoleTenant     = "tenant"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"

	// Database table names
	TableUsers         = "users"
	TableOrganizations = "organizations"
	TableActivities    = "activities"
	TableServices      = "services"
	TablePlans         = "plans"
	TableSubscriptions = "subscriptions"
	TableAnnouncements = "announcements"

	// Expiring-soon window used by dashboards and reminder emails, in days.
	ExpiringSoonDays = 7
)
