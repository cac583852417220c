package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	accountUsecases "centro/internal/application/account/usecases"
	billingUsecases "centro/internal/application/billing/usecases"
	catalogUsecases "centro/internal/application/catalog/usecases"
	communicationUsecases "centro/internal/application/communication/usecases"
	identityUsecases "centro/internal/application/identity/usecases"
	subUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/domain/identity"
	"centro/internal/domain/shared/events"
	"centro/internal/domain/subscription"
	"centro/internal/infrastructure/auth"
	"centro/internal/infrastructure/cache"
	"centro/internal/infrastructure/config"
	"centro/internal/infrastructure/permission"
	"centro/internal/infrastructure/ratelimit"
	"centro/internal/infrastructure/repository"
	"centro/internal/interfaces/http/handlers"
	"centro/internal/interfaces/http/middleware"
	shareddb "centro/internal/shared/db"
	"centro/internal/shared/logger"
	"centro/internal/shared/markdown"

	_ "centro/docs"
)

// Router wires the HTTP surface: repositories, use cases, handlers and
// middleware, in that order.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config

	authHandler          *handlers.AuthHandler
	subscriptionHandler  *handlers.SubscriptionHandler
	adminSubHandler      *handlers.AdminSubscriptionHandler
	catalogHandler       *handlers.CatalogHandler
	accountHandler       *handlers.AccountHandler
	billingHandler       *handlers.BillingHandler
	announcementHandler  *handlers.AnnouncementHandler
	userHandler          *handlers.UserHandler
	impersonationHandler *handlers.ImpersonationHandler
	healthHandler        *handlers.HealthHandler

	authMiddleware          *middleware.AuthMiddleware
	permissionMiddleware    *middleware.PermissionMiddleware
	accessGateMiddleware    *middleware.AccessGateMiddleware
	impersonationMiddleware *middleware.ImpersonationMiddleware
	rateLimitMiddleware     *middleware.RateLimitMiddleware
	logger                  logger.Interface
}

// jwtServiceAdapter bridges the infrastructure token service to the use
// case level TokenIssuer port.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(user *identity.User) (*identityUsecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(user)
	if err != nil {
		return nil, err
	}
	return &identityUsecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter builds the full HTTP dependency graph.
func NewRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	enforcer *permission.Enforcer,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()

	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	serviceRepo := repository.NewServiceRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	organizationRepo := repository.NewOrganizationRepository(db, log)
	activityRepo := repository.NewActivityRepository(db, log)
	announcementRepo := repository.NewAnnouncementRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokenIssuer := &jwtServiceAdapter{jwtSvc}

	statsTTL := time.Duration(cfg.Subscription.StatsCacheTTL) * time.Second
	statsCache := cache.NewRedisStatsCache(redisClient, statsTTL, log)

	renderer := markdown.NewRenderer()

	getServiceStatusUC := subUsecases.NewGetServiceStatusUseCase(subscriptionRepo, log)
	listStatusesUC := subUsecases.NewListActivityStatusesUseCase(subscriptionRepo, serviceRepo, log)
	activateTrialUC := subUsecases.NewActivateTrialUseCase(subscriptionRepo, serviceRepo, log)
	activateFreeUC := subUsecases.NewActivateFreeUseCase(subscriptionRepo, serviceRepo, log)
	cancelSubscriptionUC := subUsecases.NewCancelSubscriptionUseCase(subscriptionRepo, log)
	txMgr := shareddb.NewTransactionManager(db)
	applyTransitionUC := subUsecases.NewApplyTransitionUseCase(subscriptionRepo, serviceRepo, txMgr, log)

	dispatcher := events.NewInMemoryEventDispatcher(100)
	if err := dispatcher.Subscribe(subscription.EventTypeStatusChanged, newAuditLogHandler(log)); err != nil {
		log.Warnw("failed to subscribe audit handler", "error", err)
	}
	if err := dispatcher.Start(); err != nil {
		log.Warnw("failed to start event dispatcher", "error", err)
	} else {
		applyTransitionUC.SetEventPublisher(dispatcher)
	}
	listSubscriptionsUC := subUsecases.NewListSubscriptionsUseCase(subscriptionRepo, log)

	getDashboardStatsUC := billingUsecases.NewGetDashboardStatsUseCase(subscriptionRepo, serviceRepo, statsCache, log)
	getOrgBillingSummaryUC := billingUsecases.NewGetOrgBillingSummaryUseCase(
		subscriptionRepo, serviceRepo, organizationRepo, activityRepo, cfg.DiscountTable(), log)

	createServiceUC := catalogUsecases.NewCreateServiceUseCase(serviceRepo, log)
	updateServiceUC := catalogUsecases.NewUpdateServiceUseCase(serviceRepo, log)
	listServicesUC := catalogUsecases.NewListServicesUseCase(serviceRepo, log)
	archiveServiceUC := catalogUsecases.NewArchiveServiceUseCase(serviceRepo, log)
	createPlanUC := catalogUsecases.NewCreatePlanUseCase(planRepo, serviceRepo, log)
	updatePlanUC := catalogUsecases.NewUpdatePlanUseCase(planRepo, log)
	listPlansUC := catalogUsecases.NewListPlansUseCase(planRepo, log)

	createOrganizationUC := accountUsecases.NewCreateOrganizationUseCase(organizationRepo, log)
	listOrganizationsUC := accountUsecases.NewListOrganizationsUseCase(organizationRepo, log)
	createActivityUC := accountUsecases.NewCreateActivityUseCase(activityRepo, organizationRepo, log)
	listActivitiesUC := accountUsecases.NewListActivitiesUseCase(activityRepo, log)

	createAnnouncementUC := communicationUsecases.NewCreateAnnouncementUseCase(announcementRepo, renderer, log)
	listAnnouncementsUC := communicationUsecases.NewListAnnouncementsUseCase(announcementRepo, log)
	publishAnnouncementUC := communicationUsecases.NewPublishAnnouncementUseCase(announcementRepo, log)

	loginUC := identityUsecases.NewLoginUseCase(userRepo, hasher, tokenIssuer, log)
	createUserUC := identityUsecases.NewCreateUserUseCase(userRepo, hasher, log)

	rateLimiter := ratelimit.NewRedisRateLimiter(redisClient)
	authRateConfig := ratelimit.RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 100}

	return &Router{
		engine: engine,
		cfg:    cfg,

		authHandler:         handlers.NewAuthHandler(loginUC, userRepo, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(getServiceStatusUC, listStatusesUC, activateTrialUC, activateFreeUC, cancelSubscriptionUC, log),
		adminSubHandler:     handlers.NewAdminSubscriptionHandler(listSubscriptionsUC, applyTransitionUC, log),
		catalogHandler: handlers.NewCatalogHandler(
			createServiceUC, updateServiceUC, listServicesUC, archiveServiceUC,
			createPlanUC, updatePlanUC, listPlansUC, log),
		accountHandler:       handlers.NewAccountHandler(createOrganizationUC, listOrganizationsUC, createActivityUC, listActivitiesUC, log),
		billingHandler:       handlers.NewBillingHandler(getOrgBillingSummaryUC, getDashboardStatsUC, log),
		announcementHandler:  handlers.NewAnnouncementHandler(createAnnouncementUC, listAnnouncementsUC, publishAnnouncementUC, organizationRepo, userRepo, log),
		userHandler:          handlers.NewUserHandler(createUserUC, log),
		impersonationHandler: handlers.NewImpersonationHandler(activityRepo, log),
		healthHandler:        handlers.NewHealthHandler(db),

		authMiddleware:          middleware.NewAuthMiddleware(jwtSvc, log),
		permissionMiddleware:    middleware.NewPermissionMiddleware(enforcer, log),
		accessGateMiddleware:    middleware.NewAccessGateMiddleware(getServiceStatusUC, log),
		impersonationMiddleware: middleware.NewImpersonationMiddleware(log),
		rateLimitMiddleware:     middleware.NewRateLimitMiddleware(rateLimiter, authRateConfig, log),
		logger:                  log,
	}
}

// SetupRoutes registers every route group.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthHandler.Check)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")

	api.POST("/auth/login", r.rateLimitMiddleware.Limit(), r.authHandler.Login)

	authed := api.Group("")
	authed.Use(r.authMiddleware.RequireAuth())
	authed.Use(r.impersonationMiddleware.ResolveActingAs())
	{
		authed.GET("/auth/me", r.authHandler.Me)

		authed.GET("/services", r.catalogHandler.ListServices)
		authed.GET("/services/status", r.subscriptionHandler.ListStatuses)
		authed.GET("/services/:code/status", r.subscriptionHandler.GetServiceStatus)
		authed.POST("/services/:code/trial", r.subscriptionHandler.ActivateTrial)
		authed.POST("/services/:code/free", r.subscriptionHandler.ActivateFree)
		authed.DELETE("/services/:code/subscription", r.subscriptionHandler.Cancel)
		authed.GET("/services/:code/access",
			r.accessGateMiddleware.RequireServiceAccess("code"),
			r.subscriptionHandler.CheckAccess)

		authed.GET("/billing/summary", r.billingHandler.GetMySummary)
		authed.GET("/announcements", r.announcementHandler.ListForTenant)
	}

	admin := authed.Group("/admin")
	admin.Use(r.permissionMiddleware.RequireStaff())
	{
		perm := r.permissionMiddleware

		admin.GET("/subscriptions",
			perm.RequirePermission("subscription", "read"), r.adminSubHandler.List)
		admin.POST("/subscriptions/transitions",
			perm.RequirePermission("subscription", "transition"), r.adminSubHandler.ApplyTransition)
		admin.POST("/subscriptions/open",
			perm.RequirePermission("subscription", "open"), r.adminSubHandler.OpenService)

		admin.GET("/services",
			perm.RequirePermission("catalog", "read"), r.catalogHandler.ListServices)
		admin.POST("/services",
			perm.RequirePermission("catalog", "write"), r.catalogHandler.CreateService)
		admin.PUT("/services/:id",
			perm.RequirePermission("catalog", "write"), r.catalogHandler.UpdateService)
		admin.DELETE("/services/:id",
			perm.RequirePermission("catalog", "write"), r.catalogHandler.ArchiveService)
		admin.GET("/services/:id/plans",
			perm.RequirePermission("catalog", "read"), r.catalogHandler.ListPlans)
		admin.POST("/services/:id/plans",
			perm.RequirePermission("catalog", "write"), r.catalogHandler.CreatePlan)
		admin.PUT("/services/:id/plans/:plan_id",
			perm.RequirePermission("catalog", "write"), r.catalogHandler.UpdatePlan)

		admin.GET("/organizations",
			perm.RequirePermission("account", "read"), r.accountHandler.ListOrganizations)
		admin.POST("/organizations",
			perm.RequirePermission("account", "write"), r.accountHandler.CreateOrganization)
		admin.GET("/organizations/:id/billing",
			perm.RequirePermission("account", "read"), r.billingHandler.GetOrganizationSummary)
		admin.GET("/activities",
			perm.RequirePermission("account", "read"), r.accountHandler.ListActivities)
		admin.POST("/activities",
			perm.RequirePermission("account", "write"), r.accountHandler.CreateActivity)

		admin.GET("/announcements",
			perm.RequirePermission("announcement", "read"), r.announcementHandler.ListForAdmin)
		admin.POST("/announcements",
			perm.RequirePermission("announcement", "write"), r.announcementHandler.Create)
		admin.POST("/announcements/:sid/publish",
			perm.RequirePermission("announcement", "publish"), r.announcementHandler.Publish)

		admin.GET("/dashboard/stats",
			perm.RequirePermission("dashboard", "read"), r.billingHandler.GetDashboardStats)

		admin.POST("/users",
			perm.RequirePermission("account", "write"), r.userHandler.CreateUser)

		admin.POST("/impersonate",
			perm.RequirePermission("impersonation", "use"), r.impersonationHandler.Impersonate)
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
