package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"centro/internal/domain/subscription"
	"centro/internal/domain/subscription/valueobjects"
	"centro/internal/infrastructure/persistence/mappers"
	"centro/internal/infrastructure/persistence/models"
	"centro/internal/shared/constants"
	shareddb "centro/internal/shared/db"
	"centro/internal/shared/logger"
)

// allowedSubscriptionSortByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedSubscriptionSortByFields = map[string]bool{
	"id":                 true,
	"sid":                true,
	"activity_id":        true,
	"service_code":       true,
	"status":             true,
	"trial_ends_at":      true,
	"current_period_end": true,
	"manual_renew_date":  true,
	"created_at":         true,
	"updated_at":         true,
}

// lapsableStatuses are the stored statuses the expiry sweep cares about.
// cancelled, suspended, free and inactive never lapse by time.
var lapsableStatuses = []string{
	string(valueobjects.StatusTrial),
	string(valueobjects.StatusActive),
	string(valueobjects.StatusPastDue),
}

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(
	db *gorm.DB,
	logger logger.Interface,
) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := shareddb.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created",
		"id", model.ID,
		"activity_id", model.ActivityID,
		"service_code", model.ServiceCode,
		"status", model.Status,
	)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := shareddb.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, subscription.ErrSubscriptionNotFound
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := shareddb.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, subscription.ErrSubscriptionNotFound
		}
		r.logger.Errorw("failed to get subscription by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByActivityAndService(ctx context.Context, activityID uint, serviceCode string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := shareddb.GetTxFromContext(ctx, r.db).
		Where("activity_id = ? AND service_code = ?", activityID, serviceCode).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by activity and service",
			"activity_id", activityID,
			"service_code", serviceCode,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByActivityID(ctx context.Context, activityID uint) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	if err := shareddb.GetTxFromContext(ctx, r.db).
		Where("activity_id = ?", activityID).
		Order("service_code ASC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions by activity ID", "activity_id", activityID, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

func (r *SubscriptionRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID uint) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	if err := shareddb.GetTxFromContext(ctx, r.db).
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.activity_id",
			constants.TableActivities, constants.TableActivities, constants.TableSubscriptions)).
		Where(fmt.Sprintf("%s.organization_id = ?", constants.TableActivities), organizationID).
		Where(fmt.Sprintf("%s.deleted_at IS NULL", constants.TableActivities)).
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions by organization ID", "organization_id", organizationID, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

// Update persists the aggregate with an optimistic version check. The entity
// has already bumped its version, so the row must still hold the previous one.
func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "id", sub.ID(), "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := shareddb.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":             model.Status,
			"billing_cycle":      model.BillingCycle,
			"trial_ends_at":      model.TrialEndsAt,
			"current_period_end": model.CurrentPeriodEnd,
			"manual_renew_date":  model.ManualRenewDate,
			"payment_method":     model.PaymentMethod,
			"is_free_promo":      model.IsFreePromo,
			"payment_reference":  model.PaymentReference,
			"manual_renew_notes": model.ManualRenewNotes,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warnw("subscription version conflict",
			"id", model.ID,
			"expected_version", model.Version-1,
		)
		return subscription.ErrConcurrentModification
	}

	r.logger.Infow("subscription updated", "id", model.ID, "status", model.Status, "version", model.Version)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindExpiring(ctx context.Context, now time.Time, days int) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	threshold := now.AddDate(0, 0, days)

	// Over-approximates on the deadline columns; callers refine with the
	// resolver, which knows which column governs each payment method.
	if err := shareddb.GetTxFromContext(ctx, r.db).
		Where("status IN ?", lapsableStatuses).
		Where("is_free_promo = ?", false).
		Where(
			"(trial_ends_at BETWEEN ? AND ?) OR (current_period_end BETWEEN ? AND ?) OR (manual_renew_date BETWEEN ? AND ?)",
			now, threshold, now, threshold, now, threshold,
		).
		Order("id ASC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to find expiring subscriptions", "days", days, "error", err)
		return nil, fmt.Errorf("failed to find expiring subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

func (r *SubscriptionRepositoryImpl) FindLapsed(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	if err := shareddb.GetTxFromContext(ctx, r.db).
		Where("status IN ?", lapsableStatuses).
		Where("is_free_promo = ?", false).
		Where(
			"(trial_ends_at IS NOT NULL AND trial_ends_at < ?) OR (current_period_end IS NOT NULL AND current_period_end < ?) OR (manual_renew_date IS NOT NULL AND manual_renew_date < ?)",
			now, now, now,
		).
		Order("id ASC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to find lapsed subscriptions", "error", err)
		return nil, fmt.Errorf("failed to find lapsed subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error) {
	var subscriptionModels []*models.SubscriptionModel
	var total int64

	query := shareddb.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{})

	if filter.ActivityID != nil {
		query = query.Where("activity_id = ?", *filter.ActivityID)
	}
	if filter.ServiceCode != nil {
		query = query.Where("service_code = ?", *filter.ServiceCode)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := filter.SortBy
	if sortBy == "" || !allowedSubscriptionSortByFields[sortBy] {
		sortBy = "created_at"
	}
	order := "DESC"
	if !filter.SortDesc {
		order = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(subscriptionModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

// CountByStatus counts subscriptions by stored status (excluding soft-deleted records).
func (r *SubscriptionRepositoryImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := shareddb.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions by status", "status", status, "error", err)
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}
