package mappers

import (
	"fmt"

	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
	"centro/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.SubscriptionStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	var billingCycle *vo.BillingCycle
	if model.BillingCycle != nil && *model.BillingCycle != "" {
		bc, err := vo.ParseBillingCycle(*model.BillingCycle)
		if err != nil {
			return nil, fmt.Errorf("failed to parse billing cycle: %w", err)
		}
		billingCycle = &bc
	}

	paymentMethod, err := vo.ParsePaymentMethod(model.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment method: %w", err)
	}

	return subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:               model.ID,
		SID:              model.SID,
		ActivityID:       model.ActivityID,
		ServiceCode:      model.ServiceCode,
		Status:           status,
		BillingCycle:     billingCycle,
		TrialEndsAt:      model.TrialEndsAt,
		CurrentPeriodEnd: model.CurrentPeriodEnd,
		ManualRenewDate:  model.ManualRenewDate,
		PaymentMethod:    paymentMethod,
		IsFreePromo:      model.IsFreePromo,
		PaymentReference: model.PaymentReference,
		ManualRenewNotes: model.ManualRenewNotes,
		Version:          model.Version,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("subscription entity cannot be nil")
	}

	var billingCycle *string
	if bc := entity.BillingCycle(); bc != nil {
		s := bc.String()
		billingCycle = &s
	}

	return &models.SubscriptionModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		ActivityID:       entity.ActivityID(),
		ServiceCode:      entity.ServiceCode(),
		Status:           string(entity.Status()),
		BillingCycle:     billingCycle,
		TrialEndsAt:      entity.TrialEndsAt(),
		CurrentPeriodEnd: entity.CurrentPeriodEnd(),
		ManualRenewDate:  entity.ManualRenewDate(),
		PaymentMethod:    string(entity.PaymentMethod()),
		IsFreePromo:      entity.IsFreePromo(),
		PaymentReference: entity.PaymentReference(),
		ManualRenewNotes: entity.ManualRenewNotes(),
		Version:          entity.Version(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map subscription %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
