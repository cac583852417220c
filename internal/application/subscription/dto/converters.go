package dto

import (
	"time"

	"centro/internal/domain/subscription"
)

// ToServiceStatusDTO converts a resolution for an (activity, service) pair.
func ToServiceStatusDTO(activityID uint, serviceCode string, res subscription.Resolution) ServiceStatusDTO {
	return ServiceStatusDTO{
		ActivityID:      activityID,
		ServiceCode:     serviceCode,
		EffectiveStatus: res.EffectiveStatus.String(),
		IsActive:        res.IsActive,
		DaysRemaining:   res.DaysRemaining,
		ExpiringSoon:    res.ExpiringSoon(),
	}
}

// ToSubscriptionDTO converts a stored subscription plus its resolution.
func ToSubscriptionDTO(sub *subscription.Subscription, now time.Time) *SubscriptionDTO {
	if sub == nil {
		return nil
	}

	res := subscription.Resolve(sub, now)

	var cycle *string
	if bc := sub.BillingCycle(); bc != nil {
		s := bc.String()
		cycle = &s
	}

	return &SubscriptionDTO{
		SID:              sub.SID(),
		ActivityID:       sub.ActivityID(),
		ServiceCode:      sub.ServiceCode(),
		Status:           sub.Status().String(),
		EffectiveStatus:  res.EffectiveStatus.String(),
		IsActive:         res.IsActive,
		DaysRemaining:    res.DaysRemaining,
		BillingCycle:     cycle,
		PaymentMethod:    sub.PaymentMethod().String(),
		IsFreePromo:      sub.IsFreePromo(),
		TrialEndsAt:      sub.TrialEndsAt(),
		CurrentPeriodEnd: sub.CurrentPeriodEnd(),
		ManualRenewDate:  sub.ManualRenewDate(),
		PaymentReference: sub.PaymentReference(),
		ManualRenewNotes: sub.ManualRenewNotes(),
		CreatedAt:        sub.CreatedAt(),
		UpdatedAt:        sub.UpdatedAt(),
	}
}

// ToSubscriptionDTOList converts a slice of subscriptions.
func ToSubscriptionDTOList(subs []*subscription.Subscription, now time.Time) []*SubscriptionDTO {
	dtos := make([]*SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		dtos = append(dtos, ToSubscriptionDTO(sub, now))
	}
	return dtos
}
