package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"centro/internal/application/subscription/dto"
	"centro/internal/domain/catalog"
	"centro/internal/domain/shared/events"
	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

// ApplyTransitionCommand is an admin-initiated status change on one
// (activity, service) pair. Optional fields are pointers so absent values
// leave the stored ones untouched.
type ApplyTransitionCommand struct {
	ActivityID       uint
	ServiceCode      string
	TargetStatus     string
	BillingCycle     *string
	PaymentMethod    *string
	IsFreePromo      bool
	TrialDays        int
	ManualRenewDate  *time.Time
	CurrentPeriodEnd *time.Time
	PaymentReference *string
	ManualRenewNotes *string
}

// TransactionManager serializes a read-modify-write against the store. The
// subscription repository joins the transaction through the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ApplyTransitionUseCase validates and persists an admin status transition.
// Each attempt runs inside a transaction so the load and the version-checked
// update see the same row state; on an optimistic lock conflict it reloads
// the record and retries once, so two admins editing the same subscription
// get a clean failure rather than a silent overwrite.
type ApplyTransitionUseCase struct {
	subscriptionRepo subscription.Repository
	serviceRepo      catalog.ServiceRepository
	txMgr            TransactionManager
	publisher        events.EventPublisher
	logger           logger.Interface
}

func NewApplyTransitionUseCase(
	subscriptionRepo subscription.Repository,
	serviceRepo catalog.ServiceRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *ApplyTransitionUseCase {
	return &ApplyTransitionUseCase{
		subscriptionRepo: subscriptionRepo,
		serviceRepo:      serviceRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// SetEventPublisher enables domain event publication after successful
// transitions. Without one the usecase works the same, it just stays quiet.
func (uc *ApplyTransitionUseCase) SetEventPublisher(publisher events.EventPublisher) {
	uc.publisher = publisher
}

func (uc *ApplyTransitionUseCase) Execute(ctx context.Context, cmd ApplyTransitionCommand) (*dto.SubscriptionDTO, error) {
	if cmd.ActivityID == 0 {
		return nil, fmt.Errorf("activity ID is required")
	}
	if cmd.ServiceCode == "" {
		return nil, fmt.Errorf("service code is required")
	}

	req, err := uc.buildRequest(cmd)
	if err != nil {
		return nil, err
	}

	svc, err := uc.serviceRepo.GetByCode(ctx, cmd.ServiceCode)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_code", cmd.ServiceCode)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	policy := subscription.ServicePolicy{
		HasFreeTier:      svc.HasFreeTier(),
		DefaultTrialDays: svc.TrialDays(),
	}

	now := biztime.NowUTC()

	sub, from, created, err := uc.transitionInTx(ctx, cmd, req, policy, now)
	if errors.Is(err, subscription.ErrConcurrentModification) {
		uc.logger.Warnw("concurrent modification, retrying transition",
			"activity_id", cmd.ActivityID,
			"service_code", cmd.ServiceCode,
		)
		sub, from, created, err = uc.transitionInTx(ctx, cmd, req, policy, now)
	}
	if err != nil {
		return nil, err
	}

	uc.publishEvents(sub, from, created, now)

	uc.logger.Infow("subscription transition applied",
		"subscription_sid", sub.SID(),
		"activity_id", cmd.ActivityID,
		"service_code", cmd.ServiceCode,
		"target_status", cmd.TargetStatus,
		"free_promo", cmd.IsFreePromo,
	)

	return dto.ToSubscriptionDTO(sub, now), nil
}

// transitionInTx runs one transition attempt inside a transaction, so the
// load and the version-checked write cannot interleave with a concurrent
// admin action on the same (activity, service) pair.
func (uc *ApplyTransitionUseCase) transitionInTx(
	ctx context.Context,
	cmd ApplyTransitionCommand,
	req subscription.TransitionRequest,
	policy subscription.ServicePolicy,
	now time.Time,
) (sub *subscription.Subscription, from vo.SubscriptionStatus, created bool, err error) {
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		sub, from, created, txErr = uc.transitionOnce(txCtx, cmd, req, policy, now)
		return txErr
	})
	return sub, from, created, err
}

func (uc *ApplyTransitionUseCase) transitionOnce(
	ctx context.Context,
	cmd ApplyTransitionCommand,
	req subscription.TransitionRequest,
	policy subscription.ServicePolicy,
	now time.Time,
) (*subscription.Subscription, vo.SubscriptionStatus, bool, error) {
	sub, err := uc.subscriptionRepo.GetByActivityAndService(ctx, cmd.ActivityID, cmd.ServiceCode)
	if err != nil {
		uc.logger.Errorw("failed to get subscription",
			"error", err,
			"activity_id", cmd.ActivityID,
			"service_code", cmd.ServiceCode,
		)
		return nil, "", false, fmt.Errorf("failed to get subscription: %w", err)
	}

	created := false
	if sub == nil {
		// First transition for this pair creates the record.
		sub, err = uc.newSubscriptionFor(cmd, now)
		if err != nil {
			return nil, "", false, err
		}
		created = true
	}
	from := sub.Status()

	if err := sub.ApplyTransition(req, policy, now); err != nil {
		return nil, "", false, err
	}

	if created {
		if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
			uc.logger.Errorw("failed to create subscription", "error", err, "activity_id", cmd.ActivityID)
			return nil, "", false, fmt.Errorf("failed to create subscription: %w", err)
		}
		return sub, from, true, nil
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		if errors.Is(err, subscription.ErrConcurrentModification) {
			return nil, "", false, err
		}
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_sid", sub.SID())
		return nil, "", false, fmt.Errorf("failed to update subscription: %w", err)
	}
	return sub, from, false, nil
}

func (uc *ApplyTransitionUseCase) publishEvents(sub *subscription.Subscription, from vo.SubscriptionStatus, created bool, now time.Time) {
	if uc.publisher == nil {
		return
	}
	if created {
		if err := uc.publisher.Publish(subscription.NewCreatedEvent(sub, now)); err != nil {
			uc.logger.Warnw("failed to publish created event", "error", err, "subscription_sid", sub.SID())
		}
	}
	if err := uc.publisher.Publish(subscription.NewStatusChangedEvent(sub, from, now)); err != nil {
		uc.logger.Warnw("failed to publish status changed event", "error", err, "subscription_sid", sub.SID())
	}
}

// newSubscriptionFor seeds a blank record so the transition engine applies
// the same rules to first-time and existing subscriptions.
func (uc *ApplyTransitionUseCase) newSubscriptionFor(cmd ApplyTransitionCommand, now time.Time) (*subscription.Subscription, error) {
	sub, err := subscription.NewTrialSubscription(cmd.ActivityID, cmd.ServiceCode, subscription.MinTrialDays, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

func (uc *ApplyTransitionUseCase) buildRequest(cmd ApplyTransitionCommand) (subscription.TransitionRequest, error) {
	var req subscription.TransitionRequest

	target := vo.SubscriptionStatus(cmd.TargetStatus)
	if !target.IsValid() {
		return req, fmt.Errorf("invalid target status: %s", cmd.TargetStatus)
	}
	req.Target = target

	if cmd.BillingCycle != nil {
		cycle, err := vo.ParseBillingCycle(*cmd.BillingCycle)
		if err != nil {
			return req, err
		}
		req.BillingCycle = &cycle
	}
	if cmd.PaymentMethod != nil {
		method, err := vo.ParsePaymentMethod(*cmd.PaymentMethod)
		if err != nil {
			return req, err
		}
		req.PaymentMethod = &method
	}

	req.IsFreePromo = cmd.IsFreePromo
	req.TrialDays = cmd.TrialDays
	req.ManualRenewDate = cmd.ManualRenewDate
	req.CurrentPeriodEnd = cmd.CurrentPeriodEnd
	req.PaymentReference = cmd.PaymentReference
	req.ManualRenewNotes = cmd.ManualRenewNotes
	return req, nil
}
