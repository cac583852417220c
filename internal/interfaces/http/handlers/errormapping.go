package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"centro/internal/domain/account"
	"centro/internal/domain/catalog"
	"centro/internal/domain/communication"
	"centro/internal/domain/identity"
	"centro/internal/domain/subscription"
	apperrors "centro/internal/shared/errors"
	"centro/internal/shared/utils"
)

// respondDomainError translates domain sentinel errors into the AppError
// taxonomy before answering. Unknown errors become an opaque 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, subscription.ErrSubscriptionNotFound),
		errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, catalog.ErrPlanNotFound),
		errors.Is(err, account.ErrOrganizationNotFound),
		errors.Is(err, account.ErrActivityNotFound),
		errors.Is(err, communication.ErrAnnouncementNotFound),
		errors.Is(err, identity.ErrUserNotFound):
		utils.ErrorResponseWithError(c, apperrors.NewNotFoundError(err.Error()))

	case errors.Is(err, subscription.ErrSubscriptionExists),
		errors.Is(err, subscription.ErrConcurrentModification),
		errors.Is(err, catalog.ErrServiceCodeExists),
		errors.Is(err, catalog.ErrPlanCodeExists),
		errors.Is(err, identity.ErrEmailAlreadyExists):
		utils.ErrorResponseWithError(c, apperrors.NewConflictError(err.Error()))

	case errors.Is(err, subscription.ErrInvalidTransitionTarget),
		errors.Is(err, subscription.ErrMissingRenewalDate),
		errors.Is(err, subscription.ErrMissingBillingCycle),
		errors.Is(err, subscription.ErrFreeTierUnavailable),
		errors.Is(err, catalog.ErrServiceArchived),
		errors.Is(err, communication.ErrAnnouncementNotDraft),
		errors.Is(err, communication.ErrAnnouncementArchived),
		errors.Is(err, account.ErrNotAnAgency):
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))

	case errors.Is(err, identity.ErrInvalidCredentials):
		utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError(err.Error()))

	case errors.Is(err, identity.ErrUserDisabled):
		utils.ErrorResponseWithError(c, apperrors.NewForbiddenError(err.Error()))

	default:
		utils.ErrorResponseWithError(c, err)
	}
}
