package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "centro/internal/domain/subscription/valueobjects"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("subscription_status", func(fl validator.FieldLevel) bool {
		return vo.SubscriptionStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("billing_cycle", func(fl validator.FieldLevel) bool {
		_, err := vo.ParseBillingCycle(fl.Field().String())
		return err == nil
	})
}
