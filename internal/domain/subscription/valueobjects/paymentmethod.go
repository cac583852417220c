package valueobjects

import (
	"fmt"
	"strings"
)

// PaymentMethod is how a billed subscription is collected. Bonifico (bank
// transfer) has no automatic renewal, so it relies on an admin-maintained
// manual renewal date.
type PaymentMethod string

const (
	PaymentMethodStripe   PaymentMethod = "stripe"
	PaymentMethodBonifico PaymentMethod = "bonifico"
	PaymentMethodManual   PaymentMethod = "manual"
)

var ValidPaymentMethods = map[PaymentMethod]bool{
	PaymentMethodStripe:   true,
	PaymentMethodBonifico: true,
	PaymentMethodManual:   true,
}

// ParsePaymentMethod normalizes and validates a payment method string.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	method := PaymentMethod(normalized)

	if normalized == "" {
		return "", fmt.Errorf("payment method cannot be empty")
	}

	if !ValidPaymentMethods[method] {
		return "", fmt.Errorf("invalid payment method: %s", value)
	}

	return method, nil
}

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	return ValidPaymentMethods[p]
}

// IsAutomatic reports whether renewal dates come from the payment provider
// rather than from an admin.
func (p PaymentMethod) IsAutomatic() bool {
	return p == PaymentMethodStripe
}
