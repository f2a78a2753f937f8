package domain

import (
	"fmt"
	"strings"
)

// DeclinedTestCard is rejected by the payment orchestrator; used to exercise
// the backend's compensation path without a real decline.
const DeclinedTestCard = "4111111111110000"

type PaymentMethod struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Validate applies the pre-network checks: nothing is sent to the backend
// until the form is well-formed.
func (m PaymentMethod) Validate() error {
	digits := strings.ReplaceAll(m.CardNumber, " ", "")
	if len(digits) < 13 {
		return fmt.Errorf("%w: invalid card number", ErrValidation)
	}
	if len(strings.TrimSpace(m.CardHolder)) < 3 {
		return fmt.Errorf("%w: card holder name required", ErrValidation)
	}
	if len(m.ExpiryDate) < 5 || m.ExpiryDate[2] != '/' {
		return fmt.Errorf("%w: invalid expiry date, expected MM/YY", ErrValidation)
	}
	if len(m.CVV) < 3 {
		return fmt.Errorf("%w: invalid cvv", ErrValidation)
	}
	return nil
}

// CardBrand detects the card network from the leading digits.
func (m PaymentMethod) CardBrand() string {
	n := strings.ReplaceAll(m.CardNumber, " ", "")
	switch {
	case strings.HasPrefix(n, "4"):
		return "visa"
	case len(n) >= 2 && n[0] == '5' && n[1] >= '1' && n[1] <= '5':
		return "mastercard"
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return "amex"
	default:
		return "unknown"
	}
}

// Normalized strips spaces from the card number for the wire payload.
func (m PaymentMethod) Normalized() PaymentMethod {
	m.CardNumber = strings.ReplaceAll(m.CardNumber, " ", "")
	return m
}
