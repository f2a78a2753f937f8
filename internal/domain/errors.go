package domain

import "errors"

var (
	ErrNoActiveSession  = errors.New("no active checkout session")
	ErrSessionFinalized = errors.New("checkout session already finalized")
	ErrSessionExpired   = errors.New("checkout session has expired")
	ErrPaymentInFlight  = errors.New("a payment attempt is already in progress")
)

var (
	ErrSessionNotFound = errors.New("no persisted checkout session")
	ErrWindowNotFound  = errors.New("no persisted expiration window")
)

var (
	ErrEmptySelection  = errors.New("selection must contain at least one ticket")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrAcquisition     = errors.New("could not reserve the tickets")
	ErrPurchase        = errors.New("could not process the payment")
)

var (
	ErrValidation = errors.New("validation error")
)
