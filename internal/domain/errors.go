package domain

import "errors"

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotAllowed           = errors.New("actor not allowed to perform this action")
	ErrMalformedSubmission  = errors.New("malformed transaction submission")
	ErrNoPaymentMethods     = errors.New("no active payment methods")
	ErrSellerNotRegistered  = errors.New("seller is not registered with the bot")
	ErrUserNotFound         = errors.New("user not found")
	ErrMalformedPaymentForm = errors.New("malformed payment method form")
)
