package domain

import (
	"context"
	"time"
)

type PaymentMethodType string

const (
	PaymentTypeBank    PaymentMethodType = "bank"
	PaymentTypeEwallet PaymentMethodType = "ewallet"
)

type PaymentMethod struct {
	ID            string
	Type          PaymentMethodType
	Name          string
	AccountNumber string
	AccountName   string
	IsActive      bool
	CreatedAt     time.Time
}

type PaymentMethodRepository interface {
	CreatePaymentMethod(ctx context.Context, pm *PaymentMethod) error
	GetActivePaymentMethods(ctx context.Context) ([]*PaymentMethod, error)
	GetAllPaymentMethods(ctx context.Context) ([]*PaymentMethod, error)
}
