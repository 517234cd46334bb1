package payment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rekberinx/rekber-bot/internal/domain"
)

type Usecase struct {
	Payments domain.PaymentMethodRepository
}

func NewUsecase(payments domain.PaymentMethodRepository) *Usecase {
	return &Usecase{Payments: payments}
}

// ActiveMethods returns the active instruments partitioned for display.
func (uc *Usecase) ActiveMethods(ctx context.Context) (banks, ewallets []*domain.PaymentMethod, err error) {
	methods, err := uc.Payments.GetActivePaymentMethods(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(methods) == 0 {
		return nil, nil, domain.ErrNoPaymentMethods
	}
	for _, pm := range methods {
		switch pm.Type {
		case domain.PaymentTypeBank:
			banks = append(banks, pm)
		case domain.PaymentTypeEwallet:
			ewallets = append(ewallets, pm)
		}
	}
	return banks, ewallets, nil
}

func (uc *Usecase) AllMethods(ctx context.Context) ([]*domain.PaymentMethod, error) {
	return uc.Payments.GetAllPaymentMethods(ctx)
}

// Add parses the three-line admin form (name / account number / account
// holder) and creates an instrument. Fields are free text; every created
// instrument starts active.
func (uc *Usecase) Add(ctx context.Context, pmType domain.PaymentMethodType, form string) (*domain.PaymentMethod, error) {
	lines := strings.Split(strings.TrimSpace(form), "\n")
	if len(lines) < 3 {
		return nil, domain.ErrMalformedPaymentForm
	}

	pm := &domain.PaymentMethod{
		ID:            uuid.New().String(),
		Type:          pmType,
		Name:          strings.TrimSpace(lines[0]),
		AccountNumber: strings.TrimSpace(lines[1]),
		AccountName:   strings.TrimSpace(lines[2]),
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.Payments.CreatePaymentMethod(ctx, pm); err != nil {
		return nil, err
	}
	return pm, nil
}
