package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

type memPaymentRepo struct {
	methods []*domain.PaymentMethod
}

func (r *memPaymentRepo) CreatePaymentMethod(_ context.Context, pm *domain.PaymentMethod) error {
	r.methods = append(r.methods, pm)
	return nil
}

func (r *memPaymentRepo) GetActivePaymentMethods(_ context.Context) ([]*domain.PaymentMethod, error) {
	var out []*domain.PaymentMethod
	for _, pm := range r.methods {
		if pm.IsActive {
			out = append(out, pm)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) GetAllPaymentMethods(_ context.Context) ([]*domain.PaymentMethod, error) {
	return r.methods, nil
}

func TestActiveMethodsPartition(t *testing.T) {
	repo := &memPaymentRepo{methods: []*domain.PaymentMethod{
		{ID: "1", Type: domain.PaymentTypeBank, Name: "BCA", IsActive: true},
		{ID: "2", Type: domain.PaymentTypeEwallet, Name: "Dana", IsActive: true},
		{ID: "3", Type: domain.PaymentTypeBank, Name: "BRI", IsActive: false},
	}}
	uc := NewUsecase(repo)

	banks, ewallets, err := uc.ActiveMethods(context.Background())
	if err != nil {
		t.Fatalf("active methods: %v", err)
	}
	if len(banks) != 1 || banks[0].Name != "BCA" {
		t.Errorf("banks: got %d entries", len(banks))
	}
	if len(ewallets) != 1 || ewallets[0].Name != "Dana" {
		t.Errorf("ewallets: got %d entries", len(ewallets))
	}
}

func TestActiveMethodsEmptyCatalog(t *testing.T) {
	uc := NewUsecase(&memPaymentRepo{})

	_, _, err := uc.ActiveMethods(context.Background())
	if !errors.Is(err, domain.ErrNoPaymentMethods) {
		t.Fatalf("expected ErrNoPaymentMethods, got %v", err)
	}
}

func TestAddParsesThreeLineForm(t *testing.T) {
	repo := &memPaymentRepo{}
	uc := NewUsecase(repo)

	pm, err := uc.Add(context.Background(), domain.PaymentTypeBank, "  BCA \n1234567890\n John Doe \n")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if pm.Name != "BCA" || pm.AccountNumber != "1234567890" || pm.AccountName != "John Doe" {
		t.Errorf("fields not trimmed: %+v", pm)
	}
	if !pm.IsActive {
		t.Error("new instrument should start active")
	}
	if len(repo.methods) != 1 {
		t.Fatalf("instrument was not persisted")
	}
}

func TestAddMalformedForm(t *testing.T) {
	uc := NewUsecase(&memPaymentRepo{})

	_, err := uc.Add(context.Background(), domain.PaymentTypeEwallet, "Dana\n08123")
	if !errors.Is(err, domain.ErrMalformedPaymentForm) {
		t.Fatalf("expected ErrMalformedPaymentForm, got %v", err)
	}
}
