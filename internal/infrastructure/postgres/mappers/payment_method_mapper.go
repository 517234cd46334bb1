package mappers

import (
	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/models"
)

func ToGORMPaymentMethod(pm *domain.PaymentMethod) *models.PaymentMethodModel {
	return &models.PaymentMethodModel{
		ID:            pm.ID,
		Type:          string(pm.Type),
		Name:          pm.Name,
		AccountNumber: pm.AccountNumber,
		AccountName:   pm.AccountName,
		IsActive:      pm.IsActive,
		CreatedAt:     pm.CreatedAt,
	}
}

func ToDomainPaymentMethod(model *models.PaymentMethodModel) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:            model.ID,
		Type:          domain.PaymentMethodType(model.Type),
		Name:          model.Name,
		AccountNumber: model.AccountNumber,
		AccountName:   model.AccountName,
		IsActive:      model.IsActive,
		CreatedAt:     model.CreatedAt,
	}
}
