package repository

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/mappers"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentMethodRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentMethodRepository(db *gorm.DB) *DefaultPaymentMethodRepository {
	return &DefaultPaymentMethodRepository{DB: db}
}

func (r *DefaultPaymentMethodRepository) CreatePaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error {
	pmModel := mappers.ToGORMPaymentMethod(pm)
	if err := r.DB.WithContext(ctx).Create(pmModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultPaymentMethodRepository) GetActivePaymentMethods(ctx context.Context) ([]*domain.PaymentMethod, error) {
	return r.list(ctx, r.DB.WithContext(ctx).Where("is_active = ?", true))
}

func (r *DefaultPaymentMethodRepository) GetAllPaymentMethods(ctx context.Context) ([]*domain.PaymentMethod, error) {
	return r.list(ctx, r.DB.WithContext(ctx))
}

func (r *DefaultPaymentMethodRepository) list(ctx context.Context, query *gorm.DB) ([]*domain.PaymentMethod, error) {
	var pmModels []models.PaymentMethodModel
	if err := query.Order("created_at ASC").Find(&pmModels).Error; err != nil {
		return nil, err
	}

	pms := make([]*domain.PaymentMethod, len(pmModels))
	for i, pmModel := range pmModels {
		pms[i] = mappers.ToDomainPaymentMethod(&pmModel)
	}
	return pms, nil
}
