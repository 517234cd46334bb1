package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/mappers"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	txModel := mappers.ToGORMTransaction(tx)
	if err := r.DB.WithContext(ctx).Create(txModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByCode(ctx context.Context, code string) (*domain.Transaction, error) {
	var txModel models.TransactionModel
	if err := r.DB.WithContext(ctx).First(&txModel, "tx_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&txModel), nil
}

// UpdateTransactionStatus is a compare-and-swap on (tx_code, status). When the
// update matches no row the code either does not exist or the transaction has
// already moved past `from`; the follow-up read tells the two apart.
func (r *DefaultTransactionRepository) UpdateTransactionStatus(ctx context.Context, code string, from, to domain.TransactionStatus) (*domain.Transaction, error) {
	return r.casUpdate(ctx, code, from, map[string]interface{}{
		"status":     to,
		"updated_at": time.Now().UTC(),
	})
}

func (r *DefaultTransactionRepository) MarkPaid(ctx context.Context, code, proofPath string) (*domain.Transaction, error) {
	return r.casUpdate(ctx, code, domain.StatusApproved, map[string]interface{}{
		"status":     domain.StatusPaid,
		"proof_path": proofPath,
		"updated_at": time.Now().UTC(),
	})
}

func (r *DefaultTransactionRepository) casUpdate(ctx context.Context, code string, from domain.TransactionStatus, updates map[string]interface{}) (*domain.Transaction, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("tx_code = ? AND status = ?", code, from).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update transaction status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetTransactionByCode(ctx, code); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidTransition
	}
	return r.GetTransactionByCode(ctx, code)
}

func (r *DefaultTransactionRepository) GetTransactionsByUser(ctx context.Context, userID int64, handle string, limit int) ([]*domain.Transaction, error) {
	var txModels []models.TransactionModel
	query := r.DB.WithContext(ctx).
		Where("buyer_id = ?", userID).
		Order("created_at DESC").
		Limit(limit)
	if handle != "" {
		query = r.DB.WithContext(ctx).
			Where("buyer_id = ? OR seller_username = ? OR seller_username = ?", userID, handle, "@"+handle).
			Order("created_at DESC").
			Limit(limit)
	}
	if err := query.Find(&txModels).Error; err != nil {
		return nil, err
	}

	txs := make([]*domain.Transaction, len(txModels))
	for i, txModel := range txModels {
		txs[i] = mappers.ToDomainTransaction(&txModel)
	}
	return txs, nil
}

func (r *DefaultTransactionRepository) GetTransactionsByStatuses(ctx context.Context, statuses []domain.TransactionStatus) ([]*domain.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.DB.WithContext(ctx).
		Where("status IN (?)", statuses).
		Order("created_at DESC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}

	txs := make([]*domain.Transaction, len(txModels))
	for i, txModel := range txModels {
		txs[i] = mappers.ToDomainTransaction(&txModel)
	}
	return txs, nil
}

func (r *DefaultTransactionRepository) CountTransactionsByStatus(ctx context.Context) (map[domain.TransactionStatus]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.TransactionStatus]int64, len(rows))
	for _, row := range rows {
		counts[domain.TransactionStatus(row.Status)] = row.Count
	}
	return counts, nil
}
