package mappers

import (
	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/models"
)

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:              tx.ID,
		TxCode:          tx.Code,
		BuyerID:         tx.BuyerID,
		BuyerUsername:   tx.BuyerHandle,
		SellerUsername:  tx.SellerHandle,
		ItemDescription: tx.ItemDescription,
		Price:           tx.Price,
		Reference:       tx.Reference,
		Status:          tx.Status,
		ProofPath:       tx.ProofPath,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:              model.ID,
		Code:            model.TxCode,
		BuyerID:         model.BuyerID,
		BuyerHandle:     model.BuyerUsername,
		SellerHandle:    model.SellerUsername,
		ItemDescription: model.ItemDescription,
		Price:           model.Price,
		Reference:       model.Reference,
		Status:          model.Status,
		ProofPath:       model.ProofPath,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMAuditLog(entry *domain.AuditLogEntry) *models.TransactionLogModel {
	var txID *string
	if entry.TransactionID != "" {
		txID = &entry.TransactionID
	}
	return &models.TransactionLogModel{
		ID:            entry.ID,
		TransactionID: txID,
		Action:        string(entry.Action),
		ActorID:       entry.ActorID,
		Notes:         entry.Notes,
		CreatedAt:     entry.CreatedAt,
	}
}
