package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rekberinx/rekber-bot/internal/domain"
)

// Submit parses a buyer's free-text form, creates the transaction in pending
// and notifies the operator with the approve/reject keyboard.
func (uc *Usecase) Submit(ctx context.Context, buyerID int64, text string) (*domain.Transaction, error) {
	sub, err := ParseSubmission(text)
	if err != nil {
		uc.Metrics.RecordSubmission("rejected")
		return nil, err
	}

	tx := &domain.Transaction{
		ID:              uuid.New().String(),
		Code:            GenerateCode(),
		BuyerID:         buyerID,
		BuyerHandle:     sub.BuyerHandle,
		SellerHandle:    sub.SellerHandle,
		ItemDescription: sub.ItemDescription,
		Price:           sub.Price,
		Reference:       sub.Reference,
		Status:          domain.StatusPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if err := uc.Transactions.CreateTransaction(ctx, tx); err != nil {
		uc.Metrics.RecordSubmission("failed")
		return nil, err
	}

	uc.appendAudit(ctx, tx.ID, domain.AuditCreated, buyerID, "Transaction created")
	uc.publishEvent(tx, "created", buyerID)
	uc.Metrics.RecordSubmission("created")

	uc.Notifier.Notify(ctx, uc.OperatorID, adminNewTransactionText(tx), domain.Keyboard{
		{
			{Text: "✅ Setujui", Unique: CbApprove, Data: tx.Code},
			{Text: "❌ Tolak", Unique: CbReject, Data: tx.Code},
		},
	})

	return tx, nil
}
