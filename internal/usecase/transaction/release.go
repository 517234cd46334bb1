package transaction

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// ReleaseFunds notifies the seller that the escrowed amount has been paid
// out. Money moves outside the system by hand, so this is deliberately not a
// status transition: the transaction stays completed and only an audit entry
// records the action.
func (uc *Usecase) ReleaseFunds(ctx context.Context, actorID int64, code string) (*domain.Transaction, error) {
	if !uc.isAdmin(ctx, actorID) {
		return nil, domain.ErrNotAllowed
	}

	tx, err := uc.Transactions.GetTransactionByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if tx.Status != domain.StatusCompleted {
		return nil, domain.ErrInvalidTransition
	}

	sellerID, err := uc.Notifier.ResolveByHandle(ctx, tx.SellerHandle)
	if err != nil {
		return nil, domain.ErrSellerNotRegistered
	}

	uc.appendAudit(ctx, tx.ID, domain.AuditFundsReleased, actorID, "Funds released to seller")
	uc.publishEvent(tx, "funds_released", actorID)

	uc.Notifier.Notify(ctx, sellerID, sellerReleasedText(tx), nil)

	return tx, nil
}
