package transaction

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// Reject moves pending -> rejected. Terminal: no transition leads out of
// rejected.
func (uc *Usecase) Reject(ctx context.Context, actorID int64, code string) (*domain.Transaction, error) {
	tx, err := uc.transition(ctx, code, domain.ActionReject, actorID, "Rejected by admin")
	if err != nil {
		return nil, err
	}

	uc.Notifier.Notify(ctx, tx.BuyerID, buyerRejectedText(tx), nil)

	return tx, nil
}
