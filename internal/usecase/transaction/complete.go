package transaction

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// Complete moves delivered -> completed. Only the stored buyer (or an admin)
// may confirm receipt. Terminal; the operator gets the release-funds button.
func (uc *Usecase) Complete(ctx context.Context, actorID int64, code string) (*domain.Transaction, error) {
	tx, err := uc.transition(ctx, code, domain.ActionComplete, actorID, "Confirmed by buyer")
	if err != nil {
		return nil, err
	}

	uc.Notifier.Notify(ctx, uc.OperatorID, adminCompletedText(tx), domain.Keyboard{
		{{Text: "💸 Cairkan Dana", Unique: CbReleaseFunds, Data: tx.Code}},
	})

	return tx, nil
}
