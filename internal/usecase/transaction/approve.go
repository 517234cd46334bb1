package transaction

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// Approve moves pending -> approved and sends the buyer the payment
// instructions keyboard.
func (uc *Usecase) Approve(ctx context.Context, actorID int64, code string) (*domain.Transaction, error) {
	tx, err := uc.transition(ctx, code, domain.ActionApprove, actorID, "Approved by admin")
	if err != nil {
		return nil, err
	}

	uc.Notifier.Notify(ctx, tx.BuyerID, buyerApprovedText(tx), domain.Keyboard{
		{{Text: "💳 Lihat Metode Pembayaran", Unique: CbPaymentMethods, Data: tx.Code}},
		{{Text: "📤 Kirim Bukti Transfer", Unique: CbSendProof, Data: tx.Code}},
	})

	return tx, nil
}
