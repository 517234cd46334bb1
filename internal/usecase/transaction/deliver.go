package transaction

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// NotifySeller forwards the funds-safe notice to the seller with the
// "item sent" button. Admin-gated; not a status transition. Fails with
// ErrSellerNotRegistered when the stored handle resolves to no known chat.
func (uc *Usecase) NotifySeller(ctx context.Context, actorID int64, code string) error {
	if !uc.isAdmin(ctx, actorID) {
		return domain.ErrNotAllowed
	}

	tx, err := uc.Transactions.GetTransactionByCode(ctx, code)
	if err != nil {
		return err
	}

	sellerID, err := uc.Notifier.ResolveByHandle(ctx, tx.SellerHandle)
	if err != nil {
		return domain.ErrSellerNotRegistered
	}

	uc.Notifier.Notify(ctx, sellerID, sellerFundsSafeText(tx), domain.Keyboard{
		{{Text: "✅ Barang Sudah Dikirim", Unique: CbSellerSent, Data: tx.Code}},
	})
	return nil
}

// Deliver moves paid -> delivered. The caller must resolve to the stored
// seller handle (or be an admin): receiving the seller notification is not
// enough to drive the transition.
func (uc *Usecase) Deliver(ctx context.Context, actorID int64, code string) (*domain.Transaction, error) {
	tx, err := uc.transition(ctx, code, domain.ActionDeliver, actorID, "Item delivered by seller")
	if err != nil {
		return nil, err
	}

	uc.Notifier.Notify(ctx, tx.BuyerID, buyerDeliveredText(tx), domain.Keyboard{
		{{Text: "✅ Barang Sesuai - DONE", Unique: CbBuyerConfirm, Data: tx.Code}},
		{{Text: "❌ Ada Masalah", Unique: CbBuyerComplaint, Data: tx.Code}},
	})

	return tx, nil
}
