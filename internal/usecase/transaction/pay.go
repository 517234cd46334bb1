package transaction

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// SubmitProof records the uploaded transfer proof and moves
// approved -> paid. The proof file is already on disk; only its reference is
// persisted here. The operator gets the proof forwarded with the
// view/notify-seller keyboard.
func (uc *Usecase) SubmitProof(ctx context.Context, actorID int64, code, proofPath string) (*domain.Transaction, error) {
	tx, err := uc.Transactions.GetTransactionByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	tr, err := domain.NextTransition(domain.ActionPay, tx.Status)
	if err != nil {
		uc.Metrics.RecordTransitionDenied(string(domain.ActionPay), "status")
		return nil, err
	}

	if err := uc.requireRole(ctx, tx, tr.Role, actorID); err != nil {
		uc.Metrics.RecordTransitionDenied(string(domain.ActionPay), "role")
		return nil, err
	}

	updated, err := uc.Transactions.MarkPaid(ctx, code, proofPath)
	if err != nil {
		return nil, err
	}

	uc.appendAudit(ctx, updated.ID, domain.AuditPaid, actorID, "Payment proof uploaded")
	uc.publishEvent(updated, string(domain.ActionPay), actorID)
	uc.Metrics.RecordTransition(string(domain.ActionPay))
	uc.Metrics.RecordProofUpload()

	uc.Notifier.Notify(ctx, uc.OperatorID, adminPaidText(updated), domain.Keyboard{
		{{Text: "👁️ Lihat Bukti", Unique: CbViewProof, Data: updated.Code}},
		{{Text: "✅ Konfirmasi ke Seller", Unique: CbNotifySeller, Data: updated.Code}},
	})
	uc.Notifier.NotifyDocument(ctx, uc.OperatorID, proofPath, "Bukti transfer "+updated.Code)

	return updated, nil
}
