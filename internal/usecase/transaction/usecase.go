package transaction

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/kafka"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/metrics"
)

// Callback uniques shared between the keyboards built here and the delivery
// layer routing callbacks back.
const (
	CbApprove        = "tx_approve"
	CbReject         = "tx_reject"
	CbPaymentMethods = "tx_payments"
	CbSendProof      = "tx_send_proof"
	CbViewProof      = "tx_view_proof"
	CbNotifySeller   = "tx_notify_seller"
	CbSellerSent     = "tx_seller_sent"
	CbBuyerConfirm   = "tx_buyer_confirm"
	CbBuyerComplaint = "tx_buyer_complaint"
	CbReleaseFunds   = "tx_release_funds"
)

type EventPublisher interface {
	PublishTransaction(event kafka.TransactionEvent) error
}

// Usecase owns the transaction lifecycle: every transition is resolved
// against the transition table, applied with a compare-and-swap update,
// audited, published and notified from here.
type Usecase struct {
	Transactions domain.TransactionRepository
	Users        domain.UserRepository
	Audit        domain.AuditLogRepository
	Notifier     domain.Notifier
	Publisher    EventPublisher
	Metrics      *metrics.BotMetrics
	OperatorID   int64
}

func NewUsecase(
	transactions domain.TransactionRepository,
	users domain.UserRepository,
	audit domain.AuditLogRepository,
	notifier domain.Notifier,
	eventPublisher EventPublisher,
	botMetrics *metrics.BotMetrics,
	operatorID int64,
) *Usecase {
	return &Usecase{
		Transactions: transactions,
		Users:        users,
		Audit:        audit,
		Notifier:     notifier,
		Publisher:    eventPublisher,
		Metrics:      botMetrics,
		OperatorID:   operatorID,
	}
}

func (uc *Usecase) isAdmin(ctx context.Context, id int64) bool {
	user, err := uc.Users.GetUserByID(ctx, id)
	if err != nil {
		return false
	}
	return user.IsAdmin
}

// requireRole enforces the transition table's role against the stored
// transaction. Admins may drive every transition; buyer means the stored
// buyer id, seller means the stored seller handle resolved to the actor.
func (uc *Usecase) requireRole(ctx context.Context, tx *domain.Transaction, role domain.Role, actorID int64) error {
	if uc.isAdmin(ctx, actorID) {
		return nil
	}

	switch role {
	case domain.RoleBuyer:
		if actorID == tx.BuyerID {
			return nil
		}
	case domain.RoleSeller:
		actor, err := uc.Users.GetUserByID(ctx, actorID)
		if err == nil && handlesEqual(actor.Handle, tx.SellerHandle) {
			return nil
		}
	}
	return domain.ErrNotAllowed
}

func handlesEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimPrefix(a, "@"), strings.TrimPrefix(b, "@"))
}

// transition runs the shared path of every lifecycle step: table lookup,
// role check, CAS update, audit entry, kafka event, metrics.
func (uc *Usecase) transition(ctx context.Context, code string, action domain.TransitionAction, actorID int64, note string) (*domain.Transaction, error) {
	tx, err := uc.Transactions.GetTransactionByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	tr, err := domain.NextTransition(action, tx.Status)
	if err != nil {
		uc.Metrics.RecordTransitionDenied(string(action), "status")
		return nil, err
	}

	if err := uc.requireRole(ctx, tx, tr.Role, actorID); err != nil {
		uc.Metrics.RecordTransitionDenied(string(action), "role")
		return nil, err
	}

	updated, err := uc.Transactions.UpdateTransactionStatus(ctx, code, tr.From, tr.To)
	if err != nil {
		return nil, err
	}

	uc.appendAudit(ctx, updated.ID, domain.AuditAction(string(tr.To)), actorID, note)
	uc.publishEvent(updated, string(action), actorID)
	uc.Metrics.RecordTransition(string(action))
	return updated, nil
}

// appendAudit is fire-and-forget: the lifecycle does not roll back on a
// failed log insert.
func (uc *Usecase) appendAudit(ctx context.Context, txID string, action domain.AuditAction, actorID int64, note string) {
	entry := &domain.AuditLogEntry{
		ID:            uuid.New().String(),
		TransactionID: txID,
		Action:        action,
		ActorID:       actorID,
		Notes:         note,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.Audit.AppendAuditLog(ctx, entry); err != nil {
		slog.Error("failed to append audit log", "tx", txID, "action", string(action), "error", err.Error())
	}
}

func (uc *Usecase) publishEvent(tx *domain.Transaction, action string, actorID int64) {
	event := kafka.TransactionEvent{
		TxCode:  tx.Code,
		Action:  action,
		Status:  string(tx.Status),
		ActorID: actorID,
		BuyerID: tx.BuyerID,
		Seller:  tx.SellerHandle,
		Price:   tx.Price,
	}
	go func() {
		if err := uc.Publisher.PublishTransaction(event); err != nil {
			slog.Error("failed to publish kafka TransactionEvent", "tx", event.TxCode, "action", action, "error", err.Error())
		}
	}()
}
