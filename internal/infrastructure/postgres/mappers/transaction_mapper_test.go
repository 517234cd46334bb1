package mappers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rekberinx/rekber-bot/internal/domain"
)

// Ban/unban audit entries carry no transaction; the uuid column must receive
// NULL, not an empty string Postgres would reject.
func TestAuditLogWithoutTransactionMapsNull(t *testing.T) {
	entry := &domain.AuditLogEntry{
		ID:        uuid.New().String(),
		Action:    domain.AuditUserBanned,
		ActorID:   99,
		Notes:     "target user 7",
		CreatedAt: time.Now().UTC(),
	}

	model := ToGORMAuditLog(entry)
	if model.TransactionID != nil {
		t.Fatalf("expected nil transaction id, got %q", *model.TransactionID)
	}
	if model.Action != string(domain.AuditUserBanned) {
		t.Errorf("action: got %q", model.Action)
	}
}

func TestAuditLogKeepsTransactionID(t *testing.T) {
	txID := uuid.New().String()
	entry := &domain.AuditLogEntry{
		ID:            uuid.New().String(),
		TransactionID: txID,
		Action:        domain.AuditApproved,
		ActorID:       99,
		CreatedAt:     time.Now().UTC(),
	}

	model := ToGORMAuditLog(entry)
	if model.TransactionID == nil || *model.TransactionID != txID {
		t.Fatalf("transaction id not carried over: %v", model.TransactionID)
	}
	if _, err := uuid.Parse(*model.TransactionID); err != nil {
		t.Fatalf("stored transaction id is not a valid uuid: %v", err)
	}
}
