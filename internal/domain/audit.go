package domain

import (
	"context"
	"time"
)

type AuditAction string

const (
	AuditCreated       AuditAction = "created"
	AuditApproved      AuditAction = "approved"
	AuditRejected      AuditAction = "rejected"
	AuditPaid          AuditAction = "paid"
	AuditDelivered     AuditAction = "delivered"
	AuditCompleted     AuditAction = "completed"
	AuditFundsReleased AuditAction = "funds_released"
	AuditUserBanned    AuditAction = "user_banned"
	AuditUserUnbanned  AuditAction = "user_unbanned"
)

// AuditLogEntry is one immutable record per lifecycle transition.
// Write-only: no read API is exposed anywhere.
type AuditLogEntry struct {
	ID            string
	TransactionID string
	Action        AuditAction
	ActorID       int64
	Notes         string
	CreatedAt     time.Time
}

type AuditLogRepository interface {
	AppendAuditLog(ctx context.Context, entry *AuditLogEntry) error
}
