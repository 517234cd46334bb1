package models

import (
	"time"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

type TransactionModel struct {
	ID              string                   `gorm:"primaryKey;type:uuid"`
	TxCode          string                   `gorm:"uniqueIndex:idx_tx_code"`
	BuyerID         int64                    `gorm:"index:idx_buyer_id"`
	BuyerUsername   string
	SellerUsername  string                   `gorm:"index:idx_seller_username"`
	ItemDescription string
	Price           string
	Reference       string
	Status          domain.TransactionStatus `gorm:"index:idx_status"`
	ProofPath       string
	CreatedAt       time.Time                `gorm:"index:idx_tx_created_at"`
	UpdatedAt       time.Time
}

type TransactionLogModel struct {
	ID string `gorm:"primaryKey;type:uuid"`

	// Nullable: user-level actions (ban/unban) are not tied to a transaction.
	TransactionID *string `gorm:"type:uuid;index"`
	Action        string  `gorm:"not null"`
	ActorID       int64
	Notes         string
	CreatedAt     time.Time
}
