package domain

import "time"

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusApproved  TransactionStatus = "approved"
	StatusRejected  TransactionStatus = "rejected"
	StatusPaid      TransactionStatus = "paid"
	StatusDelivered TransactionStatus = "delivered"
	StatusCompleted TransactionStatus = "completed"
)

type Transaction struct {
	ID              string
	Code            string
	BuyerID         int64
	BuyerHandle     string
	SellerHandle    string
	ItemDescription string
	Price           string
	Reference       string
	Status          TransactionStatus
	ProofPath       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
