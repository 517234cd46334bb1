package domain

import "context"

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransactionByCode(ctx context.Context, code string) (*Transaction, error)
	// UpdateTransactionStatus moves a transaction from one status to the next.
	// The update matches on both code and current status, so a replayed or
	// raced trigger affects zero rows and returns ErrTransactionNotFound or
	// ErrInvalidTransition depending on whether the code exists at all.
	UpdateTransactionStatus(ctx context.Context, code string, from, to TransactionStatus) (*Transaction, error)
	// MarkPaid is the approved->paid update plus the proof file reference.
	MarkPaid(ctx context.Context, code, proofPath string) (*Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID int64, handle string, limit int) ([]*Transaction, error)
	GetTransactionsByStatuses(ctx context.Context, statuses []TransactionStatus) ([]*Transaction, error)
	CountTransactionsByStatus(ctx context.Context) (map[TransactionStatus]int64, error)
}
