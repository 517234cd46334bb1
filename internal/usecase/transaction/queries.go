package transaction

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

const historyLimit = 10

func (uc *Usecase) GetByCode(ctx context.Context, code string) (*domain.Transaction, error) {
	return uc.Transactions.GetTransactionByCode(ctx, code)
}

// History returns the user's most recent transactions, as buyer by id or as
// seller by stored handle.
func (uc *Usecase) History(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	handle := ""
	if user, err := uc.Users.GetUserByID(ctx, userID); err == nil {
		handle = user.Handle
	}
	return uc.Transactions.GetTransactionsByUser(ctx, userID, handle, historyLimit)
}

// ListActive feeds the admin screen: everything still in flight.
func (uc *Usecase) ListActive(ctx context.Context) ([]*domain.Transaction, error) {
	return uc.Transactions.GetTransactionsByStatuses(ctx, []domain.TransactionStatus{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusPaid,
		domain.StatusDelivered,
	})
}

type Stats struct {
	Total     int64
	Completed int64
	Pending   int64
}

func (uc *Usecase) Statistics(ctx context.Context) (*Stats, error) {
	counts, err := uc.Transactions.CountTransactionsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Completed: counts[domain.StatusCompleted],
		Pending:   counts[domain.StatusPending],
	}
	for status, count := range counts {
		stats.Total += count
		uc.Metrics.SetTransactionsByStatus(string(status), count)
	}
	return stats, nil
}
