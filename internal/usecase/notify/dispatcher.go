package notify

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/metrics"
)

// Sender is the raw chat transport surface the dispatcher needs.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string, kb domain.Keyboard) error
	SendDocument(ctx context.Context, chatID int64, path, caption string) error
}

// broadcastDelay throttles the broadcast fan-out. Fixed, not adaptive.
const broadcastDelay = 50 * time.Millisecond

// Dispatcher delivers formatted messages to specific chat participants and
// tolerates delivery failure silently: the triggering handler always
// completes from the actor's point of view.
type Dispatcher struct {
	Sender  Sender
	Users   domain.UserRepository
	Metrics *metrics.BotMetrics
}

func NewDispatcher(sender Sender, users domain.UserRepository, botMetrics *metrics.BotMetrics) *Dispatcher {
	return &Dispatcher{
		Sender:  sender,
		Users:   users,
		Metrics: botMetrics,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, chatID int64, text string, kb domain.Keyboard) {
	if err := d.Sender.Send(ctx, chatID, text, kb); err != nil {
		slog.Error("notification delivery failed", "chat_id", chatID, "error", err.Error())
		d.Metrics.RecordNotification("message", false)
		return
	}
	d.Metrics.RecordNotification("message", true)
}

func (d *Dispatcher) NotifyDocument(ctx context.Context, chatID int64, path, caption string) {
	if err := d.Sender.SendDocument(ctx, chatID, path, caption); err != nil {
		slog.Error("document delivery failed", "chat_id", chatID, "error", err.Error())
		d.Metrics.RecordNotification("document", false)
		return
	}
	d.Metrics.RecordNotification("document", true)
}

// ResolveByHandle finds a participant's chat id from a stored handle.
// Handle collisions are not detected; the first match wins.
func (d *Dispatcher) ResolveByHandle(ctx context.Context, handle string) (int64, error) {
	user, err := d.Users.GetUserByHandle(ctx, strings.TrimPrefix(handle, "@"))
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Broadcast sends the same payload to every known user with a fixed delay
// between sends. Individual failures never abort the batch; the aggregate
// counts are all the caller gets.
func (d *Dispatcher) Broadcast(ctx context.Context, send func(chatID int64) error) (success, failed int, err error) {
	ids, err := d.Users.ListUserIDs(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, id := range ids {
		if err := send(id); err != nil {
			failed++
		} else {
			success++
		}
		time.Sleep(broadcastDelay)
	}

	d.Metrics.RecordBroadcast(success, failed)
	return success, failed, nil
}
