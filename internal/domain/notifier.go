package domain

import "context"

// Button is a transport-agnostic inline button. Data buttons are routed back
// by Unique with Data as payload; URL buttons just open a link.
type Button struct {
	Text   string
	Unique string
	Data   string
	URL    string
}

type Keyboard [][]Button

// Notifier delivers messages to specific chat participants. Delivery is
// best-effort: a blocked bot or unreachable counterpart never fails the
// transition that triggered the notification.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string, kb Keyboard)
	NotifyDocument(ctx context.Context, chatID int64, path, caption string)
	ResolveByHandle(ctx context.Context, handle string) (int64, error)
}

// MembershipChecker answers whether a participant is a member of the
// required channel. Implementations query the chat transport.
type MembershipChecker interface {
	IsMember(ctx context.Context, userID int64) (bool, error)
}
