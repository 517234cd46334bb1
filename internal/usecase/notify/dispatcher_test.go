package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/metrics"
)

var testMetrics = metrics.NewBotMetrics()

type stubSender struct {
	sent    []int64
	failFor map[int64]bool
}

func (s *stubSender) Send(_ context.Context, chatID int64, _ string, _ domain.Keyboard) error {
	if s.failFor[chatID] {
		return errors.New("blocked by user")
	}
	s.sent = append(s.sent, chatID)
	return nil
}

func (s *stubSender) SendDocument(_ context.Context, chatID int64, _, _ string) error {
	if s.failFor[chatID] {
		return errors.New("blocked by user")
	}
	s.sent = append(s.sent, chatID)
	return nil
}

type stubUserRepo struct {
	ids    []int64
	byName map[string]int64
}

func (r *stubUserRepo) CreateUser(_ context.Context, _ *domain.User) error { return nil }

func (r *stubUserRepo) GetUserByID(_ context.Context, _ int64) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) GetUserByHandle(_ context.Context, handle string) (*domain.User, error) {
	id, ok := r.byName[handle]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{ID: id, Handle: handle}, nil
}

func (r *stubUserRepo) TouchUser(_ context.Context, _ int64, _, _ string) error { return nil }
func (r *stubUserRepo) SetBanned(_ context.Context, _ int64, _ bool) error      { return nil }
func (r *stubUserRepo) SetAdmin(_ context.Context, _ int64, _ bool) error       { return nil }

func (r *stubUserRepo) ListUserIDs(_ context.Context) ([]int64, error) {
	return r.ids, nil
}

func (r *stubUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(r.ids)), nil
}

func TestNotifySwallowsSendErrors(t *testing.T) {
	sender := &stubSender{failFor: map[int64]bool{42: true}}
	d := NewDispatcher(sender, &stubUserRepo{}, testMetrics)

	// Must not panic and must not surface the error anywhere.
	d.Notify(context.Background(), 42, "halo", nil)
	d.NotifyDocument(context.Background(), 42, "proofs/x.jpg", "bukti")

	if len(sender.sent) != 0 {
		t.Fatalf("failed sends recorded as delivered: %v", sender.sent)
	}
}

func TestResolveByHandleStripsAt(t *testing.T) {
	d := NewDispatcher(&stubSender{}, &stubUserRepo{byName: map[string]int64{"tokodigital": 7}}, testMetrics)

	id, err := d.ResolveByHandle(context.Background(), "@tokodigital")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected 7, got %d", id)
	}
}

func TestBroadcastCountsFailures(t *testing.T) {
	users := &stubUserRepo{ids: []int64{1, 2, 3, 4, 5}}
	d := NewDispatcher(&stubSender{}, users, testMetrics)

	failing := map[int64]bool{2: true, 4: true}
	success, failed, err := d.Broadcast(context.Background(), func(chatID int64) error {
		if failing[chatID] {
			return errors.New("blocked")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if success != 3 || failed != 2 {
		t.Fatalf("expected 3/2, got %d/%d", success, failed)
	}
}
