package transaction

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/kafka"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/metrics"
)

// One instance per test binary: the collectors register into the global
// prometheus registry.
var testMetrics = metrics.NewBotMetrics()

const (
	operatorID = int64(99)
	buyerID    = int64(1)
	sellerID   = int64(2)
	strangerID = int64(77)
)

type memTxRepo struct {
	mu  sync.Mutex
	txs map[string]*domain.Transaction
}

func newMemTxRepo() *memTxRepo {
	return &memTxRepo{txs: make(map[string]*domain.Transaction)}
}

func (r *memTxRepo) CreateTransaction(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tx
	r.txs[tx.Code] = &cp
	return nil
}

func (r *memTxRepo) GetTransactionByCode(_ context.Context, code string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[code]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *memTxRepo) UpdateTransactionStatus(_ context.Context, code string, from, to domain.TransactionStatus) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[code]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	if tx.Status != from {
		return nil, domain.ErrInvalidTransition
	}
	tx.Status = to
	tx.UpdatedAt = time.Now().UTC()
	cp := *tx
	return &cp, nil
}

func (r *memTxRepo) MarkPaid(_ context.Context, code, proofPath string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[code]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	if tx.Status != domain.StatusApproved {
		return nil, domain.ErrInvalidTransition
	}
	tx.Status = domain.StatusPaid
	tx.ProofPath = proofPath
	tx.UpdatedAt = time.Now().UTC()
	cp := *tx
	return &cp, nil
}

func (r *memTxRepo) GetTransactionsByUser(_ context.Context, userID int64, handle string, limit int) ([]*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Transaction
	for _, tx := range r.txs {
		if tx.BuyerID == userID || strings.EqualFold(strings.TrimPrefix(tx.SellerHandle, "@"), strings.TrimPrefix(handle, "@")) {
			cp := *tx
			out = append(out, &cp)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memTxRepo) GetTransactionsByStatuses(_ context.Context, statuses []domain.TransactionStatus) ([]*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Transaction
	for _, tx := range r.txs {
		for _, s := range statuses {
			if tx.Status == s {
				cp := *tx
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (r *memTxRepo) CountTransactionsByStatus(_ context.Context) (map[domain.TransactionStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[domain.TransactionStatus]int64)
	for _, tx := range r.txs {
		counts[tx.Status]++
	}
	return counts, nil
}

type memUserRepo struct {
	users map[int64]*domain.User
}

func (r *memUserRepo) CreateUser(_ context.Context, u *domain.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetUserByHandle(_ context.Context, handle string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Handle, handle) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) TouchUser(_ context.Context, id int64, handle, fullName string) error {
	return nil
}

func (r *memUserRepo) SetBanned(_ context.Context, id int64, banned bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsBanned = banned
	return nil
}

func (r *memUserRepo) SetAdmin(_ context.Context, id int64, admin bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsAdmin = admin
	return nil
}

func (r *memUserRepo) ListUserIDs(_ context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *memUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLogEntry
}

func (r *memAuditRepo) AppendAuditLog(_ context.Context, entry *domain.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

type notification struct {
	chatID int64
	text   string
	kb     domain.Keyboard
}

type stubNotifier struct {
	mu      sync.Mutex
	sent    []notification
	handles map[string]int64
}

func (n *stubNotifier) Notify(_ context.Context, chatID int64, text string, kb domain.Keyboard) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{chatID: chatID, text: text, kb: kb})
}

func (n *stubNotifier) NotifyDocument(_ context.Context, chatID int64, path, caption string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{chatID: chatID, text: caption})
}

func (n *stubNotifier) ResolveByHandle(_ context.Context, handle string) (int64, error) {
	id, ok := n.handles[strings.TrimPrefix(handle, "@")]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	return id, nil
}

func (n *stubNotifier) sentTo(chatID int64) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, s := range n.sent {
		if s.chatID == chatID {
			count++
		}
	}
	return count
}

type stubPublisher struct {
	mu     sync.Mutex
	events []kafka.TransactionEvent
}

func (p *stubPublisher) PublishTransaction(event kafka.TransactionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type fixture struct {
	uc       *Usecase
	txRepo   *memTxRepo
	audit    *memAuditRepo
	notifier *stubNotifier
}

func newFixture() *fixture {
	users := &memUserRepo{users: map[int64]*domain.User{
		operatorID: {ID: operatorID, Handle: "operator", IsAdmin: true},
		buyerID:    {ID: buyerID, Handle: "buyerjoe"},
		sellerID:   {ID: sellerID, Handle: "sellerjane"},
		strangerID: {ID: strangerID, Handle: "stranger"},
	}}
	txRepo := newMemTxRepo()
	audit := &memAuditRepo{}
	notifier := &stubNotifier{handles: map[string]int64{
		"sellerjane": sellerID,
		"buyerjoe":   buyerID,
	}}
	uc := NewUsecase(txRepo, users, audit, notifier, &stubPublisher{}, testMetrics, operatorID)
	return &fixture{uc: uc, txRepo: txRepo, audit: audit, notifier: notifier}
}

func (f *fixture) seed(t *testing.T, status domain.TransactionStatus) *domain.Transaction {
	t.Helper()
	tx := &domain.Transaction{
		ID:              uuid.New().String(),
		Code:            GenerateCode(),
		BuyerID:         buyerID,
		BuyerHandle:     "buyerjoe",
		SellerHandle:    "@sellerjane",
		ItemDescription: "Akun game",
		Price:           "150000",
		Reference:       "-",
		Status:          status,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if err := f.txRepo.CreateTransaction(context.Background(), tx); err != nil {
		t.Fatalf("seeding transaction: %v", err)
	}
	return tx
}

const validForm = `Username Seller: @sellerjane
Username Buyer: @buyerjoe
Jenis Barang: Akun game
Harga: 150000
Referensi: INV-42`

func TestLifecycleHappyPath(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tx, err := f.uc.Submit(ctx, buyerID, validForm)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if tx.Status != domain.StatusPending {
		t.Fatalf("expected pending after submit, got %s", tx.Status)
	}

	if _, err := f.uc.Approve(ctx, operatorID, tx.Code); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := f.uc.SubmitProof(ctx, buyerID, tx.Code, "proofs/"+tx.Code+"_x.jpg"); err != nil {
		t.Fatalf("submit proof: %v", err)
	}
	if _, err := f.uc.Deliver(ctx, sellerID, tx.Code); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	final, err := f.uc.Complete(ctx, buyerID, tx.Code)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if final.Status != domain.StatusCompleted {
		t.Fatalf("expected completed, got %s", final.Status)
	}

	stored, err := f.txRepo.GetTransactionByCode(ctx, tx.Code)
	if err != nil {
		t.Fatalf("reading final state: %v", err)
	}
	if stored.ProofPath == "" {
		t.Error("proof path was not persisted")
	}

	want := []domain.AuditAction{
		domain.AuditCreated,
		domain.AuditApproved,
		domain.AuditPaid,
		domain.AuditDelivered,
		domain.AuditCompleted,
	}
	got := f.audit.actions()
	if len(got) != len(want) {
		t.Fatalf("expected %d audit entries, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("audit entry %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestApproveRequiresAdmin(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusPending)

	if _, err := f.uc.Approve(context.Background(), buyerID, tx.Code); !errors.Is(err, domain.ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}

	stored, _ := f.txRepo.GetTransactionByCode(context.Background(), tx.Code)
	if stored.Status != domain.StatusPending {
		t.Fatalf("status changed despite denial: %s", stored.Status)
	}
}

func TestDeliverRequiresSeller(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusPaid)
	ctx := context.Background()

	if _, err := f.uc.Deliver(ctx, buyerID, tx.Code); !errors.Is(err, domain.ErrNotAllowed) {
		t.Fatalf("buyer drove deliver: %v", err)
	}
	if _, err := f.uc.Deliver(ctx, strangerID, tx.Code); !errors.Is(err, domain.ErrNotAllowed) {
		t.Fatalf("stranger drove deliver: %v", err)
	}
	if _, err := f.uc.Deliver(ctx, sellerID, tx.Code); err != nil {
		t.Fatalf("seller denied deliver: %v", err)
	}
}

func TestCompleteRequiresBuyer(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusDelivered)
	ctx := context.Background()

	if _, err := f.uc.Complete(ctx, sellerID, tx.Code); !errors.Is(err, domain.ErrNotAllowed) {
		t.Fatalf("seller drove complete: %v", err)
	}
	if _, err := f.uc.Complete(ctx, buyerID, tx.Code); err != nil {
		t.Fatalf("buyer denied complete: %v", err)
	}
}

func TestAdminMayDriveAnyTransition(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusPaid)
	ctx := context.Background()

	if _, err := f.uc.Deliver(ctx, operatorID, tx.Code); err != nil {
		t.Fatalf("admin denied deliver: %v", err)
	}
	if _, err := f.uc.Complete(ctx, operatorID, tx.Code); err != nil {
		t.Fatalf("admin denied complete: %v", err)
	}
}

func TestRejectedIsTerminal(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusPending)
	ctx := context.Background()

	if _, err := f.uc.Reject(ctx, operatorID, tx.Code); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := f.uc.Approve(ctx, operatorID, tx.Code); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("approve after reject: expected ErrInvalidTransition, got %v", err)
	}
}

func TestReplayedApproveIsRejected(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusPending)
	ctx := context.Background()

	if _, err := f.uc.Approve(ctx, operatorID, tx.Code); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	before := f.notifier.sentTo(buyerID)

	if _, err := f.uc.Approve(ctx, operatorID, tx.Code); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("replayed approve: expected ErrInvalidTransition, got %v", err)
	}
	if after := f.notifier.sentTo(buyerID); after != before {
		t.Errorf("replayed approve re-fired buyer notification")
	}
}

func TestSubmitProofOnlyFromApproved(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusPending)

	_, err := f.uc.SubmitProof(context.Background(), buyerID, tx.Code, "proofs/x.jpg")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestReleaseFundsRequiresCompleted(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusPaid)

	_, err := f.uc.ReleaseFunds(context.Background(), operatorID, tx.Code)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestReleaseFundsKeepsStatus(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusCompleted)
	ctx := context.Background()

	if _, err := f.uc.ReleaseFunds(ctx, operatorID, tx.Code); err != nil {
		t.Fatalf("release: %v", err)
	}

	stored, _ := f.txRepo.GetTransactionByCode(ctx, tx.Code)
	if stored.Status != domain.StatusCompleted {
		t.Fatalf("release changed status to %s", stored.Status)
	}

	got := f.audit.actions()
	if len(got) != 1 || got[0] != domain.AuditFundsReleased {
		t.Fatalf("expected single funds_released audit entry, got %v", got)
	}
	if f.notifier.sentTo(sellerID) == 0 {
		t.Error("seller was not notified about the payout")
	}
}

func TestReleaseFundsAdminOnly(t *testing.T) {
	f := newFixture()
	tx := f.seed(t, domain.StatusCompleted)

	_, err := f.uc.ReleaseFunds(context.Background(), buyerID, tx.Code)
	if !errors.Is(err, domain.ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
}

func TestNotifySellerUnknownHandle(t *testing.T) {
	f := newFixture()
	f.notifier.handles = map[string]int64{}
	tx := f.seed(t, domain.StatusPaid)

	err := f.uc.NotifySeller(context.Background(), operatorID, tx.Code)
	if !errors.Is(err, domain.ErrSellerNotRegistered) {
		t.Fatalf("expected ErrSellerNotRegistered, got %v", err)
	}
}

func TestSubmitMalformedForm(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Submit(context.Background(), buyerID, "Harga: 5000")
	if !errors.Is(err, domain.ErrMalformedSubmission) {
		t.Fatalf("expected ErrMalformedSubmission, got %v", err)
	}
	if f.notifier.sentTo(operatorID) != 0 {
		t.Error("operator notified for a rejected submission")
	}
}
