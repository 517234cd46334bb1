package telegram

import (
	"sync"

	"github.com/rekberinx/rekber-bot/internal/domain"
)

// chatState tracks which free-text input the next message from a chat is
// answering. Per-chat, in-memory, lost on restart.
type chatState string

const (
	stateIdle           chatState = ""
	stateWaitingFormat  chatState = "waiting_format"
	stateWaitingProof   chatState = "waiting_payment_proof"
	statePaymentDetails chatState = "awaiting_payment_details"
	stateBroadcast      chatState = "awaiting_broadcast"
	stateBanRef         chatState = "awaiting_ban_ref"
	stateUnbanRef       chatState = "awaiting_unban_ref"
)

type session struct {
	state       chatState
	txCode      string
	paymentType domain.PaymentMethodType
}

type sessionStore struct {
	mu sync.Mutex
	m  map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[int64]*session)}
}

func (s *sessionStore) get(chatID int64) session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.m[chatID]; ok {
		return *sess
	}
	return session{}
}

func (s *sessionStore) set(chatID int64, sess session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[chatID] = &sess
}

func (s *sessionStore) clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}
