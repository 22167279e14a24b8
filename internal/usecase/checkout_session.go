package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrChargeInFlight  = errors.New("charge creation already in flight")
)

// CheckoutStep is the buyer-facing stage of a checkout session.

type CheckoutStep string

const (
	StepForm     CheckoutStep = "form"
	StepPayment  CheckoutStep = "payment"
	StepRedirect CheckoutStep = "redirect"
	StepSuccess  CheckoutStep = "success"
	StepRejected CheckoutStep = "rejected"
)

// CheckoutSession drives one buyer through form → payment → success (or
// form → redirect). The current payment id doubles as the liveness token: a
// watcher tick from a superseded attempt compares it and becomes harmless,
// so correctness never depends on a timer being torn down at the exact
// right moment.

type CheckoutSession struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	step       CheckoutStep
	paymentID  string
	gateway    entities.GatewayName
	payment    entities.PaymentData
	inFlight   bool
	cancelPoll context.CancelFunc
}

func newCheckoutSession() *CheckoutSession {
	return &CheckoutSession{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		step:      StepForm,
	}
}

// BeginAttempt takes the single charge-creation slot. At most one create call
// may be outstanding per session; the idempotency key upstream is the real
// safety net, this is the UI-level mutual exclusion.
func (s *CheckoutSession) BeginAttempt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrChargeInFlight
	}
	s.inFlight = true
	return nil
}

func (s *CheckoutSession) FinishAttempt() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// Supersede installs a new attempt's payment id, step, and poll cancel,
// cancelling whatever poller the previous attempt left behind.
func (s *CheckoutSession) Supersede(paymentID string, payment entities.PaymentData, step CheckoutStep, cancel context.CancelFunc) {
	s.mu.Lock()
	prev := s.cancelPoll
	s.paymentID = paymentID
	s.payment = payment
	s.gateway = payment.Gateway
	s.step = step
	s.cancelPoll = cancel
	s.mu.Unlock()

	if prev != nil {
		prev()
	}
}

// Matches reports whether paymentID is still the session's current attempt.
func (s *CheckoutSession) Matches(paymentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentID != "" && s.paymentID == paymentID
}

// SettleIfCurrent transitions the session for a terminal settlement, but only
// when paymentID has not been superseded. Returns whether the transition
// happened.
func (s *CheckoutSession) SettleIfCurrent(paymentID string, status entities.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paymentID == "" || s.paymentID != paymentID {
		return false
	}
	switch status {
	case entities.OrderStatusApproved:
		s.step = StepSuccess
	case entities.OrderStatusRejected:
		s.step = StepRejected
	default:
		return false
	}
	return true
}

func (s *CheckoutSession) Step() CheckoutStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *CheckoutSession) PaymentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentID
}

func (s *CheckoutSession) Payment() entities.PaymentData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

// Close tears the session down, cancelling any active poller.
func (s *CheckoutSession) Close() {
	s.mu.Lock()
	cancel := s.cancelPoll
	s.cancelPoll = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// CheckoutSessionStore is the in-memory registry of live checkout sessions.

type CheckoutSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*CheckoutSession
}

func NewCheckoutSessionStore() *CheckoutSessionStore {
	return &CheckoutSessionStore{sessions: map[string]*CheckoutSession{}}
}

func (st *CheckoutSessionStore) Create() *CheckoutSession {
	s := newCheckoutSession()
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *CheckoutSessionStore) Get(id string) (*CheckoutSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete closes and removes the session. Unknown ids are a no-op.
func (st *CheckoutSessionStore) Delete(id string) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if ok {
		s.Close()
	}
}
