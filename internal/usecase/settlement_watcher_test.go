package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	mock_interfaces "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const watcherTestInterval = 5 * time.Millisecond

var errFromGateway = errors.New("provider unreachable")

func waitForSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestSettlementWatcher_Watch(t *testing.T) {
	t.Run("approval settles the session and the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		session := newCheckoutSession()
		session.Supersede("pay-1", entities.PaymentData{ID: "pay-1"}, StepPayment, nil)

		// First poll sees pending, the next one settles.
		var polls atomic.Int32
		gateway.EXPECT().CheckStatus(gomock.Any(), "pay-1").DoAndReturn(
			func(ctx context.Context, paymentID string) (entities.OrderStatus, error) {
				if polls.Add(1) == 1 {
					return entities.OrderStatusPending, nil
				}
				return entities.OrderStatusApproved, nil
			}).AnyTimes()

		settled := make(chan struct{})
		repo.EXPECT().GetByPaymentID(gomock.Any(), "pay-1").Return(
			entities.Order{ID: "ord-1", PaymentID: "pay-1", Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusApproved).DoAndReturn(
			func(ctx context.Context, id string, status entities.OrderStatus) error {
				close(settled)
				return nil
			})

		watcher := NewSettlementWatcher(NewOrderLedgerUseCase(repo), watcherTestInterval)
		cancel := watcher.Watch(gateway, session, "pay-1")
		defer cancel()

		waitForSignal(t, settled, "ledger settlement")

		if session.Step() != StepSuccess {
			t.Errorf("expected step %q, got %q", StepSuccess, session.Step())
		}
		if got := polls.Load(); got < 2 {
			t.Errorf("expected at least 2 polls, got %d", got)
		}
	})

	t.Run("rejection moves the session to the rejected step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		session := newCheckoutSession()
		session.Supersede("pay-2", entities.PaymentData{ID: "pay-2"}, StepPayment, nil)

		gateway.EXPECT().CheckStatus(gomock.Any(), "pay-2").
			Return(entities.OrderStatusRejected, nil).AnyTimes()

		settled := make(chan struct{})
		repo.EXPECT().GetByPaymentID(gomock.Any(), "pay-2").Return(
			entities.Order{ID: "ord-2", PaymentID: "pay-2", Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-2", entities.OrderStatusRejected).DoAndReturn(
			func(ctx context.Context, id string, status entities.OrderStatus) error {
				close(settled)
				return nil
			})

		watcher := NewSettlementWatcher(NewOrderLedgerUseCase(repo), watcherTestInterval)
		cancel := watcher.Watch(gateway, session, "pay-2")
		defer cancel()

		waitForSignal(t, settled, "ledger settlement")

		if session.Step() != StepRejected {
			t.Errorf("expected step %q, got %q", StepRejected, session.Step())
		}
	})

	t.Run("superseded attempt stops polling without touching the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		session := newCheckoutSession()
		session.Supersede("pay-new", entities.PaymentData{ID: "pay-new"}, StepPayment, nil)

		// Watching the old attempt: the first tick notices the supersession
		// and exits before reaching the gateway or the ledger.
		watcher := NewSettlementWatcher(NewOrderLedgerUseCase(repo), watcherTestInterval)
		cancel := watcher.Watch(gateway, session, "pay-old")
		defer cancel()

		time.Sleep(10 * watcherTestInterval)
	})

	t.Run("gateway error keeps the loop alive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		session := newCheckoutSession()
		session.Supersede("pay-3", entities.PaymentData{ID: "pay-3"}, StepPayment, nil)

		var polls atomic.Int32
		gateway.EXPECT().CheckStatus(gomock.Any(), "pay-3").DoAndReturn(
			func(ctx context.Context, paymentID string) (entities.OrderStatus, error) {
				polls.Add(1)
				return entities.OrderStatusPending, errFromGateway
			}).AnyTimes()

		watcher := NewSettlementWatcher(NewOrderLedgerUseCase(repo), watcherTestInterval)
		cancel := watcher.Watch(gateway, session, "pay-3")

		time.Sleep(10 * watcherTestInterval)
		cancel()

		if polls.Load() < 2 {
			t.Errorf("expected the watcher to keep polling after an error, got %d polls", polls.Load())
		}
		if session.Step() != StepPayment {
			t.Errorf("expected step %q, got %q", StepPayment, session.Step())
		}
	})
}
