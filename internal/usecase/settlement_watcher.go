package usecase

import (
	"context"
	"log"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
)

// defaultPollInterval is the reference settlement-polling cadence.
const defaultPollInterval = 5 * time.Second

// SettlementWatcher polls a gateway for settlement of a pending charge and
// reconciles the order ledger when a terminal status arrives.
//
// Every tick is independent: it re-checks that the watched payment id is
// still the session's current attempt before calling out and again before
// writing, so a stale timer from a superseded attempt can never corrupt the
// ledger. There is no terminal timeout: an order the provider never settles
// stays pending; the charge expiration is enforced upstream.

type SettlementWatcher struct {
	ledger   IOrderLedgerUseCase
	interval time.Duration
}

func NewSettlementWatcher(ledger IOrderLedgerUseCase, interval time.Duration) *SettlementWatcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &SettlementWatcher{ledger: ledger, interval: interval}
}

// Watch starts the polling loop for paymentID and returns its cancel handle.
// The loop stops on cancellation, supersession, or a terminal settlement.
func (w *SettlementWatcher) Watch(gateway interfaces.IPaymentGateway, session *CheckoutSession, paymentID string) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go w.run(ctx, gateway, session, paymentID)
	return cancel
}

func (w *SettlementWatcher) run(ctx context.Context, gateway interfaces.IPaymentGateway, session *CheckoutSession, paymentID string) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if done := w.tick(ctx, gateway, session, paymentID); done {
				return
			}
		}
	}
}

// tick performs one poll. Returns true when the loop should stop.
func (w *SettlementWatcher) tick(ctx context.Context, gateway interfaces.IPaymentGateway, session *CheckoutSession, paymentID string) bool {
	if !session.Matches(paymentID) {
		// Superseded by a newer attempt; this timer is now inert.
		return true
	}

	status, err := gateway.CheckStatus(ctx, paymentID)
	if err != nil {
		// Adapters report pending instead of erroring; treat a breach of that
		// contract as a transient miss.
		log.Printf("[watcher][usecase] status check error payment_id=%s err=%v", paymentID, err)
		return false
	}
	if !status.IsTerminal() {
		return false
	}

	if !session.SettleIfCurrent(paymentID, status) {
		return true
	}
	if err := w.ledger.UpdateStatusByPaymentID(ctx, paymentID, status); err != nil {
		log.Printf("[watcher][usecase] ledger update failed payment_id=%s status=%s err=%v", paymentID, status, err)
	}
	log.Printf("[watcher][usecase] settled payment_id=%s status=%s", paymentID, status)
	return true
}
