package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderCustomer = errors.New("invalid order customer")
	ErrInvalidOrderPlan     = errors.New("invalid order plan")
	ErrInvalidOrderAmount   = errors.New("invalid order amount")
	ErrInvalidTargetStatus  = errors.New("invalid target status")
	ErrOrderNotFound        = errors.New("order not found")
)

// IOrderLedgerUseCase exposes the order ledger: append on charge creation,
// settle through the payment correlation key, project for the admin view.

type IOrderLedgerUseCase interface {
	Append(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateStatusByPaymentID(ctx context.Context, paymentID string, status entities.OrderStatus) error
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error)
	List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error)
}

type OrderLedgerUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderLedgerUseCase = (*OrderLedgerUseCase)(nil)

func NewOrderLedgerUseCase(repo interfaces.IOrderRepository) *OrderLedgerUseCase {
	return &OrderLedgerUseCase{repo: repo}
}

// Append assigns id and creation date and persists the order. Exactly one
// order exists per charge-creation call; buyer fields are immutable from here.
func (u *OrderLedgerUseCase) Append(ctx context.Context, o entities.Order) (entities.Order, error) {
	if strings.TrimSpace(o.CustomerName) == "" {
		return entities.Order{}, ErrInvalidOrderCustomer
	}
	if !o.Plan.Valid() {
		return entities.Order{}, ErrInvalidOrderPlan
	}
	if o.Amount < 0 {
		return entities.Order{}, ErrInvalidOrderAmount
	}

	o.ID = uuid.NewString()
	o.Date = time.Now().UTC()
	if o.Status == "" {
		o.Status = entities.OrderStatusPending
	}
	return u.repo.Create(ctx, o)
}

// UpdateStatusByPaymentID settles the unique order carrying paymentID.
//
// Unknown ids are a deliberate no-op: a late settlement callback after a
// ledger reset must not crash anything. Transitions are forward-only, so a
// repeated terminal update is idempotent and an approved/rejected order can
// never reopen.
func (u *OrderLedgerUseCase) UpdateStatusByPaymentID(ctx context.Context, paymentID string, status entities.OrderStatus) error {
	if !status.IsTerminal() {
		return ErrInvalidTargetStatus
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil
	}

	o, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return err
	}
	if o.ID == "" {
		log.Printf("[ledger][usecase] settlement for unknown payment_id=%s ignored", paymentID)
		return nil
	}
	if o.Status == status {
		return nil
	}
	if !o.Status.CanTransitionTo(status) {
		log.Printf("[ledger][usecase] blocked transition order_id=%s %s->%s", o.ID, o.Status, status)
		return nil
	}

	log.Printf("[ledger][usecase] settling order_id=%s payment_id=%s status=%s", o.ID, paymentID, status)
	return u.repo.UpdateStatus(ctx, o.ID, status)
}

func (u *OrderLedgerUseCase) GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderLedgerUseCase) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	return u.repo.List(ctx, filter)
}
