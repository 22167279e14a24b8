package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/validation"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
)

// ValidationError is a field-level input rejection. Always recoverable: the
// buyer corrects the field and resubmits. No network call is made and no
// order is created for a request that fails validation.

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// CheckoutInput is the buyer form plus purchase selection for one attempt.

type CheckoutInput struct {
	SessionID string

	Name     string
	Document string
	Phone    string
	Email    string

	Plan           entities.Plan
	SearchType     entities.SearchType
	SelectedExtras []string

	Card *interfaces.CardDetails
}

// CheckoutResult is what the orchestrator hands back on a successful attempt.

type CheckoutResult struct {
	Session     *CheckoutSession
	Step        CheckoutStep
	Order       entities.Order
	Payment     entities.PaymentData
	RedirectURL string
}

// ICheckoutUseCase is the single entry point of the payment orchestration.

type ICheckoutUseCase interface {
	ExecutePayment(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
}

// CheckoutUseCase validates buyer input, resolves the active gateway, creates
// the charge, appends the order to the ledger, and drives the session state
// machine. When the charge settles asynchronously it also starts the
// settlement watcher.

type CheckoutUseCase struct {
	configs  IConfigUseCase
	ledger   IOrderLedgerUseCase
	gateways interfaces.IGatewayFactory
	sessions *CheckoutSessionStore
	watcher  *SettlementWatcher
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	configs IConfigUseCase,
	ledger IOrderLedgerUseCase,
	gateways interfaces.IGatewayFactory,
	sessions *CheckoutSessionStore,
	watcher *SettlementWatcher,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		configs:  configs,
		ledger:   ledger,
		gateways: gateways,
		sessions: sessions,
		watcher:  watcher,
	}
}

// ExecutePayment runs the full orchestration for one submit. The order is
// appended to the ledger before the session transitions, so the ledger and
// the payment widget can never disagree about the attempt existing.
func (u *CheckoutUseCase) ExecutePayment(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if err := validateInput(in); err != nil {
		return CheckoutResult{}, err
	}

	paymentCfg, err := u.configs.PaymentConfig(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	efiCfg, err := u.configs.EfiConfig(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}

	gatewayName, err := paymentCfg.ResolveGateway()
	if err != nil {
		log.Printf("[checkout][usecase] no active payment method")
		return CheckoutResult{}, err
	}

	session, err := u.session(in.SessionID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if err := session.BeginAttempt(); err != nil {
		return CheckoutResult{}, err
	}
	defer session.FinishAttempt()

	catalog, err := u.configs.PlanCatalog(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	amount, extras := catalog.Amount(in.SearchType, in.Plan, in.SelectedExtras)

	order := entities.Order{
		CustomerName:   strings.TrimSpace(in.Name),
		CustomerCpf:    in.Document,
		Email:          strings.TrimSpace(in.Email),
		Plan:           in.Plan,
		Amount:         amount,
		Status:         entities.OrderStatusPending,
		Gateway:        gatewayName,
		SearchType:     in.SearchType,
		SelectedExtras: extras,
	}

	gateway := u.gateways.Gateway(gatewayName, paymentCfg, efiCfg)
	log.Printf("[checkout][usecase] creating charge session_id=%s gateway=%s plan=%s amount=%.2f", session.ID, gatewayName, in.Plan, amount)

	payment, err := gateway.CreateCharge(ctx, order, in.Card)
	if err != nil {
		// Adapters degrade instead of erroring; anything arriving here is a
		// contract breach worth surfacing.
		log.Printf("[checkout][usecase] gateway error session_id=%s err=%v", session.ID, err)
		return CheckoutResult{}, err
	}

	order.PaymentID = payment.ID
	order, err = u.ledger.Append(ctx, order)
	if err != nil {
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] order appended order_id=%s payment_id=%s degraded=%t", order.ID, payment.ID, payment.Degraded)

	result := CheckoutResult{Session: session, Order: order, Payment: payment}

	switch {
	case payment.Status == string(entities.OrderStatusApproved):
		// Synchronously settled (card). Terminal; no polling.
		session.Supersede(payment.ID, payment, StepSuccess, nil)
		if err := u.ledger.UpdateStatusByPaymentID(ctx, payment.ID, entities.OrderStatusApproved); err != nil {
			return CheckoutResult{}, err
		}
		order.Status = entities.OrderStatusApproved
		result.Order = order

	case payment.HasRedirect():
		// Settlement happens on the provider's hosted page; the browser
		// navigates away and never returns to this flow.
		session.Supersede(payment.ID, payment, StepRedirect, nil)
		result.RedirectURL = payment.RedirectURL(paymentCfg.Sandbox)

	default:
		cancel := u.watcher.Watch(gateway, session, payment.ID)
		session.Supersede(payment.ID, payment, StepPayment, cancel)
	}

	result.Step = session.Step()
	return result, nil
}

func (u *CheckoutUseCase) session(id string) (*CheckoutSession, error) {
	if id == "" {
		return u.sessions.Create(), nil
	}
	return u.sessions.Get(id)
}

func validateInput(in CheckoutInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Message: "informe o nome completo"}
	}

	switch in.SearchType {
	case entities.SearchTypeCNPJ:
		if !validation.IsValidCNPJ(in.Document) {
			return &ValidationError{Field: "document", Message: "CNPJ inválido"}
		}
	default:
		if !validation.IsValidCPF(in.Document) {
			return &ValidationError{Field: "document", Message: "CPF inválido"}
		}
	}

	if in.Email != "" && !validation.IsValidEmail(in.Email) {
		return &ValidationError{Field: "email", Message: "e-mail inválido"}
	}
	if in.Phone != "" && !validation.IsValidPhone(in.Phone) {
		return &ValidationError{Field: "phone", Message: "telefone inválido"}
	}
	if !in.Plan.Valid() {
		return &ValidationError{Field: "plan", Message: "plano inválido"}
	}
	return nil
}
