package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/dto/request"
	response "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/dto/response"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles the buyer-facing checkout flow.

type CheckoutHandler struct {
	usecase  usecase.ICheckoutUseCase
	ledger   usecase.IOrderLedgerUseCase
	sessions *usecase.CheckoutSessionStore
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, ledger usecase.IOrderLedgerUseCase, sessions *usecase.CheckoutSessionStore) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, ledger: ledger, sessions: sessions}
}

// SubmitCheckout runs one payment attempt for the submitted form.
func (h *CheckoutHandler) SubmitCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	in := usecase.CheckoutInput{
		SessionID:      payload.SessionID,
		Name:           payload.Name,
		Document:       payload.ResolveDocument(),
		Phone:          payload.ResolvePhone(),
		Email:          payload.Email,
		Plan:           entities.Plan(payload.ResolvePlan()),
		SearchType:     entities.SearchType(payload.ResolveSearchType()),
		SelectedExtras: payload.SelectedExtras,
		Card:           toCardDetails(payload.Card),
	}

	log.Printf("[checkout][handler] submit start session_id=%s plan=%s search_type=%s", in.SessionID, in.Plan, in.SearchType)
	result, err := h.usecase.ExecutePayment(c.Request.Context(), in)
	if err != nil {
		log.Printf("[checkout][handler] submit failed session_id=%s err=%v", in.SessionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] submit success session_id=%s step=%s payment_id=%s", result.Session.ID, result.Step, result.Payment.ID)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// GetSession returns the current step and settlement state for polling.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	session, err := h.sessions.Get(sessionID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.SessionResponse{
		SessionID: session.ID,
		Step:      string(session.Step()),
	}
	if paymentID := session.PaymentID(); paymentID != "" {
		payment := response.FromPaymentData(session.Payment())
		resp.Payment = &payment
		if order, err := h.ledger.GetByPaymentID(c.Request.Context(), paymentID); err == nil {
			resp.OrderStatus = string(order.Status)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// CloseSession tears a session down and stops its settlement watcher.
func (h *CheckoutHandler) CloseSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	h.sessions.Delete(sessionID)
	log.Printf("[checkout][handler] session closed session_id=%s", sessionID)
	c.Status(http.StatusNoContent)
}

func toCardDetails(card *request.CardRequest) *interfaces.CardDetails {
	if card == nil {
		return nil
	}
	return &interfaces.CardDetails{
		Number:               card.Number,
		HolderName:           card.HolderName,
		ExpirationMonth:      card.ExpirationMonth,
		ExpirationYear:       card.ExpirationYear,
		SecurityCode:         card.SecurityCode,
		IdentificationNumber: card.IdentificationNumber,
		PaymentMethodID:      card.PaymentMethodID,
		Installments:         card.Installments,
	}
}

func mapCheckoutError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_"+fieldCode(validationErr.Field), validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNoActiveGateway):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_GATEWAY", "No payment method is enabled", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeInFlight):
		return pkg.NewDomainErrorSimple("CHARGE_IN_FLIGHT", "A charge is already being processed for this session", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func fieldCode(field string) string {
	switch field {
	case "name":
		return "NAME"
	case "document":
		return "DOCUMENT"
	case "email":
		return "EMAIL"
	case "phone":
		return "PHONE"
	case "plan":
		return "PLAN"
	default:
		return "REQUEST"
	}
}
