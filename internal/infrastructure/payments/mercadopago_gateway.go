package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/validation"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const (
	// Synthetic id prefixes mark simulated charges so status checks and
	// operators can tell them from real ones.
	mockPaymentPrefix    = "mock_mp_"
	mockPreferencePrefix = "mock_pref_"

	// Syntactically valid BR Code payload; not redeemable. Rendered client-side
	// when no base64 image is available.
	mockPixPayload = "00020126580014BR.GOV.BCB.PIX0136123e4567-e12b-12d1-a456-426655440000 520400005303986540410.005802BR5913Mercado Pago6008BRASILIA62070503***63041D3D"

	mpExpirationLayout = "2006-01-02T15:04:05.000-07:00"
)

type idempotencyKeyCtx struct{}

// idempotencyTransport stamps the per-attempt idempotency key onto outgoing
// charge-creation requests so a resubmitted checkout cannot double-charge.
type idempotencyTransport struct {
	base http.RoundTripper
}

func (t idempotencyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if key, ok := req.Context().Value(idempotencyKeyCtx{}).(string); ok && key != "" {
		req.Header.Set("X-Idempotency-Key", key)
	}
	return t.base.RoundTrip(req)
}

// MercadoPagoGateway is the Provider A adapter: transparent PIX, hosted
// Checkout Pro redirect, and tokenized card charges.
//
// When no access token is configured, or the provider cannot be reached, every
// operation degrades into a synthetic response rather than failing the
// checkout. CheckStatus never returns an error.

type MercadoPagoGateway struct {
	cfg    entities.PaymentConfig
	origin string
	events *eventlog.Ring

	payments    payment.Client
	preferences preference.Client
	cardTokens  cardtoken.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway binds one checkout attempt to the provider. origin is
// the public URL the buyer returns to after a hosted checkout.
func NewMercadoPagoGateway(cfg entities.PaymentConfig, origin string, events *eventlog.Ring) *MercadoPagoGateway {
	g := &MercadoPagoGateway{cfg: cfg, origin: origin, events: events}

	if cfg.AccessToken == "" {
		log.Printf("[mercadopago][gateway] missing access token; simulation mode")
		return g
	}

	sdkCfg, err := config.New(cfg.AccessToken, config.WithHTTPClient(&http.Client{
		Transport: idempotencyTransport{base: http.DefaultTransport},
		Timeout:   30 * time.Second,
	}))
	if err != nil {
		log.Printf("[mercadopago][gateway] failed creating sdk config err=%v", err)
		return g
	}

	g.payments = payment.NewClient(sdkCfg)
	g.preferences = preference.NewClient(sdkCfg)
	g.cardTokens = cardtoken.NewClient(sdkCfg)
	return g
}

func (g *MercadoPagoGateway) Name() entities.GatewayName {
	return entities.GatewayMercadoPago
}

// CreateCharge dispatches on the configured mode: card details force a
// tokenized charge, pro mode creates a hosted-checkout preference, everything
// else is a transparent PIX payment.
func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, order entities.Order, card *interfaces.CardDetails) (entities.PaymentData, error) {
	switch {
	case card != nil:
		return g.createCardPayment(ctx, order, card), nil
	case g.cfg.Mode == entities.ModePro:
		return g.createPreference(ctx, order), nil
	default:
		return g.createPixPayment(ctx, order), nil
	}
}

func (g *MercadoPagoGateway) createPixPayment(ctx context.Context, order entities.Order) entities.PaymentData {
	if g.payments == nil {
		g.warn("Modo simulação ativo (sem access token)")
		return g.syntheticPix()
	}

	cpf := validation.Digits(order.CustomerCpf)
	payload := map[string]any{
		"transaction_amount": round2(order.Amount),
		"description":        chargeDescription(order.Plan),
		"payment_method_id":  "pix",
		"payer": map[string]any{
			"email":      order.Email,
			"first_name": firstName(order.CustomerName),
			"last_name":  lastName(order.CustomerName),
			"identification": map[string]any{
				"type":   "CPF",
				"number": cpf,
			},
		},
		"date_of_expiration": g.expiration().Format(mpExpirationLayout),
		"binary_mode":        g.cfg.BinaryMode,
	}
	if g.cfg.WebhookURL != "" {
		payload["notification_url"] = g.cfg.WebhookURL
	}

	req, err := toPaymentRequest(payload)
	if err != nil {
		log.Printf("[mercadopago][gateway] pix payload shaping failed err=%v", err)
		return g.syntheticPix()
	}

	ctx = context.WithValue(ctx, idempotencyKeyCtx{}, idempotencyKey(cpf))
	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		g.error("Erro na criação do PIX", err)
		return g.syntheticPix()
	}

	g.success(fmt.Sprintf("PIX criado com sucesso id=%d", resp.ID))
	return entities.PaymentData{
		ID:           strconv.Itoa(resp.ID),
		QRCode:       resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: resp.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:    resp.PointOfInteraction.TransactionData.TicketURL,
		Status:       string(normalizeProviderStatus(resp.Status)),
		Gateway:      entities.GatewayMercadoPago,
	}
}

func (g *MercadoPagoGateway) createPreference(ctx context.Context, order entities.Order) entities.PaymentData {
	if g.preferences == nil {
		g.warn("Modo simulação ativo (Checkout Pro)")
		return entities.PaymentData{
			ID:               mockPreferencePrefix + strconv.FormatInt(time.Now().UnixNano(), 10),
			InitPoint:        "https://www.mercadopago.com.br/checkout/v1/redirect?pref_id=mock",
			SandboxInitPoint: "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=mock",
			Status:           string(entities.OrderStatusPending),
			Gateway:          entities.GatewayMercadoPago,
			Degraded:         true,
		}
	}

	payload := map[string]any{
		"items": []map[string]any{{
			"id":          string(order.Plan),
			"title":       chargeDescription(order.Plan),
			"description": fmt.Sprintf("Acesso ao relatório %s de situação cadastral.", planLabel(order.Plan)),
			"category_id": "services",
			"quantity":    1,
			"currency_id": "BRL",
			"unit_price":  round2(order.Amount),
		}},
		"payer": map[string]any{
			"name":    firstName(order.CustomerName),
			"surname": lastName(order.CustomerName),
			"email":   order.Email,
			"identification": map[string]any{
				"type":   "CPF",
				"number": validation.Digits(order.CustomerCpf),
			},
		},
		"back_urls": map[string]any{
			"success": g.origin + "?status=success",
			"failure": g.origin + "?status=failure",
			"pending": g.origin + "?status=pending",
		},
		"auto_return": string(g.cfg.AutoReturn),
		"payment_methods": map[string]any{
			"excluded_payment_methods": []any{},
			"excluded_payment_types":   []any{},
			"installments":             g.installments(),
		},
		"statement_descriptor": g.cfg.StatementDescriptor,
		"expires":              true,
		"expiration_date_to":   g.expiration().Format(mpExpirationLayout),
		"binary_mode":          g.cfg.BinaryMode,
	}
	if g.cfg.WebhookURL != "" {
		payload["notification_url"] = g.cfg.WebhookURL
	}

	var req preference.Request
	if err := remarshal(payload, &req); err != nil {
		log.Printf("[mercadopago][gateway] preference payload shaping failed err=%v", err)
		return g.syntheticPix()
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		g.error("Erro ao criar preferência", err)
		return g.syntheticPix()
	}

	g.success("Preferência criada init_point=" + resp.InitPoint)
	return entities.PaymentData{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
		Status:           string(entities.OrderStatusPending),
		Gateway:          entities.GatewayMercadoPago,
	}
}

func (g *MercadoPagoGateway) createCardPayment(ctx context.Context, order entities.Order, card *interfaces.CardDetails) entities.PaymentData {
	if g.payments == nil || g.cardTokens == nil {
		g.warn("Modo simulação ativo (cartão)")
		return g.syntheticPix()
	}

	cpf := validation.Digits(order.CustomerCpf)

	var tokenReq cardtoken.Request
	err := remarshal(map[string]any{
		"card_number":      card.Number,
		"expiration_month": card.ExpirationMonth,
		"expiration_year":  card.ExpirationYear,
		"security_code":    card.SecurityCode,
		"cardholder": map[string]any{
			"name": card.HolderName,
			"identification": map[string]any{
				"type":   "CPF",
				"number": firstNonEmpty(validation.Digits(card.IdentificationNumber), cpf),
			},
		},
	}, &tokenReq)
	if err != nil {
		log.Printf("[mercadopago][gateway] card token payload shaping failed err=%v", err)
		return g.syntheticPix()
	}

	token, err := g.cardTokens.Create(ctx, tokenReq)
	if err != nil {
		g.error("Erro na tokenização do cartão", err)
		return g.syntheticPix()
	}

	installments := card.Installments
	if installments < 1 || installments > g.installments() {
		installments = 1
	}

	payload := map[string]any{
		"transaction_amount": round2(order.Amount),
		"description":        chargeDescription(order.Plan),
		"payment_method_id":  card.PaymentMethodID,
		"token":              token.ID,
		"installments":       installments,
		"payer": map[string]any{
			"email":      order.Email,
			"first_name": firstName(order.CustomerName),
			"last_name":  lastName(order.CustomerName),
			"identification": map[string]any{
				"type":   "CPF",
				"number": cpf,
			},
		},
		"statement_descriptor": g.cfg.StatementDescriptor,
		"binary_mode":          g.cfg.BinaryMode,
	}
	if g.cfg.WebhookURL != "" {
		payload["notification_url"] = g.cfg.WebhookURL
	}

	req, err := toPaymentRequest(payload)
	if err != nil {
		log.Printf("[mercadopago][gateway] card payload shaping failed err=%v", err)
		return g.syntheticPix()
	}

	ctx = context.WithValue(ctx, idempotencyKeyCtx{}, idempotencyKey(cpf))
	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		g.error("Erro na cobrança do cartão", err)
		return g.syntheticPix()
	}

	g.success(fmt.Sprintf("Cobrança de cartão criada id=%d status=%s", resp.ID, resp.Status))
	return entities.PaymentData{
		ID:      strconv.Itoa(resp.ID),
		Status:  string(normalizeProviderStatus(resp.Status)),
		Gateway: entities.GatewayMercadoPago,
	}
}

// CheckStatus polls the retrieve-payment endpoint. It reports pending for
// synthetic ids, missing credentials, and any transport failure: a status
// check must never abort the polling loop.
func (g *MercadoPagoGateway) CheckStatus(ctx context.Context, paymentID string) (entities.OrderStatus, error) {
	if strings.HasPrefix(paymentID, "mock_") || g.payments == nil {
		return entities.OrderStatusPending, nil
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.OrderStatusPending, nil
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[mercadopago][gateway] status check failed payment_id=%s err=%v", paymentID, err)
		return entities.OrderStatusPending, nil
	}
	return normalizeProviderStatus(resp.Status), nil
}

func (g *MercadoPagoGateway) syntheticPix() entities.PaymentData {
	return entities.PaymentData{
		ID:        mockPaymentPrefix + strconv.FormatInt(time.Now().UnixNano(), 10),
		QRCode:    mockPixPayload,
		TicketURL: "https://www.mercadopago.com.br",
		Status:    string(entities.OrderStatusPending),
		Gateway:   entities.GatewayMercadoPago,
		Degraded:  true,
	}
}

func (g *MercadoPagoGateway) expiration() time.Time {
	minutes := g.cfg.ExpirationMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Now().Add(time.Duration(minutes) * time.Minute)
}

func (g *MercadoPagoGateway) installments() int {
	if !g.cfg.InstallmentsEnabled || g.cfg.MaxInstallments < 1 {
		return 1
	}
	return g.cfg.MaxInstallments
}

func (g *MercadoPagoGateway) warn(msg string) {
	if g.events != nil {
		g.events.Add(eventlog.LevelWarning, "mercadopago", msg)
	}
}

func (g *MercadoPagoGateway) success(msg string) {
	if g.events != nil {
		g.events.Add(eventlog.LevelSuccess, "mercadopago", msg)
	}
}

func (g *MercadoPagoGateway) error(msg string, err error) {
	if g.events != nil {
		g.events.Add(eventlog.LevelError, "mercadopago", msg, err.Error())
	}
}

// normalizeProviderStatus collapses the provider status vocabulary onto the
// ledger's three states.
func normalizeProviderStatus(status string) entities.OrderStatus {
	switch strings.ToLower(status) {
	case "approved":
		return entities.OrderStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.OrderStatusRejected
	default:
		return entities.OrderStatusPending
	}
}

// toPaymentRequest shapes a raw payload into the SDK request type. Keeping the
// body as plain JSON first lets the payload mirror the wire contract exactly.
func toPaymentRequest(payload map[string]any) (payment.Request, error) {
	var req payment.Request
	err := remarshal(payload, &req)
	return req, err
}

func remarshal(payload any, target any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, target)
}

// idempotencyKey derives the per-attempt key from buyer identity + timestamp.
func idempotencyKey(cpfDigits string) string {
	return fmt.Sprintf("%s-%d", cpfDigits, time.Now().UnixNano())
}

func chargeDescription(plan entities.Plan) string {
	return "Consulta Nacional - Plano " + planLabel(plan)
}

func planLabel(plan entities.Plan) string {
	if plan == entities.PlanBasic {
		return "Básico"
	}
	return "Completo"
}

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func lastName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return "Cliente"
	}
	return strings.Join(parts[1:], " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
