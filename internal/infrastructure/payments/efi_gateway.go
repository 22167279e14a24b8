package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/validation"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
)

const (
	efiProdURL    = "https://pix-api.sejaefi.com.br"
	efiSandboxURL = "https://pix-api.sandbox.efipay.com.br"

	mockTokenPrefix = "mock_token_"
	mockTxidPrefix  = "mock_txid_"

	mockEfiPixPayload = "00020126580014BR.GOV.BCB.PIX0136123e4567-e12b-12d1-a456-426655440000 520400005303986540410.005802BR5913Efí Pay Mock6008BRASILIA62070503***63041D3D"

	certificateHeader = "X-Certificate-Content"

	// Upstream field length limits; exceeding them is a hard 400.
	payerNameLimit   = 200
	solicitacaoLimit = 140
	infoValueLimit   = 200
)

// Characters outside this set make the charge endpoint reject the payload.
var efiAllowed = regexp.MustCompile(`[^a-zA-Z0-9 à-úÀ-Ú@.\-]`)

// EfiGateway is the Provider B adapter: immediate PIX charges authenticated by
// OAuth client-credentials plus a certificate header.
//
// Certificate material cannot always be presented (the original deployment ran
// in a browser, where mTLS is impossible), so connection-level auth failures
// produce a clearly-marked synthetic token and the whole flow short-circuits
// into a simulated charge instead of failing the checkout.

type EfiGateway struct {
	cfg        entities.EfiConfig
	paymentCfg entities.PaymentConfig
	events     *eventlog.Ring
	client     *http.Client
	baseURL    string
}

var _ interfaces.IPaymentGateway = (*EfiGateway)(nil)

func NewEfiGateway(cfg entities.EfiConfig, paymentCfg entities.PaymentConfig, events *eventlog.Ring) *EfiGateway {
	base := efiProdURL
	if cfg.Sandbox {
		base = efiSandboxURL
	}
	return &EfiGateway{
		cfg:        cfg,
		paymentCfg: paymentCfg,
		events:     events,
		client:     &http.Client{Timeout: 30 * time.Second},
		baseURL:    base,
	}
}

func (g *EfiGateway) Name() entities.GatewayName {
	return entities.GatewayEfi
}

// authenticate obtains a bearer token via client-credentials grant. Missing
// credentials or a connection-level failure yield a synthetic token so the
// flow can continue in demo mode.
func (g *EfiGateway) authenticate(ctx context.Context) string {
	if g.cfg.ClientID == "" || g.cfg.ClientSecret == "" {
		g.warn("Modo simulação ativo (sem credenciais)")
		return mockTokenPrefix + strconv.FormatInt(time.Now().UnixNano(), 10)
	}

	body := bytes.NewBufferString(`{"grant_type":"client_credentials"}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/oauth/token", body)
	if err != nil {
		return mockTokenPrefix + "mtls_fallback_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	req.SetBasicAuth(g.cfg.ClientID, g.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/json")
	g.setCertificateHeader(req)

	resp, err := g.client.Do(req)
	if err != nil {
		// Consistent with the client being unable to present a certificate.
		log.Printf("[efi][gateway] oauth transport failure err=%v; simulation fallback", err)
		g.warn("Falha de conexão/certificado (mTLS); modo simulação")
		return mockTokenPrefix + "mtls_fallback_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		g.error("Falha na autenticação Efí", fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
		return mockTokenPrefix + strconv.FormatInt(time.Now().UnixNano(), 10)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil || token.AccessToken == "" {
		g.error("Resposta de autenticação inválida", err)
		return mockTokenPrefix + strconv.FormatInt(time.Now().UnixNano(), 10)
	}

	g.success("Autenticação realizada com sucesso")
	return token.AccessToken
}

// setCertificateHeader attaches the flattened certificate when one is
// configured. Raw PEM line breaks are invalid in an HTTP header value.
func (g *EfiGateway) setCertificateHeader(req *http.Request) {
	if g.cfg.CertificatePEM == "" || g.cfg.Sandbox {
		return
	}
	flat := strings.NewReplacer("\r", "", "\n", "").Replace(g.cfg.CertificatePEM)
	req.Header.Set(certificateHeader, flat)
}

// CreateCharge creates an immediate PIX charge keyed by the registered PIX
// key, then fetches the rendered QR code for it. A synthetic token
// short-circuits into a simulated charge without touching the network.
func (g *EfiGateway) CreateCharge(ctx context.Context, order entities.Order, _ *interfaces.CardDetails) (entities.PaymentData, error) {
	token := g.authenticate(ctx)
	if strings.HasPrefix(token, mockTokenPrefix) {
		return g.syntheticCharge(), nil
	}

	expiration := g.paymentCfg.ExpirationMinutes
	if expiration <= 0 {
		expiration = 30
	}

	payload := map[string]any{
		"calendario": map[string]any{
			"expiracao": expiration * 60,
		},
		"devedor": map[string]any{
			"cpf":  validation.Digits(order.CustomerCpf),
			"nome": sanitizeEfi(order.CustomerName, payerNameLimit),
		},
		"valor": map[string]any{
			"original": fmt.Sprintf("%.2f", order.Amount),
		},
		"chave":             g.cfg.PixKey,
		"solicitacaoPagador": sanitizeEfi("Consulta Nac - "+string(order.Plan), solicitacaoLimit),
		"infoAdicionais": []map[string]any{
			{"nome": "Plano", "valor": sanitizeEfi(string(order.Plan), infoValueLimit)},
			{"nome": "Email", "valor": sanitizeEfi(firstNonEmpty(order.Email, "N/A"), infoValueLimit)},
		},
	}

	var cob struct {
		Txid   string `json:"txid"`
		Status string `json:"status"`
		Loc    struct {
			ID int `json:"id"`
		} `json:"loc"`
	}
	if err := g.doJSON(ctx, http.MethodPost, "/v2/cob", token, payload, &cob); err != nil {
		g.error("Erro ao criar cobrança Efí", err)
		return g.syntheticCharge(), nil
	}

	g.success("Cobrança criada txid=" + cob.Txid)

	var qr struct {
		QRCode           string `json:"qrcode"`
		ImagemQrcode     string `json:"imagemQrcode"`
		LinkVisualizacao string `json:"linkVisualizacao"`
	}
	if err := g.doJSON(ctx, http.MethodGet, "/v2/loc/"+strconv.Itoa(cob.Loc.ID)+"/qrcode", token, nil, &qr); err != nil {
		g.error("Erro ao gerar QR Code", err)
		return g.syntheticCharge(), nil
	}

	return entities.PaymentData{
		ID:           cob.Txid,
		QRCode:       qr.QRCode,
		QRCodeBase64: strings.TrimPrefix(qr.ImagemQrcode, "data:image/png;base64,"),
		TicketURL:    qr.LinkVisualizacao,
		Status:       string(normalizeEfiStatus(cob.Status)),
		Gateway:      entities.GatewayEfi,
	}, nil
}

// CheckStatus retrieves the charge by txid and maps the provider vocabulary
// onto the ledger states. Never returns an error.
func (g *EfiGateway) CheckStatus(ctx context.Context, paymentID string) (entities.OrderStatus, error) {
	if strings.HasPrefix(paymentID, "mock_") {
		return entities.OrderStatusPending, nil
	}

	token := g.authenticate(ctx)
	if strings.HasPrefix(token, mockTokenPrefix) {
		return entities.OrderStatusPending, nil
	}

	var cob struct {
		Status string `json:"status"`
	}
	if err := g.doJSON(ctx, http.MethodGet, "/v2/cob/"+paymentID, token, nil, &cob); err != nil {
		log.Printf("[efi][gateway] status check failed txid=%s err=%v", paymentID, err)
		return entities.OrderStatusPending, nil
	}
	return normalizeEfiStatus(cob.Status), nil
}

func (g *EfiGateway) doJSON(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	g.setCertificateHeader(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("http %d: %s", resp.StatusCode, efiErrorDetail(raw))
	}
	return json.Unmarshal(raw, out)
}

func efiErrorDetail(raw []byte) string {
	var e struct {
		Detail   string `json:"detail"`
		Mensagem string `json:"mensagem"`
	}
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Detail != "" {
			return e.Detail
		}
		if e.Mensagem != "" {
			return e.Mensagem
		}
	}
	return strings.TrimSpace(string(raw))
}

func (g *EfiGateway) syntheticCharge() entities.PaymentData {
	return entities.PaymentData{
		ID:        mockTxidPrefix + strconv.FormatInt(time.Now().UnixNano(), 10),
		QRCode:    mockEfiPixPayload,
		TicketURL: "#",
		Status:    string(entities.OrderStatusPending),
		Gateway:   entities.GatewayEfi,
		Degraded:  true,
	}
}

// sanitizeEfi strips characters outside the provider allow-list and truncates
// to the field limit. Failing closed here (strip, don't reject) keeps a stray
// character from sinking the whole checkout.
func sanitizeEfi(s string, limit int) string {
	clean := efiAllowed.ReplaceAllString(s, "")
	runes := []rune(clean)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return clean
}

func normalizeEfiStatus(status string) entities.OrderStatus {
	switch strings.ToUpper(status) {
	case "CONCLUIDA":
		return entities.OrderStatusApproved
	case "REMOVIDA_PELO_USUARIO_RECEBEDOR", "REMOVIDA_PELO_PSP":
		return entities.OrderStatusRejected
	default:
		// ATIVA and anything unknown keep the order pending.
		return entities.OrderStatusPending
	}
}

func (g *EfiGateway) warn(msg string) {
	if g.events != nil {
		g.events.Add(eventlog.LevelWarning, "efi", msg)
	}
}

func (g *EfiGateway) success(msg string) {
	if g.events != nil {
		g.events.Add(eventlog.LevelSuccess, "efi", msg)
	}
}

func (g *EfiGateway) error(msg string, err error) {
	if g.events != nil {
		detail := ""
		if err != nil {
			detail = err.Error()
		}
		g.events.Add(eventlog.LevelError, "efi", msg, detail)
	}
}
