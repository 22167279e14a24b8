package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
)

func simulationGateway(mutate func(*entities.PaymentConfig)) *MercadoPagoGateway {
	cfg := entities.DefaultPaymentConfig()
	cfg.AccessToken = ""
	if mutate != nil {
		mutate(&cfg)
	}
	return NewMercadoPagoGateway(cfg, "https://checkout.example", eventlog.NewRing(0))
}

func TestMercadoPagoGateway_CreateCharge_Simulation(t *testing.T) {
	t.Run("pix without a token fabricates a degraded charge", func(t *testing.T) {
		g := simulationGateway(nil)

		payment, err := g.CreateCharge(context.Background(), testOrder(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !payment.Degraded {
			t.Error("expected a degraded payment")
		}
		if !strings.HasPrefix(payment.ID, mockPaymentPrefix) {
			t.Errorf("expected a %s id, got %q", mockPaymentPrefix, payment.ID)
		}
		if payment.Status != string(entities.OrderStatusPending) {
			t.Errorf("expected pending, got %q", payment.Status)
		}
		if payment.QRCode == "" {
			t.Error("expected a renderable pix payload")
		}
		if payment.HasRedirect() {
			t.Error("expected no redirect for transparent pix")
		}
	})

	t.Run("pro mode without a token fabricates a degraded preference", func(t *testing.T) {
		g := simulationGateway(func(cfg *entities.PaymentConfig) {
			cfg.Mode = entities.ModePro
		})

		payment, err := g.CreateCharge(context.Background(), testOrder(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !payment.Degraded {
			t.Error("expected a degraded payment")
		}
		if !strings.HasPrefix(payment.ID, mockPreferencePrefix) {
			t.Errorf("expected a %s id, got %q", mockPreferencePrefix, payment.ID)
		}
		if !payment.HasRedirect() {
			t.Error("expected a hosted checkout redirect")
		}
		if got := payment.RedirectURL(true); !strings.Contains(got, "sandbox") {
			t.Errorf("expected the sandbox init point, got %q", got)
		}
	})

	t.Run("card without a token falls back to a degraded pix", func(t *testing.T) {
		g := simulationGateway(nil)

		card := &interfaces.CardDetails{Number: "5031433215406351", HolderName: "MARIA SOUZA"}
		payment, err := g.CreateCharge(context.Background(), testOrder(), card)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !payment.Degraded {
			t.Error("expected a degraded payment")
		}
		if !strings.HasPrefix(payment.ID, mockPaymentPrefix) {
			t.Errorf("expected a %s id, got %q", mockPaymentPrefix, payment.ID)
		}
	})
}

func TestMercadoPagoGateway_CheckStatus(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		paymentID string
	}{
		{"mock id", "", "mock_mp_123"},
		{"mock preference id", "", "mock_pref_123"},
		{"no client", "", "12345"},
		{"non numeric id", "TEST-token", "pref-abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := simulationGateway(func(cfg *entities.PaymentConfig) {
				cfg.AccessToken = tt.token
			})

			status, err := g.CheckStatus(context.Background(), tt.paymentID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status != entities.OrderStatusPending {
				t.Errorf("expected pending, got %q", status)
			}
		})
	}
}

func TestNormalizeProviderStatus(t *testing.T) {
	tests := []struct {
		provider string
		want     entities.OrderStatus
	}{
		{"approved", entities.OrderStatusApproved},
		{"APPROVED", entities.OrderStatusApproved},
		{"rejected", entities.OrderStatusRejected},
		{"cancelled", entities.OrderStatusRejected},
		{"refunded", entities.OrderStatusRejected},
		{"charged_back", entities.OrderStatusRejected},
		{"pending", entities.OrderStatusPending},
		{"in_process", entities.OrderStatusPending},
		{"", entities.OrderStatusPending},
	}

	for _, tt := range tests {
		if got := normalizeProviderStatus(tt.provider); got != tt.want {
			t.Errorf("normalizeProviderStatus(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

type captureTransport struct {
	header string
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.header = req.Header.Get("X-Idempotency-Key")
	rec := httptest.NewRecorder()
	rec.WriteHeader(http.StatusOK)
	return rec.Result(), nil
}

func TestIdempotencyTransport(t *testing.T) {
	t.Run("stamps the key from the request context", func(t *testing.T) {
		base := &captureTransport{}
		transport := idempotencyTransport{base: base}

		ctx := context.WithValue(context.Background(), idempotencyKeyCtx{}, "52998224725-42")
		req, _ := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.example/v1/payments", nil)

		if _, err := transport.RoundTrip(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if base.header != "52998224725-42" {
			t.Errorf("expected the key stamped, got %q", base.header)
		}
	})

	t.Run("leaves requests without a key untouched", func(t *testing.T) {
		base := &captureTransport{}
		transport := idempotencyTransport{base: base}

		req, _ := http.NewRequest(http.MethodGet, "https://api.example/v1/payments/1", nil)

		if _, err := transport.RoundTrip(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if base.header != "" {
			t.Errorf("expected no key, got %q", base.header)
		}
	})
}

func TestMercadoPagoHelpers(t *testing.T) {
	t.Run("idempotency key embeds the buyer document", func(t *testing.T) {
		key := idempotencyKey("52998224725")
		if !strings.HasPrefix(key, "52998224725-") {
			t.Errorf("unexpected key %q", key)
		}
	})

	t.Run("name splitting", func(t *testing.T) {
		if got := firstName("Maria de Souza"); got != "Maria" {
			t.Errorf("firstName = %q", got)
		}
		if got := lastName("Maria de Souza"); got != "de Souza" {
			t.Errorf("lastName = %q", got)
		}
		if got := firstName(""); got != "" {
			t.Errorf("firstName on empty = %q", got)
		}
		if got := lastName("Maria"); got != "Cliente" {
			t.Errorf("lastName fallback = %q", got)
		}
	})

	t.Run("first non empty", func(t *testing.T) {
		if got := firstNonEmpty("", "a", "b"); got != "a" {
			t.Errorf("firstNonEmpty = %q", got)
		}
		if got := firstNonEmpty("", ""); got != "" {
			t.Errorf("firstNonEmpty on all empty = %q", got)
		}
	})

	t.Run("round2", func(t *testing.T) {
		if got := round2(59.899999); got != 59.9 {
			t.Errorf("round2 = %v", got)
		}
		if got := round2(10); got != 10 {
			t.Errorf("round2 = %v", got)
		}
	})

	t.Run("charge description", func(t *testing.T) {
		if got := chargeDescription(entities.PlanBasic); got != "Consulta Nacional - Plano Básico" {
			t.Errorf("chargeDescription = %q", got)
		}
		if got := chargeDescription(entities.PlanComplete); got != "Consulta Nacional - Plano Completo" {
			t.Errorf("chargeDescription = %q", got)
		}
	})
}
