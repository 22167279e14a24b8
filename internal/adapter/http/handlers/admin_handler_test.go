package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/handlers/mocks"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type adminFixture struct {
	configs *mocks.MockIConfigUseCase
	ledger  *mocks.MockIOrderLedgerUseCase
	events  *eventlog.Ring
	router  *gin.Engine
}

func newAdminFixture(ctrl *gomock.Controller) adminFixture {
	configs := mocks.NewMockIConfigUseCase(ctrl)
	ledger := mocks.NewMockIOrderLedgerUseCase(ctrl)
	events := eventlog.NewRing(0)
	h := NewAdminHandler(configs, ledger, events)

	r := gin.New()
	r.GET("/v1/admin/config/payment", h.GetPaymentConfig)
	r.PUT("/v1/admin/config/payment", h.PutPaymentConfig)
	r.GET("/v1/admin/config/efi", h.GetEfiConfig)
	r.PUT("/v1/admin/config/efi", h.PutEfiConfig)
	r.GET("/v1/admin/config/plans", h.GetPlanCatalog)
	r.PUT("/v1/admin/config/plans", h.PutPlanCatalog)
	r.POST("/v1/admin/credentials/validate", h.ValidateCredentials)
	r.POST("/v1/admin/webhook/simulate", h.SimulateWebhook)
	r.GET("/v1/admin/logs", h.GetLogs)
	r.GET("/v1/admin/orders", h.ListOrders)

	return adminFixture{configs: configs, ledger: ledger, events: events, router: r}
}

func putJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminHandler_PaymentConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get masks the access token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAdminFixture(ctrl)

		cfg := entities.DefaultPaymentConfig()
		cfg.AccessToken = "APP_USR-1234567890-abcd"
		f.configs.EXPECT().PaymentConfig(gomock.Any()).Return(cfg, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/config/payment", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		token, _ := body["access_token"].(string)
		if !strings.HasSuffix(token, "abcd") || !strings.Contains(token, "*") {
			t.Errorf("expected a masked token ending in abcd, got %q", token)
		}
	})

	t.Run("put merges over the stored config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAdminFixture(ctrl)

		stored := entities.DefaultPaymentConfig()
		stored.AccessToken = "APP_USR-stored-token"
		f.configs.EXPECT().PaymentConfig(gomock.Any()).Return(stored, nil)
		f.configs.EXPECT().SavePaymentConfig(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, cfg entities.PaymentConfig) (entities.PaymentConfig, error) {
				if cfg.AccessToken != "APP_USR-stored-token" {
					t.Errorf("expected the stored token kept, got %q", cfg.AccessToken)
				}
				if !cfg.EfiEnabled {
					t.Error("expected efi_enabled set from the payload")
				}
				if !cfg.MercadoPagoEnabled {
					t.Error("expected mercadopago_enabled untouched")
				}
				return cfg, nil
			})

		// Masked token echoed back plus one real change.
		w := putJSON(f.router, "/v1/admin/config/payment", `{"access_token":"****************oken","efi_enabled":true}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("put replaces a secret sent in clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAdminFixture(ctrl)

		stored := entities.DefaultPaymentConfig()
		stored.AccessToken = "APP_USR-old"
		f.configs.EXPECT().PaymentConfig(gomock.Any()).Return(stored, nil)
		f.configs.EXPECT().SavePaymentConfig(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, cfg entities.PaymentConfig) (entities.PaymentConfig, error) {
				if cfg.AccessToken != "APP_USR-new-token" {
					t.Errorf("expected the new token, got %q", cfg.AccessToken)
				}
				return cfg, nil
			})

		w := putJSON(f.router, "/v1/admin/config/payment", `{"access_token":"APP_USR-new-token"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAdminFixture(ctrl)

		w := putJSON(f.router, "/v1/admin/config/payment", "{")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminHandler_EfiConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get reports the certificate without exposing it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAdminFixture(ctrl)

		f.configs.EXPECT().EfiConfig(gomock.Any()).Return(entities.EfiConfig{
			ClientID:       "client-1",
			ClientSecret:   "super-secret-value",
			CertificatePEM: "-----BEGIN CERT-----",
			Sandbox:        true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/config/efi", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if body["certificate_set"] != true {
			t.Error("expected certificate_set true")
		}
		secret, _ := body["client_secret"].(string)
		if !strings.Contains(secret, "*") {
			t.Errorf("expected a masked secret, got %q", secret)
		}
	})

	t.Run("put keeps the stored secret when echoed masked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAdminFixture(ctrl)

		f.configs.EXPECT().EfiConfig(gomock.Any()).Return(entities.EfiConfig{
			ClientSecret: "real-secret",
			Sandbox:      true,
		}, nil)
		f.configs.EXPECT().SaveEfiConfig(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, cfg entities.EfiConfig) (entities.EfiConfig, error) {
				if cfg.ClientSecret != "real-secret" {
					t.Errorf("expected the stored secret kept, got %q", cfg.ClientSecret)
				}
				if cfg.PixKey != "key@example.com" {
					t.Errorf("expected the pix key updated, got %q", cfg.PixKey)
				}
				return cfg, nil
			})

		w := putJSON(f.router, "/v1/admin/config/efi", `{"client_secret":"*******cret","pix_key":"key@example.com"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_Credentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the report through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAdminFixture(ctrl)

		f.configs.EXPECT().ValidateCredentials(gomock.Any(), "TEST-token").Return(usecase.CredentialReport{
			Valid:  true,
			Mode:   "sandbox",
			Source: "local",
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/credentials/validate", bytes.NewBufferString(`{"access_token":"TEST-token"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var report usecase.CredentialReport
		if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if !report.Valid || report.Mode != "sandbox" {
			t.Errorf("unexpected report %+v", report)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAdminFixture(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/credentials/validate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminHandler_SimulateWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAdminFixture(ctrl)

	// Status defaults to approved when omitted.
	f.configs.EXPECT().SimulateWebhook(gomock.Any(), "pay-1", entities.OrderStatusApproved).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/webhook/simulate", bytes.NewBufferString(`{"payment_id":"pay-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if body["simulated"] != true || body["status"] != "approved" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestAdminHandler_GetLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAdminFixture(ctrl)

	f.events.Add(eventlog.LevelInfo, "config", "payment config updated")

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/logs", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var entries []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["message"] != "payment config updated" {
		t.Errorf("unexpected entry %+v", entries[0])
	}
}

func TestAdminHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newAdminFixture(ctrl)

	f.ledger.EXPECT().List(gomock.Any(), interfaces.OrderFilter{
		Status: entities.OrderStatusApproved,
		Plan:   entities.PlanBasic,
	}).Return([]entities.Order{
		{ID: "ord-1", Status: entities.OrderStatusApproved, Plan: entities.PlanBasic},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders?status=approved&plan=basic", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "ord-1" {
		t.Errorf("unexpected body %+v", body)
	}
}
