package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/user"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
)

// CredentialReport is the outcome of a MercadoPago credential check.
// Source tells the caller whether the verdict came from the provider API or
// from the local prefix fallback used when the API is unreachable.

type CredentialReport struct {
	Valid  bool   `json:"valid"`
	Mode   string `json:"mode"`
	Source string `json:"source"`
	Detail string `json:"detail,omitempty"`
}

type IConfigUseCase interface {
	PaymentConfig(ctx context.Context) (entities.PaymentConfig, error)
	SavePaymentConfig(ctx context.Context, cfg entities.PaymentConfig) (entities.PaymentConfig, error)
	EfiConfig(ctx context.Context) (entities.EfiConfig, error)
	SaveEfiConfig(ctx context.Context, cfg entities.EfiConfig) (entities.EfiConfig, error)
	PlanCatalog(ctx context.Context) (entities.PlanCatalog, error)
	SavePlanCatalog(ctx context.Context, catalog entities.PlanCatalog) error
	ValidateCredentials(ctx context.Context, accessToken string) CredentialReport
	SimulateWebhook(ctx context.Context, paymentID string, status entities.OrderStatus) error
}

// ConfigUseCase serves the admin configuration surface. Reads always resolve
// to something usable: a missing or corrupt stored record falls back to the
// defaults instead of failing the checkout.

type ConfigUseCase struct {
	repo   interfaces.IConfigRepository
	events *eventlog.Ring
	client *http.Client
}

var _ IConfigUseCase = (*ConfigUseCase)(nil)

func NewConfigUseCase(repo interfaces.IConfigRepository, events *eventlog.Ring) *ConfigUseCase {
	return &ConfigUseCase{
		repo:   repo,
		events: events,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (u *ConfigUseCase) PaymentConfig(ctx context.Context) (entities.PaymentConfig, error) {
	cfg, err := u.repo.LoadPaymentConfig(ctx)
	if err != nil {
		log.Printf("[config][usecase] load payment config failed, using defaults err=%v", err)
		return entities.DefaultPaymentConfig(), nil
	}
	return cfg.Sanitized(), nil
}

func (u *ConfigUseCase) SavePaymentConfig(ctx context.Context, cfg entities.PaymentConfig) (entities.PaymentConfig, error) {
	cfg = cfg.Sanitized()
	if err := u.repo.SavePaymentConfig(ctx, cfg); err != nil {
		return entities.PaymentConfig{}, err
	}
	u.events.Add(eventlog.LevelInfo, "config", "payment config updated",
		fmt.Sprintf("gateway=%s mode=%s sandbox=%t", cfg.ActiveGateway, cfg.Mode, cfg.Sandbox))
	return cfg, nil
}

func (u *ConfigUseCase) EfiConfig(ctx context.Context) (entities.EfiConfig, error) {
	cfg, err := u.repo.LoadEfiConfig(ctx)
	if err != nil {
		log.Printf("[config][usecase] load efi config failed, using defaults err=%v", err)
		return entities.DefaultEfiConfig(), nil
	}
	return cfg, nil
}

func (u *ConfigUseCase) SaveEfiConfig(ctx context.Context, cfg entities.EfiConfig) (entities.EfiConfig, error) {
	if err := u.repo.SaveEfiConfig(ctx, cfg); err != nil {
		return entities.EfiConfig{}, err
	}
	u.events.Add(eventlog.LevelInfo, "config", "efi config updated",
		fmt.Sprintf("sandbox=%t pix_key_set=%t", cfg.Sandbox, cfg.PixKey != ""))
	return cfg, nil
}

func (u *ConfigUseCase) PlanCatalog(ctx context.Context) (entities.PlanCatalog, error) {
	catalog, err := u.repo.LoadPlanCatalog(ctx)
	if err != nil {
		log.Printf("[config][usecase] load plan catalog failed, using defaults err=%v", err)
		return entities.DefaultPlanCatalog(), nil
	}
	return catalog, nil
}

func (u *ConfigUseCase) SavePlanCatalog(ctx context.Context, catalog entities.PlanCatalog) error {
	if err := u.repo.SavePlanCatalog(ctx, catalog); err != nil {
		return err
	}
	u.events.Add(eventlog.LevelInfo, "config", "plan catalog updated", "")
	return nil
}

// ValidateCredentials checks a MercadoPago access token against the account
// endpoint. When the provider is unreachable the token format decides: live
// and test prefixes pass locally so an offline environment stays usable.
func (u *ConfigUseCase) ValidateCredentials(ctx context.Context, accessToken string) CredentialReport {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return CredentialReport{Valid: false, Mode: "unknown", Source: "local", Detail: "empty token"}
	}

	sdkCfg, err := config.New(accessToken)
	if err == nil {
		if _, err = user.NewClient(sdkCfg).Get(ctx); err == nil {
			u.events.Add(eventlog.LevelSuccess, "config", "credentials validated via provider", "")
			return CredentialReport{Valid: true, Mode: tokenMode(accessToken), Source: "api"}
		}
	}

	report := CredentialReport{Mode: tokenMode(accessToken), Source: "local"}
	report.Valid = report.Mode != "unknown"
	if report.Valid {
		report.Detail = "provider unreachable, token accepted by prefix"
		u.events.Add(eventlog.LevelWarning, "config", "credential check fell back to prefix match",
			fmt.Sprintf("mode=%s", report.Mode))
	} else {
		report.Detail = "provider rejected token"
		u.events.Add(eventlog.LevelError, "config", "credential check failed", "")
	}
	return report
}

// SimulateWebhook fabricates a provider IPN notification for the given
// payment and delivers it to the configured webhook URL when one is set.
// Delivery is fire and forget; the simulation is considered done once logged.
func (u *ConfigUseCase) SimulateWebhook(ctx context.Context, paymentID string, status entities.OrderStatus) error {
	if paymentID == "" {
		return fmt.Errorf("payment id is required")
	}

	payload := map[string]any{
		"action":       "payment.updated",
		"api_version":  "v1",
		"type":         "payment",
		"date_created": time.Now().UTC().Format(time.RFC3339),
		"data": map[string]any{
			"id":     paymentID,
			"status": string(status),
		},
		"live_mode": false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	u.events.Add(eventlog.LevelInfo, "webhook", "simulated notification",
		fmt.Sprintf("payment_id=%s status=%s", paymentID, status))

	cfg, err := u.PaymentConfig(ctx)
	if err != nil || cfg.WebhookURL == "" {
		return nil
	}

	go func(url string, body []byte) {
		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := u.client.Do(req)
		if err != nil {
			log.Printf("[webhook][usecase] delivery failed url=%s err=%v", url, err)
			return
		}
		defer resp.Body.Close()
		log.Printf("[webhook][usecase] delivered url=%s status=%d", url, resp.StatusCode)
	}(cfg.WebhookURL, body)

	return nil
}

func tokenMode(token string) string {
	switch {
	case strings.HasPrefix(token, "APP_USR-"):
		return "production"
	case strings.HasPrefix(token, "TEST-"):
		return "sandbox"
	default:
		return "unknown"
	}
}
