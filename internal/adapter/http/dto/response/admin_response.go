package response

import (
	"strings"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
)

// PaymentConfigResponse is the admin read projection. Secrets come back
// masked; the admin screen sends empty secret fields to keep stored values.
type PaymentConfigResponse struct {
	ActiveGateway       string `json:"active_gateway"`
	MercadoPagoEnabled  bool   `json:"mercadopago_enabled"`
	EfiEnabled          bool   `json:"efi_enabled"`
	Sandbox             bool   `json:"sandbox"`
	AccessToken         string `json:"access_token"`
	PublicKey           string `json:"public_key"`
	ApplicationID       string `json:"application_id"`
	UserID              string `json:"user_id"`
	WebhookURL          string `json:"webhook_url"`
	Mode                string `json:"mode"`
	InstallmentsEnabled bool   `json:"installments_enabled"`
	MaxInstallments     int    `json:"max_installments"`
	StatementDescriptor string `json:"statement_descriptor"`
	ExpirationMinutes   int    `json:"expiration_minutes"`
	AutoReturn          string `json:"auto_return"`
	BinaryMode          bool   `json:"binary_mode"`
}

func FromPaymentConfig(c entities.PaymentConfig) PaymentConfigResponse {
	return PaymentConfigResponse{
		ActiveGateway:       string(c.ActiveGateway),
		MercadoPagoEnabled:  c.MercadoPagoEnabled,
		EfiEnabled:          c.EfiEnabled,
		Sandbox:             c.Sandbox,
		AccessToken:         MaskSecret(c.AccessToken),
		PublicKey:           c.PublicKey,
		ApplicationID:       c.ApplicationID,
		UserID:              c.UserID,
		WebhookURL:          c.WebhookURL,
		Mode:                string(c.Mode),
		InstallmentsEnabled: c.InstallmentsEnabled,
		MaxInstallments:     c.MaxInstallments,
		StatementDescriptor: c.StatementDescriptor,
		ExpirationMinutes:   c.ExpirationMinutes,
		AutoReturn:          string(c.AutoReturn),
		BinaryMode:          c.BinaryMode,
	}
}

type EfiConfigResponse struct {
	ClientID       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
	CertificateSet bool   `json:"certificate_set"`
	PixKey         string `json:"pix_key"`
	Sandbox        bool   `json:"sandbox"`
}

func FromEfiConfig(c entities.EfiConfig) EfiConfigResponse {
	return EfiConfigResponse{
		ClientID:       c.ClientID,
		ClientSecret:   MaskSecret(c.ClientSecret),
		CertificateSet: c.CertificatePEM != "",
		PixKey:         c.PixKey,
		Sandbox:        c.Sandbox,
	}
}

// MaskSecret keeps the last four characters visible. Short values are fully
// masked.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
