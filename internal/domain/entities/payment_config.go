package entities

import "errors"

var ErrNoActiveGateway = errors.New("no active payment method")

// CheckoutMode selects how the Mercado Pago adapter charges.

type CheckoutMode string

const (
	// ModeTransparent creates the charge through the payments API and renders
	// the PIX widget in-app.
	ModeTransparent CheckoutMode = "transparent"
	// ModePro creates a checkout preference and redirects the buyer to the
	// provider's hosted page.
	ModePro CheckoutMode = "pro"
)

// AutoReturnPolicy controls when Checkout Pro sends the buyer back.

type AutoReturnPolicy string

const (
	AutoReturnApproved AutoReturnPolicy = "approved"
	AutoReturnAll      AutoReturnPolicy = "all"
)

// PaymentConfig is the operator-editable Mercado Pago credential bundle plus
// the cross-provider gateway selector.

type PaymentConfig struct {
	ActiveGateway      GatewayName `json:"active_gateway"`
	MercadoPagoEnabled bool        `json:"mercadopago_enabled"`
	EfiEnabled         bool        `json:"efi_enabled"`
	Sandbox            bool        `json:"sandbox"`

	AccessToken   string `json:"access_token"`
	PublicKey     string `json:"public_key"`
	ApplicationID string `json:"application_id"`
	UserID        string `json:"user_id"`
	WebhookURL    string `json:"webhook_url"`

	Mode                CheckoutMode     `json:"mode"`
	InstallmentsEnabled bool             `json:"installments_enabled"`
	MaxInstallments     int              `json:"max_installments"`
	StatementDescriptor string           `json:"statement_descriptor"`
	ExpirationMinutes   int              `json:"expiration_minutes"`
	AutoReturn          AutoReturnPolicy `json:"auto_return"`
	BinaryMode          bool             `json:"binary_mode"`
}

// EfiConfig is the Efí (Provider B) credential bundle. CertificatePEM holds
// the certificate content as a string; the adapter flattens its line breaks
// before putting it in a header.

type EfiConfig struct {
	ClientID       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
	CertificatePEM string `json:"certificate_pem"`
	PixKey         string `json:"pix_key"`
	Sandbox        bool   `json:"sandbox"`
}

// ResolveGateway applies the enable/selector rule: a single enabled provider
// wins regardless of the selector, both enabled defers to ActiveGateway, and
// neither enabled is a configuration error the orchestrator must fail fast on.
func (c PaymentConfig) ResolveGateway() (GatewayName, error) {
	switch {
	case c.MercadoPagoEnabled && !c.EfiEnabled:
		return GatewayMercadoPago, nil
	case !c.MercadoPagoEnabled && c.EfiEnabled:
		return GatewayEfi, nil
	case c.MercadoPagoEnabled && c.EfiEnabled:
		if c.ActiveGateway == GatewayEfi {
			return GatewayEfi, nil
		}
		return GatewayMercadoPago, nil
	default:
		return "", ErrNoActiveGateway
	}
}

// DefaultPaymentConfig mirrors the shipped defaults: Mercado Pago enabled in
// sandbox, transparent mode, 30 minute PIX expiration.
func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		ActiveGateway:       GatewayMercadoPago,
		MercadoPagoEnabled:  true,
		EfiEnabled:          false,
		Sandbox:             true,
		Mode:                ModeTransparent,
		InstallmentsEnabled: true,
		MaxInstallments:     12,
		StatementDescriptor: "CONSULTA NAC",
		ExpirationMinutes:   30,
		AutoReturn:          AutoReturnApproved,
		BinaryMode:          false,
	}
}

func DefaultEfiConfig() EfiConfig {
	return EfiConfig{Sandbox: true}
}

// Sanitized restores defaults for fields a stale or partial stored config left
// unusable, so old persisted snapshots never break charge creation.
func (c PaymentConfig) Sanitized() PaymentConfig {
	def := DefaultPaymentConfig()
	if c.ActiveGateway != GatewayMercadoPago && c.ActiveGateway != GatewayEfi {
		c.ActiveGateway = def.ActiveGateway
	}
	if c.Mode != ModeTransparent && c.Mode != ModePro {
		c.Mode = def.Mode
	}
	if c.AutoReturn != AutoReturnApproved && c.AutoReturn != AutoReturnAll {
		c.AutoReturn = def.AutoReturn
	}
	if c.MaxInstallments < 1 || c.MaxInstallments > 12 {
		c.MaxInstallments = def.MaxInstallments
	}
	if c.ExpirationMinutes <= 0 {
		c.ExpirationMinutes = def.ExpirationMinutes
	}
	if c.StatementDescriptor == "" {
		c.StatementDescriptor = def.StatementDescriptor
	}
	return c
}
