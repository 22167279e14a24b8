package request

// PaymentConfigRequest mirrors the stored payment configuration. Secret
// fields left empty on PUT keep their stored value, so the admin screen can
// round-trip masked reads without wiping credentials.
type PaymentConfigRequest struct {
	ActiveGateway       string `json:"active_gateway"`
	MercadoPagoEnabled  *bool  `json:"mercadopago_enabled"`
	EfiEnabled          *bool  `json:"efi_enabled"`
	Sandbox             *bool  `json:"sandbox"`
	AccessToken         string `json:"access_token"`
	PublicKey           string `json:"public_key"`
	ApplicationID       string `json:"application_id"`
	UserID              string `json:"user_id"`
	WebhookURL          string `json:"webhook_url"`
	Mode                string `json:"mode"`
	InstallmentsEnabled *bool  `json:"installments_enabled"`
	MaxInstallments     int    `json:"max_installments"`
	StatementDescriptor string `json:"statement_descriptor"`
	ExpirationMinutes   int    `json:"expiration_minutes"`
	AutoReturn          string `json:"auto_return"`
	BinaryMode          *bool  `json:"binary_mode"`
}

type EfiConfigRequest struct {
	ClientID       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
	CertificatePEM string `json:"certificate_pem"`
	PixKey         string `json:"pix_key"`
	Sandbox        *bool  `json:"sandbox"`
}

type CredentialsRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

type WebhookSimulateRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
	Status    string `json:"status"`
}
