package entities

// GatewayName identifies which provider processed a charge.

type GatewayName string

const (
	GatewayMercadoPago GatewayName = "mercadopago"
	GatewayEfi         GatewayName = "efi"
)

// PaymentData is the gateway create-charge response normalized to a common
// shape. It is ephemeral: only ID (as Order.PaymentID) and Gateway survive
// into the ledger.
//
// Degraded marks a synthetic response fabricated at the adapter boundary when
// credentials were absent or the provider was unreachable. It is an explicit
// contract, not a hidden catch: callers always get a renderable payload, and
// operators can tell a real charge from a simulated one.

type PaymentData struct {
	ID           string      `json:"id"`
	QRCode       string      `json:"qr_code,omitempty"`
	QRCodeBase64 string      `json:"qr_code_base64,omitempty"`
	TicketURL    string      `json:"ticket_url,omitempty"`

	// Checkout Pro (hosted redirect) only.
	InitPoint        string `json:"init_point,omitempty"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`

	Status   string      `json:"status"`
	Gateway  GatewayName `json:"gateway"`
	Degraded bool        `json:"degraded"`
}

// HasRedirect reports whether the charge settles through a hosted checkout
// page instead of the in-app PIX widget.
func (p PaymentData) HasRedirect() bool {
	return p.InitPoint != "" || p.SandboxInitPoint != ""
}

// RedirectURL picks the hosted checkout URL matching the sandbox flag.
func (p PaymentData) RedirectURL(sandbox bool) string {
	if sandbox && p.SandboxInitPoint != "" {
		return p.SandboxInitPoint
	}
	return p.InitPoint
}
