package response

import (
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase"
)

type PaymentResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Gateway      string `json:"gateway"`
	QRCode       string `json:"qr_code,omitempty"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
	Degraded     bool   `json:"degraded"`
}

func FromPaymentData(p entities.PaymentData) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		Status:       p.Status,
		Gateway:      string(p.Gateway),
		QRCode:       p.QRCode,
		QRCodeBase64: p.QRCodeBase64,
		TicketURL:    p.TicketURL,
		Degraded:     p.Degraded,
	}
}

type CheckoutResponse struct {
	SessionID   string          `json:"session_id"`
	Step        string          `json:"step"`
	Order       OrderResponse   `json:"order"`
	Payment     PaymentResponse `json:"payment"`
	RedirectURL string          `json:"redirect_url,omitempty"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		SessionID:   r.Session.ID,
		Step:        string(r.Step),
		Order:       FromOrder(r.Order),
		Payment:     FromPaymentData(r.Payment),
		RedirectURL: r.RedirectURL,
	}
}

// SessionResponse is the polling projection for an open checkout session.
type SessionResponse struct {
	SessionID   string           `json:"session_id"`
	Step        string           `json:"step"`
	Payment     *PaymentResponse `json:"payment,omitempty"`
	OrderStatus string           `json:"order_status,omitempty"`
}
