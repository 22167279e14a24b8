package interfaces

import (
	"context"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
)

// CardDetails carries raw card input for the tokenization sub-mode. It is
// forwarded to the provider and never persisted.

type CardDetails struct {
	Number               string
	HolderName           string
	ExpirationMonth      string
	ExpirationYear       string
	SecurityCode         string
	IdentificationNumber string
	PaymentMethodID      string
	Installments         int
}

// IPaymentGateway is the uniform contract both providers implement.
//
// CreateCharge must always hand back a structurally valid PaymentData: when
// credentials are missing or the provider is unreachable it returns a
// synthetic, Degraded-flagged response instead of an error. CheckStatus never
// returns an error for transient conditions; anything short of a confirmed
// terminal status reads as pending.

type IPaymentGateway interface {
	CreateCharge(ctx context.Context, order entities.Order, card *CardDetails) (entities.PaymentData, error)
	CheckStatus(ctx context.Context, paymentID string) (entities.OrderStatus, error)
	Name() entities.GatewayName
}
