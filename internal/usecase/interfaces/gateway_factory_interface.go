package interfaces

import "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"

// IGatewayFactory builds the adapter for the gateway resolved for one
// checkout attempt. Adapters are bound to the configuration snapshot they
// were created with and are never re-resolved mid-flight.

type IGatewayFactory interface {
	Gateway(name entities.GatewayName, payment entities.PaymentConfig, efi entities.EfiConfig) IPaymentGateway
}
