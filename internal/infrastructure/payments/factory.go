package payments

import (
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
)

// GatewayFactory builds gateway adapters bound to a configuration snapshot.
// Each checkout attempt gets fresh adapters so a config change mid-flight
// never leaks into an attempt that already resolved its gateway.

type GatewayFactory struct {
	origin string
	events *eventlog.Ring
}

var _ interfaces.IGatewayFactory = (*GatewayFactory)(nil)

func NewGatewayFactory(origin string, events *eventlog.Ring) *GatewayFactory {
	return &GatewayFactory{origin: origin, events: events}
}

func (f *GatewayFactory) Gateway(name entities.GatewayName, payment entities.PaymentConfig, efi entities.EfiConfig) interfaces.IPaymentGateway {
	if name == entities.GatewayEfi {
		return NewEfiGateway(efi, payment, f.events)
	}
	return NewMercadoPagoGateway(payment, f.origin, f.events)
}
