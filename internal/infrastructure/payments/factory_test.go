package payments

import (
	"testing"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
)

func TestGatewayFactory(t *testing.T) {
	factory := NewGatewayFactory("https://checkout.example", eventlog.NewRing(0))
	paymentCfg := entities.DefaultPaymentConfig()
	efiCfg := entities.DefaultEfiConfig()

	t.Run("mercadopago", func(t *testing.T) {
		g := factory.Gateway(entities.GatewayMercadoPago, paymentCfg, efiCfg)
		if g.Name() != entities.GatewayMercadoPago {
			t.Errorf("expected mercadopago, got %q", g.Name())
		}
	})

	t.Run("efi", func(t *testing.T) {
		g := factory.Gateway(entities.GatewayEfi, paymentCfg, efiCfg)
		if g.Name() != entities.GatewayEfi {
			t.Errorf("expected efi, got %q", g.Name())
		}
	})
}
