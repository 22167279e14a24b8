package entities

import (
	"errors"
	"testing"
)

func TestResolveGateway(t *testing.T) {
	cases := []struct {
		name string
		cfg  PaymentConfig
		want GatewayName
		err  error
	}{
		{
			name: "only mercadopago enabled",
			cfg:  PaymentConfig{MercadoPagoEnabled: true, ActiveGateway: GatewayEfi},
			want: GatewayMercadoPago,
		},
		{
			name: "only efi enabled",
			cfg:  PaymentConfig{EfiEnabled: true, ActiveGateway: GatewayMercadoPago},
			want: GatewayEfi,
		},
		{
			name: "both enabled selector wins",
			cfg:  PaymentConfig{MercadoPagoEnabled: true, EfiEnabled: true, ActiveGateway: GatewayEfi},
			want: GatewayEfi,
		},
		{
			name: "both enabled default selector",
			cfg:  PaymentConfig{MercadoPagoEnabled: true, EfiEnabled: true},
			want: GatewayMercadoPago,
		},
		{
			name: "none enabled",
			cfg:  PaymentConfig{},
			err:  ErrNoActiveGateway,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cfg.ResolveGateway()
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestPaymentConfigSanitized(t *testing.T) {
	t.Run("restores invalid fields", func(t *testing.T) {
		cfg := PaymentConfig{
			ActiveGateway:     "stripe",
			Mode:              "hosted",
			AutoReturn:        "never",
			MaxInstallments:   99,
			ExpirationMinutes: -5,
		}.Sanitized()

		def := DefaultPaymentConfig()
		if cfg.ActiveGateway != def.ActiveGateway {
			t.Fatalf("expected default gateway, got %s", cfg.ActiveGateway)
		}
		if cfg.Mode != def.Mode {
			t.Fatalf("expected default mode, got %s", cfg.Mode)
		}
		if cfg.AutoReturn != def.AutoReturn {
			t.Fatalf("expected default auto return, got %s", cfg.AutoReturn)
		}
		if cfg.MaxInstallments != def.MaxInstallments {
			t.Fatalf("expected default installments, got %d", cfg.MaxInstallments)
		}
		if cfg.ExpirationMinutes != def.ExpirationMinutes {
			t.Fatalf("expected default expiration, got %d", cfg.ExpirationMinutes)
		}
		if cfg.StatementDescriptor != def.StatementDescriptor {
			t.Fatalf("expected default descriptor, got %q", cfg.StatementDescriptor)
		}
	})

	t.Run("keeps valid fields", func(t *testing.T) {
		in := PaymentConfig{
			ActiveGateway:       GatewayEfi,
			Mode:                ModePro,
			AutoReturn:          AutoReturnAll,
			MaxInstallments:     6,
			ExpirationMinutes:   15,
			StatementDescriptor: "LOJA X",
			AccessToken:         "APP_USR-abc",
		}
		out := in.Sanitized()
		if out != in {
			t.Fatalf("expected config unchanged, got %+v", out)
		}
	})
}

func TestPaymentDataRedirect(t *testing.T) {
	pd := PaymentData{InitPoint: "https://prod", SandboxInitPoint: "https://sandbox"}
	if !pd.HasRedirect() {
		t.Fatal("expected redirect")
	}
	if got := pd.RedirectURL(true); got != "https://sandbox" {
		t.Fatalf("expected sandbox url, got %s", got)
	}
	if got := pd.RedirectURL(false); got != "https://prod" {
		t.Fatalf("expected prod url, got %s", got)
	}
	if (PaymentData{QRCode: "abc"}).HasRedirect() {
		t.Fatal("pix payment must not redirect")
	}
}
