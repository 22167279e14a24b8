package interfaces

import (
	"context"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
)

// IConfigRepository persists the operator-editable credential bundles.
//
// Load must degrade to defaults: an absent or unreadable stored snapshot is a
// normal first-run condition, not an error.

type IConfigRepository interface {
	LoadPaymentConfig(ctx context.Context) (entities.PaymentConfig, error)
	SavePaymentConfig(ctx context.Context, c entities.PaymentConfig) error
	LoadEfiConfig(ctx context.Context) (entities.EfiConfig, error)
	SaveEfiConfig(ctx context.Context, c entities.EfiConfig) error
	LoadPlanCatalog(ctx context.Context) (entities.PlanCatalog, error)
	SavePlanCatalog(ctx context.Context, c entities.PlanCatalog) error
}
