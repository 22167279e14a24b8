package interfaces

import (
	"context"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
)

// OrderFilter narrows the admin order projection. Zero values match all.

type OrderFilter struct {
	Status entities.OrderStatus
	Plan   entities.Plan
}

// IOrderRepository abstracts DynamoDB persistence for the order ledger.
// GetByID and GetByPaymentID return a zero Order when nothing matches.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error
	List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
}
