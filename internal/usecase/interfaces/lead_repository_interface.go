package interfaces

import (
	"context"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for captured leads.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) error
	List(ctx context.Context) ([]entities.Lead, error)
}
