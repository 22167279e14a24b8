package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/validation"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
)

var (
	ErrInvalidLeadName  = errors.New("lead name is required")
	ErrInvalidLeadEmail = errors.New("lead email is invalid")
	ErrInvalidLeadPhone = errors.New("lead phone is invalid")
)

type ILeadUseCase interface {
	Capture(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
}

// LeadUseCase records pre-checkout contact captures. A lead is best effort
// marketing data; capture failures never block the funnel itself.

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Capture(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	lead.Name = strings.TrimSpace(lead.Name)
	if lead.Name == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}
	if lead.Email != "" && !validation.IsValidEmail(lead.Email) {
		return entities.Lead{}, ErrInvalidLeadEmail
	}
	if lead.Phone != "" && !validation.IsValidPhone(lead.Phone) {
		return entities.Lead{}, ErrInvalidLeadPhone
	}

	lead.ID = uuid.New().String()
	lead.Date = time.Now().UTC()
	if lead.Origin == "" {
		lead.Origin = "checkout"
	}

	if err := u.repo.Create(ctx, lead); err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] captured lead_id=%s origin=%s", lead.ID, lead.Origin)
	return lead, nil
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}
