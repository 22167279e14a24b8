package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/dto/request"
	response "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/dto/response"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler handles pre-checkout lead capture.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Capture(c.Request.Context(), entities.Lead{
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.ResolvePhone(),
		Origin:     payload.Origin,
		DeviceInfo: payload.DeviceInfo,
		SearchType: entities.SearchType(payload.SearchType),
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[lead][handler] created lead_id=%s", lead.ID)

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadName),
		errors.Is(err, usecase.ErrInvalidLeadEmail),
		errors.Is(err, usecase.ErrInvalidLeadPhone):
		return pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
