package response

import (
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
)

type LeadResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Date       time.Time `json:"date"`
	Origin     string    `json:"origin,omitempty"`
	DeviceInfo string    `json:"device_info,omitempty"`
	SearchType string    `json:"search_type,omitempty"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:         l.ID,
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		Date:       l.Date,
		Origin:     l.Origin,
		DeviceInfo: l.DeviceInfo,
		SearchType: string(l.SearchType),
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}
