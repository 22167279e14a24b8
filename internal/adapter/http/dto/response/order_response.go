package response

import (
	"time"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
)

type OrderExtraResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderResponse struct {
	ID             string               `json:"id"`
	CustomerName   string               `json:"customer_name"`
	CustomerCpf    string               `json:"customer_cpf"`
	Email          string               `json:"email,omitempty"`
	Plan           string               `json:"plan"`
	Amount         float64              `json:"amount"`
	Status         string               `json:"status"`
	Date           time.Time            `json:"date"`
	PaymentID      string               `json:"payment_id,omitempty"`
	Gateway        string               `json:"gateway,omitempty"`
	SearchType     string               `json:"search_type,omitempty"`
	SelectedExtras []OrderExtraResponse `json:"selected_extras,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	extras := make([]OrderExtraResponse, 0, len(o.SelectedExtras))
	for _, e := range o.SelectedExtras {
		extras = append(extras, OrderExtraResponse{Name: e.Name, Price: e.Price})
	}
	return OrderResponse{
		ID:             o.ID,
		CustomerName:   o.CustomerName,
		CustomerCpf:    o.CustomerCpf,
		Email:          o.Email,
		Plan:           string(o.Plan),
		Amount:         o.Amount,
		Status:         string(o.Status),
		Date:           o.Date,
		PaymentID:      o.PaymentID,
		Gateway:        string(o.Gateway),
		SearchType:     string(o.SearchType),
		SelectedExtras: extras,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
