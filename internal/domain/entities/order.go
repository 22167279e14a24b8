package entities

import "time"

// OrderStatus represents the settlement outcome of a checkout attempt.
//
// Transitions are forward-only: pending may become approved or rejected,
// terminal statuses never move again.

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected
}

// CanTransitionTo enforces the forward-only rule.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	return s == OrderStatusPending && next.IsTerminal()
}

// Plan is the closed set of purchasable report tiers.

type Plan string

const (
	PlanBasic    Plan = "basic"
	PlanComplete Plan = "complete"
)

func (p Plan) Valid() bool {
	return p == PlanBasic || p == PlanComplete
}

// SearchType tracks which lookup funnel originated the order. Contextual
// metadata only; the payment logic never branches on it.

type SearchType string

const (
	SearchTypeCPF   SearchType = "CPF"
	SearchTypeCNPJ  SearchType = "CNPJ"
	SearchTypePlate SearchType = "PLACA"
	SearchTypePhone SearchType = "PHONE"
)

// PlanExtra is an optional line item selected on top of the base plan price.

type PlanExtra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Order is the ledger record for one checkout attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id
//
// Buyer identity fields are a snapshot at creation time and are never mutated.
// PaymentID is the correlation key for settlement updates; it is the only
// handle through which Status may change after creation.

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	CustomerCpf  string      `json:"customer_cpf"`
	Email        string      `json:"email,omitempty"`
	Plan         Plan        `json:"plan"`
	Amount       float64     `json:"amount"`
	Status       OrderStatus `json:"status"`
	Date         time.Time   `json:"date"`

	PaymentID string      `json:"payment_id,omitempty"`
	Gateway   GatewayName `json:"gateway,omitempty"`

	SearchType     SearchType  `json:"search_type,omitempty"`
	SelectedExtras []PlanExtra `json:"selected_extras,omitempty"`
}
