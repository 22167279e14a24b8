package request

import "strings"

type CardRequest struct {
	Number               string `json:"number" binding:"required"`
	HolderName           string `json:"holder_name" binding:"required"`
	ExpirationMonth      string `json:"expiration_month" binding:"required"`
	ExpirationYear       string `json:"expiration_year" binding:"required"`
	SecurityCode         string `json:"security_code" binding:"required"`
	IdentificationNumber string `json:"identification_number"`
	PaymentMethodID      string `json:"payment_method_id"`
	Installments         int    `json:"installments"`
}

// CheckoutRequest is the buyer-facing submit payload. Document and phone may
// arrive masked from the frontend; Resolve helpers strip everything but
// digits before the domain sees the values.
type CheckoutRequest struct {
	SessionID      string       `json:"session_id"`
	Name           string       `json:"name" binding:"required"`
	Document       string       `json:"document" binding:"required"`
	Phone          string       `json:"phone"`
	Email          string       `json:"email"`
	Plan           string       `json:"plan"`
	SearchType     string       `json:"search_type"`
	SelectedExtras []string     `json:"selected_extras"`
	Card           *CardRequest `json:"card"`
}

func (r CheckoutRequest) ResolveDocument() string {
	return onlyDigits(r.Document)
}

func (r CheckoutRequest) ResolvePhone() string {
	return onlyDigits(r.Phone)
}

func (r CheckoutRequest) ResolvePlan() string {
	if v := strings.TrimSpace(r.Plan); v != "" {
		return v
	}
	return "basic"
}

func (r CheckoutRequest) ResolveSearchType() string {
	if v := strings.ToUpper(strings.TrimSpace(r.SearchType)); v != "" {
		return v
	}
	return "CPF"
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
