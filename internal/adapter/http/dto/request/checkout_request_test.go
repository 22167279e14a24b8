package request

import "testing"

func TestCheckoutRequestResolvers(t *testing.T) {
	t.Run("document strips the mask", func(t *testing.T) {
		r := CheckoutRequest{Document: "529.982.247-25"}
		if got := r.ResolveDocument(); got != "52998224725" {
			t.Errorf("ResolveDocument = %q", got)
		}
	})

	t.Run("phone strips the mask", func(t *testing.T) {
		r := CheckoutRequest{Phone: "(11) 98765-4321"}
		if got := r.ResolvePhone(); got != "11987654321" {
			t.Errorf("ResolvePhone = %q", got)
		}
	})

	t.Run("plan defaults to basic", func(t *testing.T) {
		if got := (CheckoutRequest{}).ResolvePlan(); got != "basic" {
			t.Errorf("ResolvePlan = %q", got)
		}
		if got := (CheckoutRequest{Plan: " complete "}).ResolvePlan(); got != "complete" {
			t.Errorf("ResolvePlan = %q", got)
		}
	})

	t.Run("search type upper-cases and defaults to CPF", func(t *testing.T) {
		if got := (CheckoutRequest{}).ResolveSearchType(); got != "CPF" {
			t.Errorf("ResolveSearchType = %q", got)
		}
		if got := (CheckoutRequest{SearchType: "cnpj"}).ResolveSearchType(); got != "CNPJ" {
			t.Errorf("ResolveSearchType = %q", got)
		}
	})
}

func TestLeadRequestResolvePhone(t *testing.T) {
	r := LeadRequest{Phone: "+55 (11) 98765-4321"}
	if got := r.ResolvePhone(); got != "5511987654321" {
		t.Errorf("ResolvePhone = %q", got)
	}
}
