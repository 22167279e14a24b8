package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/handlers/mocks"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const submitBody = `{"name":"Maria Souza","document":"529.982.247-25","email":"maria@example.com","plan":"basic","search_type":"cpf"}`

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/checkout", h.SubmitCheckout)
	r.GET("/v1/checkout/:session_id", h.GetSession)
	r.DELETE("/v1/checkout/:session_id", h.CloseSession)
	return r
}

func TestCheckoutHandler_SubmitCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		ledger := mocks.NewMockIOrderLedgerUseCase(ctrl)
		h := NewCheckoutHandler(uc, ledger, usecase.NewCheckoutSessionStore())

		r := newCheckoutRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("masked document is stripped before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		ledger := mocks.NewMockIOrderLedgerUseCase(ctrl)
		sessions := usecase.NewCheckoutSessionStore()
		h := NewCheckoutHandler(uc, ledger, sessions)

		session := sessions.Create()
		uc.EXPECT().ExecutePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, in usecase.CheckoutInput) (usecase.CheckoutResult, error) {
				if in.Document != "52998224725" {
					t.Errorf("expected digits-only document, got %q", in.Document)
				}
				if in.Plan != entities.PlanBasic {
					t.Errorf("expected basic plan, got %q", in.Plan)
				}
				if in.SearchType != entities.SearchTypeCPF {
					t.Errorf("expected CPF search type, got %q", in.SearchType)
				}
				return usecase.CheckoutResult{
					Session: session,
					Step:    usecase.StepPayment,
					Order:   entities.Order{ID: "ord-1", PaymentID: "pay-1"},
					Payment: entities.PaymentData{ID: "pay-1", Status: "pending", Gateway: entities.GatewayMercadoPago},
				}, nil
			})

		r := newCheckoutRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if body["session_id"] != session.ID {
			t.Errorf("expected session id %q, got %v", session.ID, body["session_id"])
		}
		if body["step"] != "payment" {
			t.Errorf("expected payment step, got %v", body["step"])
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			wantCode int
		}{
			{"validation", &usecase.ValidationError{Field: "document", Message: "CPF inválido"}, http.StatusBadRequest},
			{"no active gateway", entities.ErrNoActiveGateway, http.StatusConflict},
			{"charge in flight", usecase.ErrChargeInFlight, http.StatusConflict},
			{"session not found", usecase.ErrSessionNotFound, http.StatusNotFound},
			{"internal", errors.New("boom"), http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICheckoutUseCase(ctrl)
				ledger := mocks.NewMockIOrderLedgerUseCase(ctrl)
				h := NewCheckoutHandler(uc, ledger, usecase.NewCheckoutSessionStore())

				uc.EXPECT().ExecutePayment(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, tt.err)

				r := newCheckoutRouter(h)

				req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(submitBody))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tt.wantCode {
					t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
				}
			})
		}
	})
}

func TestCheckoutHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		ledger := mocks.NewMockIOrderLedgerUseCase(ctrl)
		h := NewCheckoutHandler(uc, ledger, usecase.NewCheckoutSessionStore())

		r := newCheckoutRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("session with a pending attempt includes payment and order status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		ledger := mocks.NewMockIOrderLedgerUseCase(ctrl)
		sessions := usecase.NewCheckoutSessionStore()
		h := NewCheckoutHandler(uc, ledger, sessions)

		session := sessions.Create()
		session.Supersede("pay-1", entities.PaymentData{
			ID:      "pay-1",
			QRCode:  "00020126pixpayload",
			Status:  "pending",
			Gateway: entities.GatewayMercadoPago,
		}, usecase.StepPayment, nil)

		ledger.EXPECT().GetByPaymentID(gomock.Any(), "pay-1").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusApproved}, nil)

		r := newCheckoutRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/"+session.ID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if body["step"] != "payment" {
			t.Errorf("expected payment step, got %v", body["step"])
		}
		if body["order_status"] != "approved" {
			t.Errorf("expected approved order status, got %v", body["order_status"])
		}
		payment, _ := body["payment"].(map[string]any)
		if payment["id"] != "pay-1" {
			t.Errorf("expected payment pay-1, got %v", payment["id"])
		}
	})

	t.Run("fresh session has no payment block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		ledger := mocks.NewMockIOrderLedgerUseCase(ctrl)
		sessions := usecase.NewCheckoutSessionStore()
		h := NewCheckoutHandler(uc, ledger, sessions)

		session := sessions.Create()

		r := newCheckoutRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/"+session.ID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if _, ok := body["payment"]; ok {
			t.Error("expected no payment block for a fresh session")
		}
	})
}

func TestCheckoutHandler_CloseSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	ledger := mocks.NewMockIOrderLedgerUseCase(ctrl)
	sessions := usecase.NewCheckoutSessionStore()
	h := NewCheckoutHandler(uc, ledger, sessions)

	session := sessions.Create()

	r := newCheckoutRouter(h)

	req := httptest.NewRequest(http.MethodDelete, "/v1/checkout/"+session.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if _, err := sessions.Get(session.ID); err == nil {
		t.Error("expected the session to be removed")
	}
}
