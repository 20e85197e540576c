package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"fulfillment_service/internal/adapter/http/handlers/mocks"
	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase"
)

func newMethodsRouter(h *PaymentMethodHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/payment-methods")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/load", h.Load)
	g.POST("/:id/transfer", h.Transfer)
	g.GET("/:id/transactions", h.Transactions)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentMethodHandler_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentMethodHandler(mocks.NewMockIPaymentMethodUseCase(ctrl), nil)

		w := doJSON(newMethodsRouter(h), http.MethodPost, "/v1/payment-methods", `{"bank":"X"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), usecase.PaymentMethodInput{Name: "Zelle"}).Return(entities.PaymentMethod{}, entities.ErrDuplicateMethodName)

		w := doJSON(newMethodsRouter(h), http.MethodPost, "/v1/payment-methods", `{"name":"Zelle"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["code"] != "PAYMENT_METHOD_NAME_TAKEN" || body["kind"] != "CONFLICT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentMethod{ID: "m-1", Name: "Zelle", Balance: decimal.Zero}, nil)

		w := doJSON(newMethodsRouter(h), http.MethodPost, "/v1/payment-methods", `{"name":"Zelle","currency":"USD"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPaymentMethodHandler_ReadUpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
	h := NewPaymentMethodHandler(uc, nil)
	r := newMethodsRouter(h)

	uc.EXPECT().List(gomock.Any()).Return([]entities.PaymentMethod{{ID: "m-1", Name: "Zelle"}}, nil)
	uc.EXPECT().Get(gomock.Any(), "m-2").Return(entities.PaymentMethod{}, usecase.ErrPaymentMethodNotFound)
	uc.EXPECT().Update(gomock.Any(), "m-1", usecase.PaymentMethodInput{Name: "Zelle US"}).Return(entities.PaymentMethod{ID: "m-1", Name: "Zelle US"}, nil)
	uc.EXPECT().Delete(gomock.Any(), "m-1").Return(nil)

	if w := doJSON(r, http.MethodGet, "/v1/payment-methods", ""); w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/payment-methods/m-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("get: expected 404, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPut, "/v1/payment-methods/m-1", `{"name":"Zelle US"}`); w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/payment-methods/m-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
}

func TestPaymentMethodHandler_Transactions(t *testing.T) {
	t.Run("transfer over balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc, nil)

		uc.EXPECT().Transfer(gomock.Any(), "m-1", gomock.Any()).Return(entities.PaymentMethod{}, entities.ErrInsufficientBalance)

		w := doJSON(newMethodsRouter(h), http.MethodPost, "/v1/payment-methods/m-1/transfer", `{"amount":"500"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc, nil)

		uc.EXPECT().Load(gomock.Any(), "m-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.MethodTransactionInput) (entities.PaymentMethod, error) {
				if !in.Amount.Equal(decimal.NewFromInt(25)) || in.Concept != "cash in" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.PaymentMethod{ID: "m-1", Balance: in.Amount}, nil
			})

		w := doJSON(newMethodsRouter(h), http.MethodPost, "/v1/payment-methods/m-1/load", `{"amount":25,"concept":"cash in"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list transactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc, nil)

		uc.EXPECT().Transactions(gomock.Any(), "m-1").Return([]entities.MethodTransaction{
			{ID: "tx-1", Type: entities.TransactionTypeLoad, Amount: decimal.NewFromInt(25)},
		}, nil)

		w := doJSON(newMethodsRouter(h), http.MethodGet, "/v1/payment-methods/m-1/transactions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body) != 1 || body[0]["type"] != "load" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
