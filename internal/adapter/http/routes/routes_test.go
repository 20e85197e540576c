package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	request "fulfillment_service/internal/adapter/http/dto/request"
	"fulfillment_service/internal/adapter/http/handlers/mocks"
	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/auth"
	"fulfillment_service/internal/infrastructure/config"
	"fulfillment_service/internal/infrastructure/metrics"
	"fulfillment_service/internal/usecase"
)

const testOrderID = "5f0c7c2e-8d36-4a8e-9a3c-1b0f3f5f6a01"

var testJWT = config.JWTConfig{Secret: "secret", Issuer: "identity"}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type routerFixture struct {
	router  *gin.Engine
	orders  *mocks.MockIOrderUseCase
	tracker *mocks.MockIStageTrackerUseCase
	ledger  *mocks.MockIPaymentLedgerUseCase
	methods *mocks.MockIPaymentMethodUseCase
	reports *mocks.MockIReportUseCase
}

func newFixture(t *testing.T) routerFixture {
	ctrl := gomock.NewController(t)
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	f := routerFixture{
		orders:  mocks.NewMockIOrderUseCase(ctrl),
		tracker: mocks.NewMockIStageTrackerUseCase(ctrl),
		ledger:  mocks.NewMockIPaymentLedgerUseCase(ctrl),
		methods: mocks.NewMockIPaymentMethodUseCase(ctrl),
		reports: mocks.NewMockIReportUseCase(ctrl),
	}
	f.router = NewRouter(Dependencies{
		JWT:            testJWT,
		Gatherer:       reg,
		Orders:         f.orders,
		Tracker:        f.tracker,
		Ledger:         f.ledger,
		PaymentMethods: f.methods,
		Reports:        f.reports,
	})
	return f
}

func bearer(t *testing.T, p auth.Principal) string {
	t.Helper()
	token, err := auth.MintAccessToken(testJWT, time.Now(), time.Hour, p)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return "Bearer " + token
}

func (f routerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newFixture(t)

	if w := f.do(http.MethodGet, "/v1/ping", "", ""); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}
	w := f.do(http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("fulfillment_order_lock_wait_seconds")) {
		t.Fatalf("expected service metrics to be exposed")
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newFixture(t)

	if w := f.do(http.MethodGet, "/v1/orders/"+testOrderID, "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRouter_OrderCreationStampsCaller(t *testing.T) {
	f := newFixture(t)
	token := bearer(t, auth.Principal{UserID: "u-1", Username: "maria", Role: "seller"})

	f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), "maria").Return(entities.Order{ID: testOrderID, CreatedBy: "maria"}, nil)

	w := f.do(http.MethodPost, "/v1/orders", token, `{"client_id":"c-1","client_name":"ACME"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRouter_AdminOnlyRoutes(t *testing.T) {
	f := newFixture(t)
	seller := bearer(t, auth.Principal{UserID: "u-1", Username: "maria", Role: "seller"})
	admin := bearer(t, auth.Principal{UserID: "u-2", Username: "root", Role: auth.RoleAdmin})

	forbidden := []struct{ method, path, body string }{
		{http.MethodPut, "/v1/orders/" + testOrderID + "/stages/1", `{"status":"done"}`},
		{http.MethodPut, "/v1/orders/" + testOrderID + "/stages/1/finalize", ""},
		{http.MethodPut, "/v1/orders/" + testOrderID + "/stages/1/assignments", `{"item_id":"i","employee_id":"e"}`},
		{http.MethodPut, "/v1/orders/" + testOrderID + "/status", `{"status":"orden2"}`},
		{http.MethodGet, "/v1/reports/commissions/completed", ""},
		{http.MethodGet, "/v1/reports/revenue/daily", ""},
		{http.MethodGet, "/v1/payment-methods", ""},
		{http.MethodPost, "/v1/payment-methods/m-1/load", `{"amount":1}`},
	}
	for _, tc := range forbidden {
		if w := f.do(tc.method, tc.path, seller, tc.body); w.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d", tc.method, tc.path, w.Code)
		}
	}

	f.tracker.EXPECT().FinalizeStage(gomock.Any(), testOrderID, 1, gomock.Any()).Return(entities.Order{ID: testOrderID}, nil)
	f.methods.EXPECT().List(gomock.Any()).Return([]entities.PaymentMethod{}, nil)
	f.reports.EXPECT().DailyRevenue(gomock.Any(), gomock.Any()).Return(usecase.DailyRevenue{}, nil)

	if w := f.do(http.MethodPut, "/v1/orders/"+testOrderID+"/stages/1/finalize", admin, ""); w.Code != http.StatusOK {
		t.Fatalf("finalize: expected 200, got %d", w.Code)
	}
	if w := f.do(http.MethodGet, "/v1/payment-methods", admin, ""); w.Code != http.StatusOK {
		t.Fatalf("methods: expected 200, got %d", w.Code)
	}
	if w := f.do(http.MethodGet, "/v1/reports/revenue/daily", admin, ""); w.Code != http.StatusOK {
		t.Fatalf("revenue: expected 200, got %d", w.Code)
	}
}

func TestRouter_TotalizeRequiresPermission(t *testing.T) {
	f := newFixture(t)
	admin := bearer(t, auth.Principal{UserID: "u-2", Role: auth.RoleAdmin})
	allowed := bearer(t, auth.Principal{UserID: "u-3", Role: "cashier", Permissions: []string{auth.PermissionTotalize}})

	if w := f.do(http.MethodPut, "/v1/orders/"+testOrderID+"/payment/totalize", admin, ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without permission, got %d", w.Code)
	}

	f.ledger.EXPECT().Totalize(gomock.Any(), testOrderID).Return(entities.Order{ID: testOrderID, PaymentStatus: entities.PaymentStatusPaid}, nil)
	if w := f.do(http.MethodPut, "/v1/orders/"+testOrderID+"/payment/totalize", allowed, ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with permission, got %d", w.Code)
	}
}
