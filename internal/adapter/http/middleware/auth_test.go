package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fulfillment_service/internal/infrastructure/auth"
	"fulfillment_service/internal/infrastructure/config"
)

var testJWT = config.JWTConfig{Secret: "secret", Issuer: "identity"}

func mintTestToken(t *testing.T, p auth.Principal) string {
	t.Helper()
	token, err := auth.MintAccessToken(testJWT, time.Now(), time.Hour, p)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func newAuthRouter(extra ...gin.HandlerFunc) (*gin.Engine, *auth.Principal) {
	gin.SetMode(gin.TestMode)
	captured := &auth.Principal{}
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Auth(testJWT, nil)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		p, _ := PrincipalFromContext(c.Request.Context())
		*captured = p
		c.Status(http.StatusOK)
	})
	r.GET("/", handlers...)
	return r, captured
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r, _ := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	r, _ := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsForeignIssuer(t *testing.T) {
	r, _ := newAuthRouter()
	token, err := auth.MintAccessToken(config.JWTConfig{Secret: "secret", Issuer: "other"}, time.Now(), time.Hour, auth.Principal{UserID: "u-1"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthAllowsValidToken(t *testing.T) {
	r, captured := newAuthRouter()
	token := mintTestToken(t, auth.Principal{UserID: "u-1", Username: "maria", Role: "seller"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.UserID != "u-1" || captured.Username != "maria" || captured.Role != "seller" {
		t.Fatalf("unexpected principal %+v", *captured)
	}
}

func TestRequireRole(t *testing.T) {
	r, _ := newAuthRouter(RequireRole(auth.RoleAdmin))

	cases := []struct {
		name string
		role string
		want int
	}{
		{name: "admin", role: auth.RoleAdmin, want: http.StatusOK},
		{name: "other role", role: "seller", want: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+mintTestToken(t, auth.Principal{UserID: "u-1", Role: tc.role}))
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	r, _ := newAuthRouter(RequireRole(auth.RoleAdmin), RequirePermission(auth.PermissionTotalize))

	without := mintTestToken(t, auth.Principal{UserID: "u-1", Role: auth.RoleAdmin})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+without)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}

	with := mintTestToken(t, auth.Principal{UserID: "u-1", Role: auth.RoleAdmin, Permissions: []string{auth.PermissionTotalize}})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+with)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
