package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-api/pkg/auth"
)

// stubVerifier accepts exactly one token and maps it to fixed claims.
type stubVerifier struct {
	token  string
	claims *auth.Claims
	err    error
}

func (s *stubVerifier) Verify(_ context.Context, token string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	if token != s.token {
		return nil, auth.ErrInvalidToken
	}
	return s.claims, nil
}

func newTestRouter(v auth.Verifier, store OrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	Router = engine
	InitializeRoutes(v, store)
	return engine
}

func defaultVerifier() *stubVerifier {
	return &stubVerifier{
		token:  "valid-token",
		claims: &auth.Claims{UID: "user-1", Email: "user@example.com"},
	}
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body %q: %v", w.Body.String(), err)
	}
	return body["error"]
}

func TestAuthRequired(t *testing.T) {
	engine := newTestRouter(defaultVerifier(), newFakeOrderStore())

	protected := []struct{ method, path string }{
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/orders"},
		{http.MethodGet, "/api/wishlist"},
		{http.MethodPost, "/api/auth/sync"},
		{http.MethodGet, "/api/user"},
		{http.MethodGet, "/api/profile"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := doRequest(t, engine, route.method, route.path, "", "")
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if msg := errorMessage(t, w); msg != "Unauthorized" {
				t.Errorf("error = %q, want Unauthorized", msg)
			}
		})
	}
}

func TestAuthRejectsBadToken(t *testing.T) {
	engine := newTestRouter(defaultVerifier(), newFakeOrderStore())

	w := doRequest(t, engine, http.MethodGet, "/api/orders", "wrong-token", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthVerifierOutageIsNot401(t *testing.T) {
	engine := newTestRouter(&stubVerifier{err: errors.New("verifier unreachable")}, newFakeOrderStore())

	w := doRequest(t, engine, http.MethodGet, "/api/orders", "any-token", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	engine := newTestRouter(defaultVerifier(), newFakeOrderStore())

	shipping := `{"fullName":"Ada","address1":"1 Way","city":"London","country":"UK","zip":"E1"}`

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			"empty items",
			`{"items":[],"shippingInfo":` + shipping + `}`,
			"Items required",
		},
		{
			"zero quantity",
			`{"items":[{"id":1,"title":"Widget","price":9.99,"qty":0}],"shippingInfo":` + shipping + `}`,
			"Invalid item payload",
		},
		{
			"missing price",
			`{"items":[{"id":1,"title":"Widget","qty":1}],"shippingInfo":` + shipping + `}`,
			"Invalid item payload",
		},
		{
			"missing city",
			`{"items":[{"id":1,"title":"Widget","price":9.99,"qty":1}],"shippingInfo":{"fullName":"Ada","address1":"1 Way","country":"UK","zip":"E1"}}`,
			"Invalid shipping info",
		},
		{
			"no shipping info",
			`{"items":[{"id":1,"title":"Widget","price":9.99,"qty":1}]}`,
			"Invalid shipping info",
		},
		{
			"malformed json",
			`{"items":`,
			"Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, engine, http.MethodPost, "/api/orders", "valid-token", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if msg := errorMessage(t, w); msg != tt.wantMsg {
				t.Errorf("error = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestGetOrderRejectsMalformedID(t *testing.T) {
	engine := newTestRouter(defaultVerifier(), newFakeOrderStore())

	w := doRequest(t, engine, http.MethodGet, "/api/orders/not-an-objectid", "valid-token", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Invalid order id" {
		t.Errorf("error = %q", msg)
	}
}

func TestCancelOrderRejectsOtherStatuses(t *testing.T) {
	engine := newTestRouter(defaultVerifier(), newFakeOrderStore())

	for _, status := range []string{"PAID", "PENDING", "SHIPPED", ""} {
		w := doRequest(t, engine, http.MethodPatch,
			"/api/orders/655f1e9b2c8a9a0a6b1f0e42", "valid-token",
			`{"status":"`+status+`"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status %q: code = %d, want 400", status, w.Code)
		}
	}
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	engine := newTestRouter(defaultVerifier(), newFakeOrderStore())

	t.Run("missing id", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPatch, "/api/orders", "valid-token", `{"status":"PAID"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Order ID required" {
			t.Errorf("error = %q", msg)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPatch, "/api/orders?id=nope", "valid-token", `{"status":"PAID"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", w.Code)
		}
	})

	t.Run("non-terminal target", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPatch,
			"/api/orders?id=655f1e9b2c8a9a0a6b1f0e42", "valid-token", `{"status":"PENDING"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", w.Code)
		}
	})
}

func TestWishlistValidation(t *testing.T) {
	engine := newTestRouter(defaultVerifier(), newFakeOrderStore())

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/api/wishlist", "valid-token", `{"id":1,"title":"Lamp"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Invalid payload" {
			t.Errorf("error = %q", msg)
		}
	})

	t.Run("non-numeric delete id", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodDelete, "/api/wishlist/abc", "valid-token", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Invalid id" {
			t.Errorf("error = %q", msg)
		}
	})
}

func TestUpdateUserRejectsMalformedJSON(t *testing.T) {
	engine := newTestRouter(defaultVerifier(), newFakeOrderStore())

	w := doRequest(t, engine, http.MethodPost, "/api/user", "valid-token", `{"displayName":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", w.Code)
	}
}
