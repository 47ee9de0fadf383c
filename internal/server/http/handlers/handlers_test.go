package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
	"github.com/tsogoo/minimart/internal/domain/model"
	"github.com/tsogoo/minimart/internal/server/http/dto"
	"github.com/tsogoo/minimart/internal/server/http/middleware"
	testhelpers "github.com/tsogoo/minimart/internal/test"
	"github.com/tsogoo/minimart/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Username: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterPassesCredentials(t *testing.T) {
	username := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Username: username, Password: password, Role: "admin"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{SignUpFn: func(ctx context.Context, gotUsername, gotPassword string, gotRole model.Role) (string, error) {
		if gotUsername != username || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotUsername, gotPassword)
		}
		if gotRole != model.RoleAdmin {
			t.Fatalf("unexpected role %q", gotRole)
		}
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "minimart_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			foundCookie = true
			break
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named minimart_token")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	validBody, _ := json.Marshal(dto.AuthRequest{Username: "user", Password: "pass"})
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed body",
			facade: testhelpers.AuthFacadeStub{},
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			facade: testhelpers.AuthFacadeStub{SignUpFn: func(context.Context, string, string, model.Role) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			}},
			body:   validBody,
			status: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			facade: testhelpers.AuthFacadeStub{SignUpFn: func(context.Context, string, string, model.Role) (string, error) {
				return "", domainErrors.ErrDuplicateUsername
			}},
			body:   validBody,
			status: http.StatusConflict,
		},
		{
			name: "internal error",
			facade: testhelpers.AuthFacadeStub{SignUpFn: func(context.Context, string, string, model.Role) (string, error) {
				return "", errors.New("boom")
			}},
			body:   validBody,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Username: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	rejecting := testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}}
	resp = performRequest(t, http.MethodPost, "/login", NewAuthHandler(rejecting).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestCatalogHandlerAdd(t *testing.T) {
	body, _ := json.Marshal(dto.ProductRequest{Name: "Pen", Category: "Stationery", Code: "P001", Price: decimal.RequireFromString("5.00"), Stock: 10})
	resp := performRequest(t, http.MethodPost, "/products", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var created dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Code != "P001" || created.Stock != 10 {
		t.Fatalf("unexpected response %+v", created)
	}
}

func TestCatalogHandlerAddFailures(t *testing.T) {
	validBody, _ := json.Marshal(dto.ProductRequest{Name: "Pen", Code: "P001", Price: decimal.NewFromInt(5), Stock: 10})
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty name", domainErrors.ErrEmptyName, http.StatusBadRequest},
		{"negative price", domainErrors.ErrNegativePrice, http.StatusBadRequest},
		{"negative stock", domainErrors.ErrNegativeStock, http.StatusBadRequest},
		{"duplicate code", domainErrors.ErrDuplicateCode, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.CatalogFacadeStub{AddFn: func(context.Context, string, string, string, decimal.Decimal, int64) (*model.Product, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/products", NewCatalogHandler(facade).Add, nil, validBody, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestCatalogHandlerDelete(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/products/1", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Delete, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	missing := testhelpers.CatalogFacadeStub{DeleteFn: func(context.Context, int64) error {
		return domainErrors.ErrProductNotFound
	}}
	resp = performRequest(t, http.MethodDelete, "/products/1", NewCatalogHandler(missing).Delete, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/products/abc", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Delete, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed id, got %d", resp.Code)
	}
}

func TestCatalogHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/products", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var listing []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &listing); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(listing) != 1 || listing[0].Code != "P001" {
		t.Fatalf("unexpected listing %+v", listing)
	}
}

func TestCouponHandlerAdd(t *testing.T) {
	body, _ := json.Marshal(dto.CouponRequest{Code: "SALE10", Percent: decimal.NewFromInt(10)})
	resp := performRequest(t, http.MethodPost, "/coupons", NewCouponHandler(testhelpers.CouponFacadeStub{}).Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid percent", domainErrors.ErrInvalidPercent, http.StatusBadRequest},
		{"empty code", domainErrors.ErrInvalidCoupon, http.StatusBadRequest},
		{"duplicate", domainErrors.ErrDuplicateCoupon, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.CouponFacadeStub{AddFn: func(context.Context, string, decimal.Decimal) (*model.Coupon, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/coupons", NewCouponHandler(facade).Add, nil, body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestCouponHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/coupons", NewCouponHandler(testhelpers.CouponFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var listing []dto.CouponResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &listing); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(listing) != 1 || listing[0].Code != "SALE10" {
		t.Fatalf("unexpected listing %+v", listing)
	}
}

func TestOrderHandlerPlace(t *testing.T) {
	body, _ := json.Marshal(dto.OrderRequest{
		Items:  []dto.OrderLineRequest{{ProductID: 1, Quantity: 2}},
		Coupon: "SALE10",
	})
	facade := testhelpers.CheckoutFacadeStub{PlaceFn: func(ctx context.Context, userID int64, lines []usecase.LineInput, coupon string) (*model.Order, error) {
		if userID != 7 {
			t.Fatalf("unexpected user id %d", userID)
		}
		if len(lines) != 1 || lines[0].ProductID != 1 || lines[0].Quantity != 2 {
			t.Fatalf("unexpected lines %+v", lines)
		}
		if coupon != "SALE10" {
			t.Fatalf("unexpected coupon %q", coupon)
		}
		return &model.Order{
			ID:         "order-1",
			UserID:     userID,
			Lines:      []model.OrderLine{{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(10)}},
			CouponCode: coupon,
			Total:      decimal.NewFromInt(9),
			Status:     model.OrderStatusPaid,
		}, nil
	}}

	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Place, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if order.ID != "order-1" || order.Status != "PAID" || !order.Total.Equal(decimal.NewFromInt(9)) {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", order.Items)
	}
}

func TestOrderHandlerPlaceFailures(t *testing.T) {
	body, _ := json.Marshal(dto.OrderRequest{Items: []dto.OrderLineRequest{{ProductID: 1, Quantity: 2}}})
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty order", domainErrors.ErrEmptyOrder, http.StatusBadRequest},
		{"invalid quantity", domainErrors.ErrInvalidQuantity, http.StatusBadRequest},
		{"unknown product", domainErrors.ErrProductNotFound, http.StatusUnprocessableEntity},
		{"unknown coupon", domainErrors.ErrInvalidCoupon, http.StatusUnprocessableEntity},
		{"insufficient stock", domainErrors.ErrInsufficientStock, http.StatusConflict},
		{"insufficient balance", domainErrors.ErrInsufficientBalance, http.StatusPaymentRequired},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.CheckoutFacadeStub{PlaceFn: func(context.Context, int64, []usecase.LineInput, string) (*model.Order, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Place, asUser(7), body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}

	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(testhelpers.CheckoutFacadeStub{}).Place, asUser(7), []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed body, got %d", resp.Code)
	}
}

func TestOrderHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(testhelpers.CheckoutFacadeStub{}).List, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	empty := testhelpers.CheckoutFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, error) {
		return nil, nil
	}}
	resp = performRequest(t, http.MethodGet, "/orders", NewOrderHandler(empty).List, asUser(7), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for empty history, got %d", resp.Code)
	}
}

func TestBalanceHandlerSummary(t *testing.T) {
	facade := testhelpers.LedgerFacadeStub{BalanceFn: func(context.Context, int64) (decimal.Decimal, error) {
		return decimal.RequireFromString("95.50"), nil
	}}
	resp := performRequest(t, http.MethodGet, "/balance", NewBalanceHandler(facade).Summary, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var balance dto.BalanceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &balance); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !balance.Balance.Equal(decimal.RequireFromString("95.50")) {
		t.Fatalf("unexpected balance %s", balance.Balance)
	}
}

func TestBalanceHandlerTopUp(t *testing.T) {
	body, _ := json.Marshal(dto.TopUpRequest{Amount: decimal.NewFromInt(50)})
	resp := performRequest(t, http.MethodPost, "/topup", NewBalanceHandler(testhelpers.LedgerFacadeStub{}).TopUp, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	negative := testhelpers.LedgerFacadeStub{TopUpFn: func(context.Context, int64, decimal.Decimal) error {
		return domainErrors.ErrNegativeAmount
	}}
	resp = performRequest(t, http.MethodPost, "/topup", NewBalanceHandler(negative).TopUp, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 for negative amount, got %d", resp.Code)
	}
}
