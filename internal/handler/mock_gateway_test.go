package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fundflow/internal/handler"
	"fundflow/internal/payway"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func TestMockGatewayRequiresReturnURL(t *testing.T) {
	e := echo.New()
	e.GET("/api/payway/mock-gateway", handler.NewMockGatewayHandler("http://localhost:8080").Show)

	req := httptest.NewRequest(http.MethodGet, "/api/payway/mock-gateway", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Error("expected 400 without return callback, got", rec.Code)
	}
}

func TestMockGatewayRendersPaymentPage(t *testing.T) {
	e := echo.New()
	e.GET("/api/payway/mock-gateway", handler.NewMockGatewayHandler("http://localhost:8080").Show)

	callback := payway.BuildCallbackURL("http://localhost:8080", callbackSecret, payway.Intent{
		CampaignID: "c1",
		UserID:     "u1",
		Amount:     decimal.NewFromInt(25),
		Method:     "aba",
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/payway/mock-gateway?return="+url.QueryEscape(callback), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatal("expected 200, got", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Simulate Payment") {
		t.Error("expected simulate button on the mock page")
	}
	if !strings.Contains(body, "$25") {
		t.Error("expected amount on the mock page")
	}
	if !strings.Contains(body, "/api/payway/qr?data=") {
		t.Error("expected qr image on the mock page")
	}
	if !strings.Contains(body, "status=") {
		t.Error("expected success status appended to the redirect target")
	}
}
