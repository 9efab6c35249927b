package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fundflow/internal/client"
	"fundflow/internal/config"
	"fundflow/internal/dto"
	"fundflow/internal/model"
	"fundflow/internal/repository"
	"fundflow/internal/service"

	"gorm.io/gorm"
)

const paymentSecret = "test-payway-secret"

func newPaymentService(t *testing.T, db *gorm.DB, payway client.PaywayClient, development bool) service.PaymentService {
	t.Helper()
	if payway == nil {
		payway = client.NewPaywayClient(&config.Payway{})
	}
	return service.NewPaymentService(
		payway,
		repository.NewDonationRepository(db),
		repository.NewCommentRepository(db),
		repository.NewCampaignRepository(db),
		"http://localhost:8080",
		paymentSecret,
		development,
	)
}

func TestCreateSessionValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(t, db, nil, true)
	ctx := context.Background()

	cases := []dto.CreateSessionRequest{
		{UserID: "u1", Amount: 10, Method: "aba"},                      // missing campaign
		{CampaignID: "c1", Amount: 10, Method: "aba"},                  // missing user
		{CampaignID: "c1", UserID: "u1", Amount: 10},                   // missing method
		{CampaignID: "c1", UserID: "u1", Amount: 0, Method: "aba"},     // zero amount
		{CampaignID: "c1", UserID: "u1", Amount: -5, Method: "card"},   // negative amount
		{CampaignID: "c1", UserID: "u1", Amount: 10, Method: "wing"},   // unknown method
	}
	for i, req := range cases {
		if _, err := svc.CreateSession(ctx, &req); !errors.Is(err, service.ErrInvalidRequest) {
			t.Errorf("case %d: expected ErrInvalidRequest, got %v", i, err)
		}
	}
}

func TestCreateSessionMockFallbackInDevelopment(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(t, db, nil, true)

	resp, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		CampaignID: "c1",
		UserID:     "u1",
		Amount:     25,
		Method:     "aba",
		Comment:    "Good luck!",
	})
	if err != nil {
		t.Fatal("create session:", err)
	}

	if !resp.IsMock {
		t.Error("expected mock session when processor credentials are absent")
	}
	if !strings.Contains(resp.PaymentURL, "/api/payway/mock-gateway?return=") {
		t.Error("expected mock gateway payment url, got", resp.PaymentURL)
	}
	if resp.PaymentID == "" {
		t.Error("expected a payment id")
	}

	cb, err := url.Parse(resp.CallbackURL)
	if err != nil {
		t.Fatal("parse callback url:", err)
	}
	if cb.Path != "/api/payway/callback" {
		t.Error("unexpected callback path:", cb.Path)
	}
}

func TestCreateSessionDisabledProcessorOutsideDevelopment(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(t, db, nil, false)

	_, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		CampaignID: "c1",
		UserID:     "u1",
		Amount:     25,
		Method:     "aba",
	})
	if !errors.Is(err, service.ErrProcessorUnavailable) {
		t.Error("expected ErrProcessorUnavailable outside development, got", err)
	}
}

func TestCreateSessionUsesProcessorWhenConfigured(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("hash") == "" || r.PostForm.Get("tran_id") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       map[string]string{"code": "00", "message": "success"},
			"checkout_url": "https://checkout.payway.test/session/abc",
			"qr_string":    "khqr-payload",
			"tran_id":      r.PostForm.Get("tran_id"),
		})
	}))
	defer ts.Close()

	db := newTestDB(t)
	payway := client.NewPaywayClient(&config.Payway{
		BaseApiURL: ts.URL,
		APIKey:     paymentSecret,
		MerchantID: "merchant-1",
	})
	svc := newPaymentService(t, db, payway, false)

	resp, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		CampaignID: "c1",
		UserID:     "u1",
		Amount:     25,
		Method:     "aba",
	})
	if err != nil {
		t.Fatal("create session:", err)
	}

	if resp.IsMock {
		t.Error("expected a real processor session")
	}
	if resp.PaymentURL != "https://checkout.payway.test/session/abc" {
		t.Error("unexpected payment url:", resp.PaymentURL)
	}
	if !strings.Contains(resp.QRCodeURL, "/api/payway/qr?data=") {
		t.Error("expected qr code url for the khqr payload, got", resp.QRCodeURL)
	}
}

func TestRecordCallbackWritesDonationAndComment(t *testing.T) {
	db := newTestDB(t)
	campaignRepo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	campaign := &model.Campaign{ID: "c1", Purpose: "School books", GoalAmount: 500}
	if err := campaignRepo.Create(ctx, campaign); err != nil {
		t.Fatal("create campaign:", err)
	}

	svc := newPaymentService(t, db, nil, true)
	donation, err := svc.RecordCallback(ctx, &service.CallbackParams{
		UserID:     "u1",
		CampaignID: "c1",
		Amount:     25,
		Method:     "aba",
		Comment:    "  Good luck!  ",
	})
	if err != nil {
		t.Fatal("record callback:", err)
	}

	if donation.Amount != 25 || donation.Currency != "USD" || donation.CampaignID != "c1" {
		t.Errorf("unexpected donation row: %+v", donation)
	}
	if donation.CampaignTitle != "School books" {
		t.Error("expected campaign title on donation, got", donation.CampaignTitle)
	}

	var comments []*model.DonationComment
	if err := db.Find(&comments).Error; err != nil {
		t.Fatal(err)
	}
	if len(comments) != 1 {
		t.Fatal("expected exactly one comment, got", len(comments))
	}
	if comments[0].Message != "Good luck!" {
		t.Error("expected trimmed comment, got", comments[0].Message)
	}
	if comments[0].DonationID != donation.ID {
		t.Error("comment should reference the donation")
	}
}

func TestRecordCallbackSkipsBlankComment(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(t, db, nil, true)

	_, err := svc.RecordCallback(context.Background(), &service.CallbackParams{
		UserID:     "u1",
		CampaignID: "c1",
		Amount:     10,
		Method:     "card",
		Comment:    "   ",
	})
	if err != nil {
		t.Fatal("record callback:", err)
	}

	var count int64
	db.Model(&model.DonationComment{}).Count(&count)
	if count != 0 {
		t.Error("blank comment should not be persisted")
	}
}

// The numeric-comment restriction lives in the donate form, not the server;
// the callback handler records whatever comment text was signed.
func TestRecordCallbackAcceptsNumericComment(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(t, db, nil, true)

	_, err := svc.RecordCallback(context.Background(), &service.CallbackParams{
		UserID:     "u1",
		CampaignID: "c1",
		Amount:     10,
		Method:     "aba",
		Comment:    "42",
	})
	if err != nil {
		t.Fatal("record callback:", err)
	}

	var comments []*model.DonationComment
	db.Find(&comments)
	if len(comments) != 1 || comments[0].Message != "42" {
		t.Error("numeric-only comment should be recorded as-is")
	}
}
