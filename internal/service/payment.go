package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"fundflow/internal/client"
	"fundflow/internal/dto"
	"fundflow/internal/model"
	"fundflow/internal/payway"
	"fundflow/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrProcessorUnavailable = errors.New("payment processor unavailable")
)

// CallbackParams are the verified parameters of a gateway callback.
type CallbackParams struct {
	UserID     string
	CampaignID string
	Amount     float64
	Method     string
	Comment    string
}

type PaymentService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	VerifyCallback(q url.Values) bool
	RecordCallback(ctx context.Context, params *CallbackParams) (*model.Donation, error)
	RedirectURL(campaignID string) string
}

type paymentServiceImpl struct {
	paywayClient client.PaywayClient
	donationRepo repository.DonationRepository
	commentRepo  repository.CommentRepository
	campaignRepo repository.CampaignRepository
	baseURL      string
	secret       string
	development  bool
}

func NewPaymentService(
	paywayClient client.PaywayClient,
	donationRepo repository.DonationRepository,
	commentRepo repository.CommentRepository,
	campaignRepo repository.CampaignRepository,
	baseURL string,
	secret string,
	development bool,
) PaymentService {
	return &paymentServiceImpl{
		paywayClient: paywayClient,
		donationRepo: donationRepo,
		commentRepo:  commentRepo,
		campaignRepo: campaignRepo,
		baseURL:      strings.TrimRight(baseURL, "/"),
		secret:       secret,
		development:  development,
	}
}

func (s *paymentServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	if req.CampaignID == "" || req.UserID == "" || req.Method == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidRequest)
	}
	if req.Method != "aba" && req.Method != "card" {
		return nil, fmt.Errorf("%w: unsupported method %q", ErrInvalidRequest, req.Method)
	}
	amount := decimal.NewFromFloat(req.Amount)
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}

	callbackURL := payway.BuildCallbackURL(s.baseURL, s.secret, payway.Intent{
		CampaignID: req.CampaignID,
		UserID:     req.UserID,
		Amount:     amount,
		Comment:    strings.TrimSpace(req.Comment),
		Method:     req.Method,
	})

	tranID := uuid.NewString()

	if s.paywayClient.Enabled() {
		resp, err := s.paywayClient.CreateTransaction(ctx, tranID, amount, callbackURL)
		if err == nil {
			out := &dto.CreateSessionResponse{
				Success:     true,
				PaymentURL:  resp.CheckoutURL,
				PaymentID:   resp.TranID,
				IsMock:      false,
				CallbackURL: callbackURL,
			}
			if resp.QRString != "" {
				out.QRCodeURL = s.qrURL(resp.QRString)
			}
			return out, nil
		}
		log.Println("payway create transaction:", err)
		if !s.development {
			return nil, fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
		}
	} else if !s.development {
		return nil, ErrProcessorUnavailable
	}

	// Development fallback: the mock gateway completes the payment locally.
	// Never reachable outside development.
	mockURL := s.baseURL + "/api/payway/mock-gateway?return=" + url.QueryEscape(callbackURL)
	return &dto.CreateSessionResponse{
		Success:     true,
		PaymentURL:  mockURL,
		QRCodeURL:   s.qrURL(mockURL),
		PaymentID:   tranID,
		IsMock:      true,
		CallbackURL: callbackURL,
	}, nil
}

func (s *paymentServiceImpl) qrURL(data string) string {
	return s.baseURL + "/api/payway/qr?data=" + url.QueryEscape(data)
}

func (s *paymentServiceImpl) VerifyCallback(q url.Values) bool {
	ok := payway.Verify(q, s.secret)
	if !ok {
		// possible tampering attempt, keep a trace for audit
		log.Println("payway callback signature verification failed for", q.Encode())
	}
	return ok
}

// RecordCallback writes the donation, then best-effort writes the comment.
// The two writes are independent; a failed comment never rolls back or fails
// a recorded donation.
func (s *paymentServiceImpl) RecordCallback(ctx context.Context, params *CallbackParams) (*model.Donation, error) {
	title := ""
	if campaign, err := s.campaignRepo.FindByID(ctx, params.CampaignID); err == nil {
		title = campaign.Purpose
	}

	donation := &model.Donation{
		ID:            uuid.NewString(),
		UserID:        params.UserID,
		CampaignID:    params.CampaignID,
		CampaignTitle: title,
		Amount:        params.Amount,
		Currency:      "USD",
		Method:        params.Method,
		DonationDate:  time.Now(),
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("record donation: %w", err)
	}

	if message := strings.TrimSpace(params.Comment); message != "" {
		comment := &model.DonationComment{
			ID:         uuid.NewString(),
			CampaignID: params.CampaignID,
			DonationID: donation.ID,
			UserID:     params.UserID,
			Message:    message,
		}
		if err := s.commentRepo.Create(ctx, comment); err != nil {
			log.Println("record donation comment:", err)
		}
	}

	return donation, nil
}

func (s *paymentServiceImpl) RedirectURL(campaignID string) string {
	return s.baseURL + "/campaign/" + campaignID + "?paid=1"
}
