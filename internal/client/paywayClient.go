package client

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fundflow/internal/config"

	"github.com/shopspring/decimal"
)

// PaywayClient opens payment sessions with the PayWay processor. The callback
// URL passed in is the gateway's return address; the processor echoes it back
// with a status appended once the payer completes or abandons the payment.
type PaywayClient interface {
	Enabled() bool
	CreateTransaction(ctx context.Context, tranID string, amount decimal.Decimal, callbackURL string) (*CreateTransactionResponse, error)
}

type CreateTransactionResponse struct {
	TranID      string
	CheckoutURL string
	QRString    string
}

type paywayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	merchantID string
	apiKey     string
}

func NewPaywayClient(cfg *config.Payway) PaywayClient {
	return &paywayClientImpl{
		httpClient: &http.Client{
			// a slow processor must not stall the session request indefinitely
			Timeout: 15 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		merchantID: cfg.MerchantID,
		apiKey:     cfg.APIKey,
	}
}

func (c *paywayClientImpl) Enabled() bool {
	return c.baseApiURL != "" && c.merchantID != "" && c.apiKey != ""
}

// requestHash signs the purchase request the way PayWay expects: the
// concatenated field values, HMAC-SHA512 under the api key, base64 encoded.
func (c *paywayClientImpl) requestHash(parts ...string) string {
	mac := hmac.New(sha512.New, []byte(c.apiKey))
	mac.Write([]byte(strings.Join(parts, "")))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (c *paywayClientImpl) CreateTransaction(ctx context.Context, tranID string, amount decimal.Decimal, callbackURL string) (*CreateTransactionResponse, error) {
	reqTime := time.Now().UTC().Format("20060102150405")
	amountStr := amount.StringFixed(2)
	returnURL := base64.StdEncoding.EncodeToString([]byte(callbackURL))

	form := url.Values{}
	form.Set("req_time", reqTime)
	form.Set("merchant_id", c.merchantID)
	form.Set("tran_id", tranID)
	form.Set("amount", amountStr)
	form.Set("currency", "USD")
	form.Set("return_url", returnURL)
	form.Set("hash", c.requestHash(reqTime, c.merchantID, tranID, amountStr, returnURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/api/payment-gateway/v1/payments/purchase",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("payway error %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		Status struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"status"`
		CheckoutURL string `json:"checkout_url"`
		QRString    string `json:"qr_string"`
		TranID      string `json:"tran_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode payway response: %w", err)
	}

	if result.Status.Code != "" && result.Status.Code != "00" {
		return nil, fmt.Errorf("payway declined: %s %s", result.Status.Code, result.Status.Message)
	}
	if result.CheckoutURL == "" {
		return nil, fmt.Errorf("payway response missing checkout url")
	}

	if result.TranID == "" {
		result.TranID = tranID
	}

	return &CreateTransactionResponse{
		TranID:      result.TranID,
		CheckoutURL: result.CheckoutURL,
		QRString:    result.QRString,
	}, nil
}
