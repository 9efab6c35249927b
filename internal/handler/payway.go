package handler

import (
	"errors"
	"fmt"
	"net/http"

	"fundflow/internal/dto"
	"fundflow/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// gateway success sentinel
const statusSuccess = "200"

type PaywayHandler struct {
	paymentService service.PaymentService
}

func NewPaywayHandler(paymentService service.PaymentService) *PaywayHandler {
	return &PaywayHandler{
		paymentService: paymentService,
	}
}

func (h *PaywayHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.UserID == "" {
		if userID, ok := c.Get("user_id").(string); ok {
			req.UserID = userID
		}
	}

	resp, err := h.paymentService.CreateSession(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrProcessorUnavailable):
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleCallback is invoked by the gateway (or the mock) once payment
// completes. The signature gates everything; a non-success status is a
// legitimate outcome, not an error, and performs no write.
func (h *PaywayHandler) HandleCallback(c echo.Context) error {
	ctx := c.Request().Context()
	q := c.Request().URL.Query()

	if !h.paymentService.VerifyCallback(q) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid signature"})
	}

	status := q.Get("status")
	if status == "" {
		status = statusSuccess
	}
	if status != statusSuccess {
		return c.JSON(http.StatusOK, map[string]interface{}{"ok": false, "status": status})
	}

	userID := q.Get("user")
	campaignID := q.Get("campaign")
	amount, amountErr := decimal.NewFromString(q.Get("amount"))
	if userID == "" || campaignID == "" || amountErr != nil || amount.Sign() <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing required params"})
	}
	method := q.Get("method")
	if method == "" {
		method = "aba"
	}

	_, err := h.paymentService.RecordCallback(ctx, &service.CallbackParams{
		UserID:     userID,
		CampaignID: campaignID,
		Amount:     amount.InexactFloat64(),
		Method:     method,
		Comment:    q.Get("comment"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.Redirect(http.StatusFound, h.paymentService.RedirectURL(campaignID))
}

func (h *PaywayHandler) QRCode(c echo.Context) error {
	data := c.QueryParam("data")
	if data == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing data")
	}

	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate qr code: %w", err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
