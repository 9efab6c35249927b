package handler

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// MockGatewayHandler simulates the PayWay hosted payment page. Its route is
// only registered in development; deployed environments never expose it.
type MockGatewayHandler struct {
	baseURL string
}

func NewMockGatewayHandler(baseURL string) *MockGatewayHandler {
	return &MockGatewayHandler{
		baseURL: baseURL,
	}
}

var mockGatewayPage = template.Must(template.New("mock-gateway").Parse(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>PayWay Payment - ABA KHQR</title>
	<style>
		body {
			font-family: Arial, sans-serif;
			text-align: center;
			margin-top: 60px;
			background: #f4f5f7;
		}
		.card {
			background: white;
			border-radius: 16px;
			padding: 40px;
			max-width: 400px;
			margin: 0 auto;
			box-shadow: 0 8px 24px rgba(0,0,0,0.08);
		}
		.amount {
			font-size: 36px;
			font-weight: bold;
			color: #1a5f7a;
			margin: 20px 0;
		}
		.qr img {
			border: 1px solid #ddd;
			border-radius: 12px;
		}
		.info {
			text-align: left;
			background: #f8f9fa;
			border-radius: 10px;
			padding: 16px;
			margin: 20px 0;
			font-size: 14px;
		}
		.btn {
			background: #1a5f7a;
			color: white;
			border: none;
			padding: 14px 28px;
			border-radius: 10px;
			font-size: 16px;
			cursor: pointer;
			margin: 6px;
		}
		#status { margin: 16px 0; color: #856404; }
	</style>
</head>
<body>
	<div class="card">
		<h2>Payment Request</h2>
		<div class="amount">${{.Amount}}</div>
		<div class="qr"><img src="{{.QRCodeURL}}" width="200" height="200" alt="KHQR"></div>
		<div class="info">
			<div>Amount: ${{.Amount}} USD</div>
			<div>Method: {{.Method}}</div>
			<div>Campaign: {{.Campaign}}</div>
			{{if .Comment}}<div>Comment: {{.Comment}}</div>{{end}}
		</div>
		<div id="status">Waiting for payment…</div>
		<button class="btn" id="payButton" onclick="simulatePayment()">Simulate Payment (Dev)</button>
		<button class="btn" onclick="window.history.back()">Cancel</button>
	</div>

	<script>
		let paymentProcessed = false;

		function simulatePayment() {
			if (paymentProcessed) return;
			paymentProcessed = true;
			document.getElementById('status').textContent = 'Payment confirmed, redirecting…';
			document.getElementById('payButton').disabled = true;
			setTimeout(function () {
				window.location.href = {{.SuccessURL}};
			}, 2000);
		}

		// auto-complete after 10 seconds for demo flows
		setTimeout(function () {
			if (!paymentProcessed) {
				simulatePayment();
			}
		}, 10000);
	</script>
</body>
</html>
`))

type mockGatewayView struct {
	Amount     string
	Method     string
	Campaign   string
	Comment    string
	QRCodeURL  string
	SuccessURL string
}

func (h *MockGatewayHandler) Show(c echo.Context) error {
	returnTo := c.QueryParam("return")
	if returnTo == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing return callback"})
	}

	callback, err := url.Parse(returnTo)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid return callback"})
	}
	params := callback.Query()

	view := mockGatewayView{
		Amount:     params.Get("amount"),
		Method:     params.Get("method"),
		Campaign:   params.Get("campaign"),
		Comment:    params.Get("comment"),
		QRCodeURL:  h.baseURL + "/api/payway/qr?data=" + url.QueryEscape(returnTo),
		SuccessURL: returnTo + "&status=" + statusSuccess,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return mockGatewayPage.Execute(c.Response(), view)
}
