package payway

import (
	"github.com/shopspring/decimal"
)

// Intent is a donor's requested contribution before payment confirmation.
// It is never persisted; only its signed encoding travels through the gateway.
type Intent struct {
	CampaignID string
	UserID     string
	Amount     decimal.Decimal
	Comment    string
	Method     string
}

// BuildCallbackURL composes the absolute callback URL for an intent: the
// canonical query string plus a sig parameter over it. The receiving handler
// reproduces the signature from the same canonicalization.
func BuildCallbackURL(baseURL, secret string, it Intent) string {
	unsigned := Canonicalize(Fields{
		User:     it.UserID,
		Campaign: it.CampaignID,
		Amount:   it.Amount.String(),
		Method:   it.Method,
		Comment:  it.Comment,
	})
	sig := Sign(unsigned, secret)
	return baseURL + "/api/payway/callback?" + unsigned + "&sig=" + sig
}
