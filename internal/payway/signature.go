package payway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
)

// Field order is fixed by the PayWay callback contract. Signer and verifier
// must serialize over identical bytes, so the order is hard-coded here and
// never derived from map iteration or insertion order.
var signKeys = []string{"user", "campaign", "amount", "method", "comment"}

// Fields is the set of callback parameters covered by the signature.
// Empty values are treated as absent and omitted from the canonical payload.
type Fields struct {
	User     string
	Campaign string
	Amount   string
	Method   string
	Comment  string
}

func (f Fields) get(key string) string {
	switch key {
	case "user":
		return f.User
	case "campaign":
		return f.Campaign
	case "amount":
		return f.Amount
	case "method":
		return f.Method
	case "comment":
		return f.Comment
	}
	return ""
}

// Canonicalize serializes the signed fields as a query string in the fixed
// key order, skipping absent fields.
func Canonicalize(f Fields) string {
	var buf []byte
	for _, key := range signKeys {
		value := f.get(key)
		if value == "" {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '&')
		}
		buf = append(buf, key...)
		buf = append(buf, '=')
		buf = append(buf, url.QueryEscape(value)...)
	}
	return string(buf)
}

// Sign computes the hex HMAC-SHA512 of payload under secret. An empty secret
// still yields a deterministic signature; main refuses to start without one.
func Sign(payload, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// FieldsFromQuery picks the signed parameters out of a callback query.
func FieldsFromQuery(q url.Values) Fields {
	return Fields{
		User:     q.Get("user"),
		Campaign: q.Get("campaign"),
		Amount:   q.Get("amount"),
		Method:   q.Get("method"),
		Comment:  q.Get("comment"),
	}
}

// Verify recomputes the signature over the canonicalized query parameters and
// compares it against the sig parameter in constant time. It returns false on
// a missing, malformed or mismatched signature and never panics.
func Verify(q url.Values, secret string) bool {
	sig := q.Get("sig")
	if sig == "" {
		return false
	}
	expected := Sign(Canonicalize(FieldsFromQuery(q)), secret)
	return hmac.Equal([]byte(sig), []byte(expected))
}
