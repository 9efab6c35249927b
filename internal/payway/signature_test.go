package payway_test

import (
	"net/url"
	"strings"
	"testing"

	"fundflow/internal/payway"

	"github.com/shopspring/decimal"
)

const testSecret = "test-payway-secret"

func validQuery(secret string) url.Values {
	fields := payway.Fields{
		User:     "u1",
		Campaign: "c1",
		Amount:   "25",
		Method:   "aba",
		Comment:  "Good luck!",
	}
	q := url.Values{}
	q.Set("user", fields.User)
	q.Set("campaign", fields.Campaign)
	q.Set("amount", fields.Amount)
	q.Set("method", fields.Method)
	q.Set("comment", fields.Comment)
	q.Set("sig", payway.Sign(payway.Canonicalize(fields), secret))
	return q
}

func TestSignVerifyRoundTrip(t *testing.T) {
	q := validQuery(testSecret)
	if !payway.Verify(q, testSecret) {
		t.Error("expected valid signature to verify")
	}
}

func TestTamperedFieldFailsVerification(t *testing.T) {
	tampered := map[string]string{
		"user":     "u2",
		"campaign": "c2",
		"amount":   "2500",
		"method":   "card",
		"comment":  "changed",
	}
	for key, value := range tampered {
		q := validQuery(testSecret)
		q.Set(key, value)
		if payway.Verify(q, testSecret) {
			t.Errorf("expected verification to fail after tampering with %s", key)
		}
	}
}

func TestDifferentSecretFailsVerification(t *testing.T) {
	q := validQuery("secret-one")
	if payway.Verify(q, "secret-two") {
		t.Error("expected signature under one secret to fail under another")
	}
}

func TestMalformedSignatureReturnsFalse(t *testing.T) {
	cases := map[string]string{
		"missing":  "",
		"garbage":  "not-a-signature",
		"short":    "abcd",
		"long":     strings.Repeat("ff", 200),
		"non-hex":  strings.Repeat("zz", 64),
		"truncate": payway.Sign("user=u1", testSecret)[:10],
	}
	for name, sig := range cases {
		q := validQuery(testSecret)
		if sig == "" {
			q.Del("sig")
		} else {
			q.Set("sig", sig)
		}
		if payway.Verify(q, testSecret) {
			t.Errorf("%s signature unexpectedly verified", name)
		}
	}
}

func TestEmptySecretStillDeterministic(t *testing.T) {
	payload := "user=u1&campaign=c1&amount=25"
	a := payway.Sign(payload, "")
	b := payway.Sign(payload, "")
	if a != b {
		t.Error("signing with empty secret should be deterministic")
	}

	q := validQuery("")
	if !payway.Verify(q, "") {
		t.Error("empty-secret signature should still verify against empty secret")
	}
}

func TestCanonicalizeFixedOrderAndOmission(t *testing.T) {
	got := payway.Canonicalize(payway.Fields{
		Comment:  "hi there",
		Amount:   "10",
		User:     "u1",
		Campaign: "c1",
		Method:   "aba",
	})
	want := "user=u1&campaign=c1&amount=10&method=aba&comment=hi+there"
	if got != want {
		t.Errorf("canonical payload mismatch:\n got %q\nwant %q", got, want)
	}

	got = payway.Canonicalize(payway.Fields{User: "u1", Campaign: "c1", Amount: "10", Method: "aba"})
	want = "user=u1&campaign=c1&amount=10&method=aba"
	if got != want {
		t.Errorf("absent comment should be omitted:\n got %q\nwant %q", got, want)
	}
}

func TestBuildCallbackURLSignatureMatches(t *testing.T) {
	callback := payway.BuildCallbackURL("http://localhost:8080", testSecret, payway.Intent{
		CampaignID: "c1",
		UserID:     "u1",
		Amount:     decimal.NewFromInt(25),
		Comment:    "Good luck!",
		Method:     "aba",
	})

	parsed, err := url.Parse(callback)
	if err != nil {
		t.Fatal("parse callback url:", err)
	}
	if parsed.Path != "/api/payway/callback" {
		t.Error("unexpected callback path:", parsed.Path)
	}

	q := parsed.Query()
	if q.Get("user") != "u1" || q.Get("campaign") != "c1" || q.Get("amount") != "25" ||
		q.Get("method") != "aba" || q.Get("comment") != "Good luck!" {
		t.Error("callback query missing intent fields:", q.Encode())
	}

	expected := payway.Sign(payway.Canonicalize(payway.FieldsFromQuery(q)), testSecret)
	if q.Get("sig") != expected {
		t.Errorf("sig parameter mismatch:\n got %s\nwant %s", q.Get("sig"), expected)
	}

	if !payway.Verify(q, testSecret) {
		t.Error("built callback url should verify")
	}
}
