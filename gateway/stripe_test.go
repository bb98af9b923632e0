package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	secret := "whsec_test"
	now := time.Now()

	header := signPayload(payload, secret, now)
	assert.NoError(t, verifySignature(payload, header, secret, now))

	// Wrong secret
	assert.Error(t, verifySignature(payload, header, "whsec_other", now))

	// Tampered payload
	assert.Error(t, verifySignature([]byte(`{"type":"evil"}`), header, secret, now))

	// Stale timestamp
	stale := signPayload(payload, secret, now.Add(-10*time.Minute))
	assert.Error(t, verifySignature(payload, stale, secret, now))

	// Future timestamp beyond tolerance
	future := signPayload(payload, secret, now.Add(10*time.Minute))
	assert.Error(t, verifySignature(payload, future, secret, now))

	// Malformed headers
	assert.Error(t, verifySignature(payload, "", secret, now))
	assert.Error(t, verifySignature(payload, "t=notanumber,v1=deadbeef", secret, now))
	assert.Error(t, verifySignature(payload, "v1=deadbeef", secret, now))
}

func TestVerifySignatureMultipleCandidates(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	secret := "whsec_test"
	now := time.Now()

	// A rotated endpoint sends several v1 entries; one valid match suffices
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", now.Unix())
	mac.Write(payload)
	sig := hex.EncodeToString(mac.Sum(nil))

	header := fmt.Sprintf("t=%d,v1=00ff,v1=%s", now.Unix(), sig)
	assert.NoError(t, verifySignature(payload, header, secret, now))
}

func TestVerifyWebhookSignatureWithoutSecret(t *testing.T) {
	client := NewStripeClient("sk_test", "")

	// No configured secret means the payload is accepted as-is
	assert.NoError(t, client.VerifyWebhookSignature([]byte("{}"), ""))
}

func TestParseWebhookEvent(t *testing.T) {
	event, err := ParseWebhookEvent([]byte(`{
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_123"}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, EventPaymentSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.IntentID())

	// Charge events reference the intent indirectly
	event, err = ParseWebhookEvent([]byte(`{
		"type": "charge.refunded",
		"data": {"object": {"id": "ch_9", "payment_intent": "pi_123"}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "pi_123", event.IntentID())

	_, err = ParseWebhookEvent([]byte("not json"))
	assert.Error(t, err)
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewStripeClient("", "").Configured())
	assert.True(t, NewStripeClient("sk_test", "").Configured())
}
