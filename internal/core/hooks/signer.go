package hooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// Sign computes the Standard Webhooks signature for a delivery:
// HMAC-SHA256 over "{msgID}.{timestamp}.{payload}" keyed by the decoded
// secret, rendered as "v1,<base64>". Timestamp is unix seconds.
func Sign(secret, msgID string, timestamp int64, payload []byte) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%d.", msgID, timestamp)
	mac.Write(payload)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks a "v1,..." signature header value against the payload.
// The header may carry several space-separated signatures; any match passes.
func Verify(secret, msgID string, timestamp int64, payload []byte, header string) (bool, error) {
	want, err := Sign(secret, msgID, timestamp, payload)
	if err != nil {
		return false, err
	}
	for _, sig := range strings.Fields(header) {
		if hmac.Equal([]byte(sig), []byte(want)) {
			return true, nil
		}
	}
	return false, nil
}

func decodeSecret(secret string) ([]byte, error) {
	raw := strings.TrimPrefix(secret, "whsec_")
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// secrets supplied by hand may not be base64; sign the raw bytes
		return []byte(raw), nil
	}
	return key, nil
}

// DeliveryResult records one attempt to deliver an event to a registration.
type DeliveryResult struct {
	WebhookID   string `json:"webhook_id"`
	MessageID   string `json:"message_id"`
	EventType   string `json:"event_type"`
	URL         string `json:"url"`
	StatusCode  int    `json:"status_code"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	AttemptedAt string `json:"attempted_at"`
}
