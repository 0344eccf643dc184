package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"clubrelay/config"
	"clubrelay/internal/domain/service"
)

// hmacVerifier accepts either the raw shared secret or base64(HMAC-SHA256(secret, body)).
type hmacVerifier struct {
	secret []byte
}

// NewSignatureVerifier is the constructor for hmacVerifier.
// An empty webhook.secret yields a verifier that is disabled.
func NewSignatureVerifier(cfg *config.Config) service.SignatureVerifier {
	var secret string
	if cfg != nil && cfg.Webhook != nil {
		secret = cfg.Webhook.Secret
	}

	return &hmacVerifier{secret: []byte(secret)}
}

func (v *hmacVerifier) Enabled() bool {
	return len(v.secret) > 0
}

func (v *hmacVerifier) Verify(body []byte, provided string) bool {
	if !v.Enabled() || provided == "" {
		return false
	}

	if subtle.ConstantTimeCompare([]byte(provided), v.secret) == 1 {
		return true
	}

	return hmac.Equal([]byte(provided), []byte(Sign(v.secret, body)))
}

// Sign returns the WooCommerce-style signature of body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
