package auth

import (
	"testing"

	"clubrelay/config"

	"github.com/stretchr/testify/assert"
)

func TestSignatureVerifier(t *testing.T) {
	body := []byte(`{"id":42,"status":"processing"}`)
	verifier := NewSignatureVerifier(&config.Config{Webhook: &config.WebhookConfig{Secret: "s3cret"}})

	assert.True(t, verifier.Enabled())

	tests := []struct {
		name     string
		provided string
		want     bool
	}{
		{name: "raw secret", provided: "s3cret", want: true},
		{name: "hmac signature", provided: Sign([]byte("s3cret"), body), want: true},
		{name: "hmac of other body", provided: Sign([]byte("s3cret"), []byte("{}")), want: false},
		{name: "wrong secret", provided: "nope", want: false},
		{name: "empty", provided: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verifier.Verify(body, tt.provided))
		})
	}
}

func TestSignatureVerifier_Disabled(t *testing.T) {
	verifier := NewSignatureVerifier(&config.Config{Webhook: &config.WebhookConfig{}})

	assert.False(t, verifier.Enabled())
	assert.False(t, verifier.Verify([]byte("{}"), "anything"))
}
