package service

// SignatureVerifier checks inbound webhook signatures.
type SignatureVerifier interface {
	// Enabled reports whether a secret is configured.
	Enabled() bool

	// Verify reports whether provided matches the secret for body.
	Verify(body []byte, provided string) bool
}
