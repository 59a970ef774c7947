package signedlink

import "time"

// Option configures a Signer during construction.
type Option func(*Signer)

// WithBaseURL sets the base URL or path issued links are anchored to.
// Verification only inspects query parameters, so links remain verifiable
// across deployments using different bases.
func WithBaseURL(baseURL string) Option {
	return func(s *Signer) {
		s.baseURL = baseURL
	}
}

// WithTTL sets the default validity window used by Issue.
func WithTTL(ttl time.Duration) Option {
	return func(s *Signer) {
		s.ttl = ttl
	}
}

// WithClock replaces the wall-clock source. Intended for tests that need
// deterministic issuance and expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}
