package signedlink

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"
)

// Defaults applied by New when no option overrides them.
const (
	DefaultBaseURL = "/download"
	DefaultTTL     = 60 * time.Minute
)

// Signer issues and verifies time-limited download URLs using HMAC-SHA256.
// The signing secret is kept in memory only and never appears in issued URLs
// or log output. A Signer is immutable after construction and safe for
// concurrent use.
type Signer struct {
	secret  []byte
	baseURL string
	ttl     time.Duration
	now     func() time.Time
}

// New creates a Signer with the provided signing secret.
// The secret should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(secret []byte, opts ...Option) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	s := &Signer{
		secret:  secret,
		baseURL: DefaultBaseURL,
		ttl:     DefaultTTL,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if s.baseURL == "" {
		s.baseURL = DefaultBaseURL
	}
	if s.now == nil {
		s.now = time.Now
	}

	return s, nil
}

// NewFromString creates a Signer from a string secret.
// Convenience wrapper around New() for string-based configuration.
func NewFromString(secret string, opts ...Option) (*Signer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return New([]byte(secret), opts...)
}

// Issue creates a signed URL granting access to resourceID for the signer's
// default TTL.
func (s *Signer) Issue(resourceID string) (string, error) {
	return s.IssueWithTTL(resourceID, s.ttl)
}

// IssueWithTTL creates a signed URL granting access to resourceID until
// now+ttl, truncated to whole seconds. The same (resourceID, expiration,
// secret) triple always produces a byte-identical URL.
func (s *Signer) IssueWithTTL(resourceID string, ttl time.Duration) (string, error) {
	if resourceID == "" {
		return "", ErrMissingResourceID
	}
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	timestamp := strconv.FormatInt(s.now().Add(ttl).Unix(), 10)

	q := url.Values{}
	q.Set(paramID, resourceID)
	q.Set(paramTimestamp, timestamp)
	q.Set(paramSignature, s.sign(resourceID, timestamp))

	return s.baseURL + "?" + q.Encode(), nil
}

// sign computes the lowercase hex HMAC-SHA256 digest binding the resource id
// to its expiration timestamp under the signer's secret.
func (s *Signer) sign(resourceID, timestamp string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(resourceID + "-" + timestamp))
	return hex.EncodeToString(h.Sum(nil))
}
