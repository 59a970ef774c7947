package signedlink

import (
	"crypto/subtle"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Verify checks a previously issued URL against the signer's secret and the
// current time. It returns the verified Claim on success, or one of the
// sentinel rejection errors: ErrMissingParams, ErrInvalidTimestamp,
// ErrLinkExpired or ErrSignatureInvalid.
//
// Verify runs on every unauthenticated request and never panics on hostile
// input. Expiry is checked before the signature, so an expired link is
// reported as expired even when its signature is still correct.
func (s *Signer) Verify(rawURL string) (Claim, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Claim{}, ErrMissingParams
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return Claim{}, ErrMissingParams
	}

	resourceID := q.Get(paramID)
	timestamp := q.Get(paramTimestamp)
	signature := q.Get(paramSignature)
	if resourceID == "" || timestamp == "" || signature == "" {
		return Claim{}, ErrMissingParams
	}

	expiresAt, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return Claim{}, ErrInvalidTimestamp
	}

	claim := Claim{
		ResourceID: resourceID,
		ExpiresAt:  time.Unix(expiresAt, 0),
	}

	if claim.Expired(s.now()) {
		return Claim{}, ErrLinkExpired
	}

	// Constant-time comparison to prevent timing attacks. Hex case is
	// normalized first; issued digests are always lowercase.
	expected := s.sign(resourceID, timestamp)
	if subtle.ConstantTimeCompare([]byte(strings.ToLower(signature)), []byte(expected)) != 1 {
		return Claim{}, ErrSignatureInvalid
	}

	return claim, nil
}

// Valid reports whether rawURL is an acceptable signed link right now.
// Use Verify when the rejection reason matters.
func (s *Signer) Valid(rawURL string) bool {
	_, err := s.Verify(rawURL)
	return err == nil
}
