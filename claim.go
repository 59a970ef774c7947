package signedlink

import "time"

// Query parameter names forming the wire contract:
//
//	<base>?id=<resource_id>&timestamp=<unix_seconds>&sig=<64-hex-digest>
const (
	paramID        = "id"
	paramTimestamp = "timestamp"
	paramSignature = "sig"
)

// Claim is the verified content of a signed link: which resource it grants
// access to and the instant that access ends. A Claim only ever exists
// serialized as URL query parameters; it is never persisted, and there is no
// revocation other than expiry.
type Claim struct {
	ResourceID string
	ExpiresAt  time.Time
}

// Expired reports whether the claim's expiration instant has passed at t.
// The expiration second itself is still within the validity window.
func (c Claim) Expired(t time.Time) bool {
	return t.Unix() > c.ExpiresAt.Unix()
}
