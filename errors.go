package signedlink

import "errors"

var (
	// Construction and issuance errors. Issuance is an internal, trusted
	// operation and fails fast on bad arguments.
	ErrMissingSecret     = errors.New("signedlink: missing signing secret")
	ErrMissingResourceID = errors.New("signedlink: missing resource id")
	ErrInvalidTTL        = errors.New("signedlink: ttl must be positive")

	// Verification errors. Verify runs on unauthenticated input and always
	// returns one of these rejections instead of faulting.
	ErrMissingParams    = errors.New("signedlink: missing parameters")
	ErrInvalidTimestamp = errors.New("signedlink: invalid timestamp")
	ErrLinkExpired      = errors.New("signedlink: link has expired")
	ErrSignatureInvalid = errors.New("signedlink: signature invalid")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the Config struct.
	ErrParsingConfig = errors.New("signedlink: failed to parse environment configuration")
)
