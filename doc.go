// Package signedlink issues and verifies time-limited, tamper-evident
// download URLs using HMAC-SHA256.
//
// Validity is embedded in the URL itself as a signed expiration claim, so a
// server can grant temporary unauthenticated access to a resource without a
// per-request database lookup. Links expire; there is no revocation and
// nothing is persisted.
//
// URL format: <base>?id=<resource_id>&timestamp=<unix_seconds>&sig=<64-hex-digest>
//
// # Features
//
// - HMAC-SHA256 keyed digest binding resource id to expiration
// - Constant-time signature verification
// - Fail-fast issuance, rejection-with-reason verification
// - Functional options and env-based configuration
// - net/http middleware injecting the verified claim into request context
//
// # Usage
//
//	import "github.com/dmitrymomot/signedlink"
//
//	signer, err := signedlink.NewFromString("your-256-bit-secret",
//		signedlink.WithBaseURL("https://cdn.example.com/files"),
//		signedlink.WithTTL(15*time.Minute),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	link, err := signer.Issue("track_001")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	claim, err := signer.Verify(link)
//	switch {
//	case errors.Is(err, signedlink.ErrLinkExpired):
//		// link outlived its validity window
//	case err != nil:
//		// tampered, malformed or wrongly keyed
//	default:
//		serveFile(claim.ResourceID)
//	}
//
// Protecting a download route:
//
//	r := chi.NewRouter()
//	r.With(signedlink.Middleware(signer)).Get("/download", downloadHandler)
//
// # Security
//
// The digest covers the resource id and expiration timestamp under the
// caller's secret; changing any of the three invalidates the link. The
// secret lives in process memory only and is never part of issued URLs or
// log output. Transport security and key management are the caller's
// responsibility.
package signedlink
