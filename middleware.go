package signedlink

import (
	"log/slog"
	"net/http"
)

// SkipFunc defines a function that determines whether to skip link
// verification for a request.
type SkipFunc func(r *http.Request) bool

// MiddlewareConfig configures signed-link middleware behavior.
type MiddlewareConfig struct {
	Signer *Signer      // Signer used to verify request URLs
	Skip   SkipFunc     // Optional request filter to bypass verification
	Logger *slog.Logger // Optional logger for rejected requests
}

// Middleware creates middleware that verifies the request URL carries a
// valid signed link before passing it downstream. The verified Claim is
// injected into the request context for downstream handlers.
func Middleware(s *Signer) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Signer: s})
}

// MiddlewareWithConfig creates signed-link middleware with custom configuration.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			claim, err := config.Signer.Verify(r.URL.String())
			if err != nil {
				if config.Logger != nil {
					// Reason and path only; the signature and secret
					// never reach log output.
					config.Logger.WarnContext(r.Context(), "signed link rejected",
						slog.String("path", r.URL.Path),
						slog.String("reason", err.Error()),
					)
				}
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaim(r.Context(), claim)))
		})
	}
}
