package signedlink

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var claimContextKey = &contextKey{name: "signedlink_claim"}

// SetClaim stores a verified Claim in the context.
func SetClaim(ctx context.Context, claim Claim) context.Context {
	return context.WithValue(ctx, claimContextKey, claim)
}

// GetClaim returns the verified Claim from the context.
// If no claim is present, the second return value will be false.
func GetClaim(ctx context.Context) (Claim, bool) {
	claim, ok := ctx.Value(claimContextKey).(Claim)
	return claim, ok
}
