package llm

import (
	"context"
	"strings"
)

// UnknownPurpose is journalled for calls that carry no label.
const UnknownPurpose = "unknown"

type purposeKey struct{}

// WithPurpose labels the calls made with ctx in the request journal
// ("quiz", "chat", "lesson"). Labels are lower-cased; a blank label leaves
// ctx unchanged.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	purpose = strings.ToLower(strings.TrimSpace(purpose))
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeOr labels ctx with purpose unless a caller already did.
func PurposeOr(ctx context.Context, purpose string) context.Context {
	if _, ok := ctx.Value(purposeKey{}).(string); ok {
		return ctx
	}
	return WithPurpose(ctx, purpose)
}

// PurposeFrom returns the label of ctx, or UnknownPurpose.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return UnknownPurpose
}
