package backend

import "context"

type ctxKey int

const (
	tokenKey ctxKey = iota
	idempotencyKey
)

// WithToken attaches the caller's bearer token to every backend call made
// with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFrom(ctx context.Context) string {
	v, _ := ctx.Value(tokenKey).(string)
	return v
}

// WithIdempotencyKey makes a create call replay-safe on the backend.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKey, key)
}

func IdempotencyKeyFrom(ctx context.Context) string {
	v, _ := ctx.Value(idempotencyKey).(string)
	return v
}
