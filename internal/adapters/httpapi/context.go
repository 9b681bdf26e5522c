package httpapi

import "context"

type adminKey struct{}
type requestIDKey struct{}

func WithAdmin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, adminKey{}, login)
}

func AdminFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminKey{}).(string)
	return v, ok && v != ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}
