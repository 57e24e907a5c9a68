package storage

import "context"

type ctxKey struct{}

// WithPrefs attaches the request's storage routing to its context so
// downstream clients can read the session's token.
func WithPrefs(ctx context.Context, p Prefs) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func PrefsFrom(ctx context.Context) (Prefs, bool) {
	p, ok := ctx.Value(ctxKey{}).(Prefs)
	return p, ok
}
